package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/agbru/beesim/internal/config"
	apperrors "github.com/agbru/beesim/internal/errors"
	"github.com/agbru/beesim/internal/logging"
	"github.com/agbru/beesim/internal/model"
	"github.com/agbru/beesim/internal/orchestration"
)

// simulateRequest is the JSON payload for POST /api/simulate. All fields are
// optional; missing fields fall back to the model defaults and lever presets.
type simulateRequest struct {
	Years         *int               `json:"years,omitempty"`
	StartColonies *float64           `json:"start_colonies,omitempty"`
	Baseline      *model.LeverConfig `json:"baseline,omitempty"`
	Scenario      *model.LeverConfig `json:"scenario,omitempty"`
}

// errorBody is the JSON error envelope returned by the API.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// handleSimulate runs a baseline/scenario comparison from a JSON request.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "use POST")
		return
	}

	req, err := s.decodeSimulateRequest(r)
	if err != nil {
		s.logger.Debug("rejected simulate request", logging.Err(err))
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	years := config.DefaultYears
	if req.Years != nil {
		years = *req.Years
	}
	if years > s.config.Security.MaxYears {
		writeError(w, http.StatusBadRequest, "horizon_too_large",
			"years exceeds the maximum accepted horizon")
		return
	}

	startColonies := s.config.Constants.InitialColonies
	if req.StartColonies != nil {
		startColonies = *req.StartColonies
	}

	baseline := model.BaselinePreset()
	if req.Baseline != nil {
		baseline = *req.Baseline
	}
	scenario := model.ScenarioPreset()
	if req.Scenario != nil {
		scenario = *req.Scenario
	}

	started := time.Now()
	result, err := orchestration.Compare(r.Context(), baseline, scenario, years, startColonies, s.config.Constants)
	if err != nil {
		if apperrors.IsInputError(err) {
			writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
			return
		}
		s.logger.Error("simulation failed", err, logging.Int("years", years))
		writeError(w, http.StatusInternalServerError, "internal_error", "simulation failed")
		return
	}
	s.metrics.ObserveSimulateDuration(time.Since(started).Seconds())

	s.logger.Info("comparison served",
		logging.Int("years", years),
		logging.Float64("colonies_delta", result.Summary.ColoniesDelta))

	writeJSON(w, http.StatusOK, result)
}

// decodeSimulateRequest parses the request body with a size cap.
// An empty body is valid and yields an all-defaults request.
func (s *Server) decodeSimulateRequest(r *http.Request) (simulateRequest, error) {
	var req simulateRequest

	body := http.MaxBytesReader(nil, r.Body, s.config.Security.MaxBodyBytes)
	defer body.Close()

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return simulateRequest{}, nil
		}
		return simulateRequest{}, err
	}
	return req, nil
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "use GET")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

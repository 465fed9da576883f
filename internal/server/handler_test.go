package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agbru/beesim/internal/model"
	"github.com/agbru/beesim/internal/orchestration"
)

func newServerUnderTest(t *testing.T) *Server {
	t.Helper()
	return New(Config{
		Addr:      ":0",
		Security:  DefaultSecurityConfig(),
		Constants: model.DefaultConstants(),
	}, newTestLogger())
}

func performSimulate(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/simulate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeErrorBody(t *testing.T, body []byte) map[string]map[string]string {
	t.Helper()
	var payload map[string]map[string]string
	require.NoError(t, json.Unmarshal(body, &payload))
	return payload
}

func TestHandleSimulate_Defaults(t *testing.T) {
	s := newServerUnderTest(t)

	rec := performSimulate(t, s, `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got orchestration.SimulationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	require.Equal(t, 20, got.Years)
	require.Len(t, got.Series.Baseline, 21)
	require.Len(t, got.Series.Scenario, 21)
	require.Len(t, got.Series.Loss, 21)
	require.Equal(t, model.BaselinePreset(), got.Baseline)
	require.Equal(t, model.ScenarioPreset(), got.Scenario)
}

func TestHandleSimulate_EmptyBody(t *testing.T) {
	s := newServerUnderTest(t)

	rec := performSimulate(t, s, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got orchestration.SimulationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 20, got.Years)
}

func TestHandleSimulate_CustomParameters(t *testing.T) {
	s := newServerUnderTest(t)

	body := `{
		"years": 5,
		"start_colonies": 100000,
		"baseline": {"environment_stress": 0.2, "disease_management": 0.8, "climate_factor": 0.7},
		"scenario": {"environment_stress": 0.9, "disease_management": 0.1, "climate_factor": 0.2}
	}`
	rec := performSimulate(t, s, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var got orchestration.SimulationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	require.Equal(t, 5, got.Years)
	require.Len(t, got.Series.Baseline, 6)
	require.Equal(t, 100000.0, got.Series.Baseline[0].Colonies)
	require.Equal(t, 0.9, got.Scenario.EnvironmentStress)
}

func TestHandleSimulate_InvalidHorizon(t *testing.T) {
	s := newServerUnderTest(t)

	rec := performSimulate(t, s, `{"years": 0}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errBody := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, "invalid_input", errBody["error"]["code"])
	require.Contains(t, errBody["error"]["message"], "horizon")
}

func TestHandleSimulate_HorizonAboveCap(t *testing.T) {
	s := newServerUnderTest(t)

	rec := performSimulate(t, s, `{"years": 501}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errBody := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, "horizon_too_large", errBody["error"]["code"])
}

func TestHandleSimulate_InvalidStartColonies(t *testing.T) {
	s := newServerUnderTest(t)

	rec := performSimulate(t, s, `{"start_colonies": -10}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errBody := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, "invalid_input", errBody["error"]["code"])
}

func TestHandleSimulate_MalformedJSON(t *testing.T) {
	s := newServerUnderTest(t)

	rec := performSimulate(t, s, `{"years": "twenty"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errBody := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, "bad_request", errBody["error"]["code"])
}

func TestHandleSimulate_UnknownField(t *testing.T) {
	s := newServerUnderTest(t)

	rec := performSimulate(t, s, `{"yearz": 10}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSimulate_MethodNotAllowed(t *testing.T) {
	s := newServerUnderTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/simulate", http.NoBody)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleSimulate_OutOfRangeLeversClamped(t *testing.T) {
	s := newServerUnderTest(t)

	body := `{"baseline": {"environment_stress": 5, "disease_management": -1, "climate_factor": 0.5}}`
	rec := performSimulate(t, s, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var got orchestration.SimulationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	// The response echoes the clamped levers actually simulated.
	require.Equal(t, 1.0, got.Baseline.EnvironmentStress)
	require.Equal(t, 0.0, got.Baseline.DiseaseManagement)
	require.Equal(t, 0.5, got.Baseline.ClimateFactor)
}

func TestHandleHealth(t *testing.T) {
	s := newServerUnderTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", http.NoBody)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "ok", got["status"])
}

func TestHandleHealth_MethodNotAllowed(t *testing.T) {
	s := newServerUnderTest(t)

	req := httptest.NewRequest(http.MethodPost, "/api/health", http.NoBody)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

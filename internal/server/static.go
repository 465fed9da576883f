package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// handleStatic serves the web dashboard from the configured static directory.
// Unknown extensionless paths fall back to index.html so client-side routing
// works; missing asset paths still return 404.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "use GET")
		return
	}

	// Keep the request inside the static directory.
	rel := filepath.Clean("/" + r.URL.Path)
	target := filepath.Join(s.config.StaticDir, rel)

	info, err := os.Stat(target)
	switch {
	case err == nil && !info.IsDir():
		http.ServeFile(w, r, target)
	case err == nil && info.IsDir():
		http.ServeFile(w, r, filepath.Join(target, "index.html"))
	case strings.Contains(filepath.Base(rel), "."):
		// Looks like an asset request; a missing asset is a real 404.
		http.NotFound(w, r)
	default:
		http.ServeFile(w, r, filepath.Join(s.config.StaticDir, "index.html"))
	}
}

package server

import (
	"net/http"
	"strings"
)

// SecurityConfig controls the hardening applied to every HTTP response.
type SecurityConfig struct {
	// EnableCORS toggles CORS header emission.
	EnableCORS bool
	// AllowedOrigins lists origins allowed to call the API. A single "*"
	// entry allows any origin.
	AllowedOrigins []string
	// AllowedMethods lists the methods advertised in CORS responses.
	AllowedMethods []string
	// MaxYears caps the simulation horizon accepted over HTTP.
	MaxYears int
	// MaxBodyBytes caps the size of request bodies read by the API.
	MaxBodyBytes int64
}

// DefaultSecurityConfig returns the configuration used in production.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		MaxYears:       500,
		MaxBodyBytes:   1 << 20,
	}
}

// SecurityMiddleware wraps next with security headers, CORS handling and
// preflight short-circuiting.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'self'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin := matchOrigin(config.AllowedOrigins, r.Header.Get("Origin")); origin != "" {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				h.Set("Access-Control-Allow-Headers", "Content-Type")
				h.Set("Access-Control-Max-Age", "86400")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

// matchOrigin returns the Access-Control-Allow-Origin value for the request
// origin, or "" when the origin is not allowed. A wildcard entry matches
// regardless of the request origin.
func matchOrigin(allowed []string, origin string) string {
	for _, a := range allowed {
		if a == "*" {
			return "*"
		}
		if a == origin && origin != "" {
			return origin
		}
	}
	return ""
}

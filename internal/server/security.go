package server

import (
	"net/http"
	"strings"
)

// SecurityConfig controls the hardening headers and CORS behavior of the
// diagnostics endpoints.
type SecurityConfig struct {
	// EnableCORS turns on Access-Control response headers.
	EnableCORS bool
	// AllowedOrigins lists acceptable Origin values; "*" matches any.
	AllowedOrigins []string
	// AllowedMethods lists the methods advertised in preflight responses.
	AllowedMethods []string
}

// DefaultSecurityConfig returns the configuration used by the diagnostics
// server: permissive read-only CORS, since the surface only exposes
// non-sensitive operational data.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}
}

// SecurityMiddleware wraps next with hardening headers and CORS handling.
// OPTIONS preflight requests are answered directly with 204.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

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

// matchOrigin returns the Access-Control-Allow-Origin value for origin, or
// empty when the origin is not allowed. The wildcard matches even requests
// that carry no Origin header.
func matchOrigin(allowed []string, origin string) string {
	for _, a := range allowed {
		if a == "*" {
			return "*"
		}
		if origin != "" && a == origin {
			return origin
		}
	}
	return ""
}

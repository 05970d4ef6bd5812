package middleware

import (
	"net/http"
)

// CORSConfig controls which origins may call the API from a browser.
type CORSConfig struct {
	// AllowedOrigins is the origin allow-list, matched exactly.
	AllowedOrigins []string
	// FallbackOrigin is written when the request Origin is absent or not
	// allow-listed, so every response still carries a deterministic
	// Access-Control-Allow-Origin header.
	FallbackOrigin string
}

// CORS reflects allow-listed request origins and answers preflight requests.
// Every response carries an Access-Control-Allow-Origin header: the request
// Origin when allow-listed, the configured fallback origin otherwise.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		allowed[o] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := cfg.FallbackOrigin
			if o := r.Header.Get("Origin"); o != "" {
				if _, ok := allowed[o]; ok {
					origin = o
				}
			}

			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")

			if r.Method == http.MethodOptions {
				h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Content-Type, Accept")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

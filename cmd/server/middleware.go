package main

import (
	"net/http"

	"github.com/ryanuber/go-glob"
)

// newCORSMiddleware answers preflight requests and reflects origins that
// match one of the configured glob patterns.
func newCORSMiddleware(allowedOrigins []string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && isAllowedOrigin(allowedOrigins, origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func isAllowedOrigin(allowedOrigins []string, origin string) bool {
	if len(allowedOrigins) == 0 {
		return true
	}

	for _, allowedOrigin := range allowedOrigins {
		if glob.Glob(allowedOrigin, origin) {
			return true
		}
	}

	return false
}

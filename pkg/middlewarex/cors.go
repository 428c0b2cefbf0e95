package middlewarex

import (
	"net/http"

	"github.com/samber/lo"
)

const (
	corsAllowMethods  = "GET, POST, OPTIONS"
	corsAllowHeaders  = "Content-Type, " + HeaderNameTraceID
	corsExposeHeaders = HeaderNameTraceID
	corsMaxAge        = "86400"
)

// CORS allows browser calls from allowedOrigins; "*" allows any origin.
// Preflight requests are answered here with 204 and never reach the router.
func CORS(allowedOrigins []string) func(next http.Handler) http.Handler {
	allowAny := lo.Contains(allowedOrigins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			allowOrigin := ""

			switch {
			case allowAny:
				allowOrigin = "*"
			case origin != "" && lo.Contains(allowedOrigins, origin):
				allowOrigin = origin

				w.Header().Add("Vary", "Origin")
			}

			if allowOrigin != "" {
				w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
				w.Header().Set("Access-Control-Expose-Headers", corsExposeHeaders)
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if allowOrigin != "" {
					w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)
					w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
					w.Header().Set("Access-Control-Max-Age", corsMaxAge)
				}

				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/httprate"
	"github.com/gorilla/mux"

	"fatherhood-backend/internal/security"
)

// AdminAuth requires a valid bearer token on admin routes. A nil token
// manager disables request-level auth, leaving the admin surface gated only
// by the privileged datastore credentials.
func AdminAuth(tokens security.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tokens == nil {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(auth, "Bearer ")
			if !ok || token == "" {
				respondErr(w, http.StatusUnauthorized, "Unauthorized", "A bearer token is required for this endpoint")
				return
			}

			if _, err := tokens.ValidateToken(token); err != nil {
				respondErr(w, http.StatusUnauthorized, "Unauthorized", "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// SignupRateLimit caps signup attempts per source IP over a rolling window.
// Rejected requests never reach validation.
func SignupRateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			respondErr(w, http.StatusTooManyRequests,
				"Too many signup attempts",
				"Too many signup attempts from this IP, please try again later.")
		}),
	)
}

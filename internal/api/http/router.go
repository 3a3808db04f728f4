// Package http binds the signup and admin handlers to their routes and
// applies the boundary policies: rate limiting on the public signup endpoint
// and optional bearer-token auth on the admin endpoints.
package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"fatherhood-backend/internal/security"
)

const apiPrefix = "/api/fatherhood"

// NewRouter wires every route. limitSignups wraps the signup endpoint and
// runs before validation; tokens may be nil to disable admin request auth.
func NewRouter(
	signupHandler *SignupHandler,
	adminHandler *AdminHandler,
	healthHandler *HealthHandler,
	tokens security.TokenManager,
	limitSignups func(http.Handler) http.Handler,
) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.HandleFunc("/", healthHandler.Root).Methods("GET")

	public := r.PathPrefix(apiPrefix).Subrouter()
	public.Handle("/signup", limitSignups(http.HandlerFunc(signupHandler.Create))).Methods("POST")

	admin := r.PathPrefix(apiPrefix).Subrouter()
	admin.Use(AdminAuth(tokens))
	admin.HandleFunc("/signups", adminHandler.List).Methods("GET")
	admin.HandleFunc("/signups/{id}", adminHandler.Get).Methods("GET")
	admin.HandleFunc("/signups/{id}/status", adminHandler.UpdateStatus).Methods("PATCH")
	admin.HandleFunc("/stats", adminHandler.Stats).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondErr(w, http.StatusNotFound, "Route not found", "")
	})

	return r
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fatherhood-backend/internal/domain"
	"fatherhood-backend/internal/logger"
	"fatherhood-backend/internal/service"
)

type AdminHandler struct {
	svc service.AdminService
}

func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

type paginationBlock struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

// List handles GET /api/fatherhood/signups.
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	status := domain.SignupStatus(r.URL.Query().Get("status"))

	// Clamp here so the pagination block echoes the values actually applied.
	limit := queryInt(r, "limit", 50)
	if limit <= 0 {
		limit = 50
	}
	offset := queryInt(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	signups, total, err := h.svc.ListSignups(r.Context(), status, limit, offset)
	if err != nil {
		if adminUnavailable(w, err) {
			return
		}
		logger.Error("Failed to fetch signups", "error", err)
		respondErr(w, http.StatusInternalServerError, "Failed to fetch signups", "Could not retrieve signup data")
		return
	}

	if signups == nil {
		signups = []domain.Signup{}
	}
	respond(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    signups,
		"pagination": paginationBlock{
			Total:   total,
			Limit:   limit,
			Offset:  offset,
			HasMore: (offset + len(signups)) < total,
		},
	})
}

// Get handles GET /api/fatherhood/signups/{id}.
func (h *AdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	signup, err := h.svc.GetSignup(r.Context(), id)
	if err != nil {
		if adminUnavailable(w, err) {
			return
		}
		if errors.Is(err, domain.ErrSignupNotFound) {
			respondErr(w, http.StatusNotFound, "Signup not found", "")
			return
		}
		logger.Error("Failed to fetch signup", "id", id, "error", err)
		respondErr(w, http.StatusInternalServerError, "Failed to fetch signup", "")
		return
	}

	respond(w, http.StatusOK, map[string]any{"success": true, "data": signup})
}

// UpdateStatus handles PATCH /api/fatherhood/signups/{id}/status.
func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body struct {
		Status domain.SignupStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondErr(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	signup, err := h.svc.UpdateStatus(r.Context(), id, body.Status)
	if err != nil {
		if adminUnavailable(w, err) {
			return
		}
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			respond(w, http.StatusBadRequest, errorResponse{
				Error:         "Invalid status",
				ValidStatuses: statusNames(),
			})
		case errors.Is(err, domain.ErrSignupNotFound):
			respondErr(w, http.StatusNotFound, "Signup not found", "")
		default:
			logger.Error("Failed to update status", "id", id, "status", body.Status, "error", err)
			respondErr(w, http.StatusInternalServerError, "Failed to update status", "")
		}
		return
	}

	logger.Info("Updated signup status", "id", id, "status", body.Status)
	respond(w, http.StatusOK, map[string]any{"success": true, "data": signup})
}

// Stats handles GET /api/fatherhood/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		if adminUnavailable(w, err) {
			return
		}
		logger.Error("Failed to fetch stats", "error", err)
		respondErr(w, http.StatusInternalServerError, "Failed to fetch stats", "")
		return
	}

	respond(w, http.StatusOK, map[string]any{"success": true, "stats": stats})
}

func adminUnavailable(w http.ResponseWriter, err error) bool {
	if errors.Is(err, domain.ErrAdminUnavailable) {
		respondErr(w, http.StatusServiceUnavailable, "Admin access not configured",
			"Privileged database credentials are required for this endpoint")
		return true
	}
	return false
}

func statusNames() []string {
	statuses := domain.ValidStatuses()
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return names
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

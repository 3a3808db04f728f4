package http

import (
	"errors"
	"net/http"
	"time"

	"fatherhood-backend/internal/domain"
	"fatherhood-backend/internal/logger"
	"fatherhood-backend/internal/service"
	"fatherhood-backend/internal/validation"
)

type SignupHandler struct {
	svc service.SignupService
}

func NewSignupHandler(svc service.SignupService) *SignupHandler {
	return &SignupHandler{svc: svc}
}

// signupProjection is the minimal response body for a new signup.
type signupProjection struct {
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	SignupDate time.Time `json:"signup_date"`
}

// Create handles POST /api/fatherhood/signup.
func (h *SignupHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, fieldErrs, err := validation.ParseSignupRequest(r.Body)
	if err != nil {
		logger.Warn("Unreadable signup body", "error", err)
		respondErr(w, http.StatusBadRequest, "Invalid request body", "Please check your input and try again")
		return
	}
	if len(fieldErrs) > 0 {
		respond(w, http.StatusBadRequest, errorResponse{
			Error:   "Validation failed",
			Message: "Please check your input and try again",
			Details: fieldErrs,
		})
		return
	}

	signup, err := h.svc.CreateSignup(r.Context(), req.Signup())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			respondErr(w, http.StatusConflict, "Email already registered",
				"This email is already signed up for the Fatherhood Initiative. If you need to update your information, please contact fatherhood@manupinc.org")
		default:
			logger.Error("Signup insert failed", "email", req.Email, "error", err)
			respondErr(w, http.StatusInternalServerError, "Failed to save signup",
				"We couldn't process your signup. Please try again or contact fatherhood@manupinc.org")
		}
		return
	}

	respond(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Thank you for signing up for the Fatherhood Initiative!",
		"data": signupProjection{
			FullName:   signup.FullName,
			Email:      signup.Email,
			SignupDate: signup.SignupDate,
		},
	})
}

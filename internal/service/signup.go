package service

import (
	"context"
	"errors"

	"fatherhood-backend/internal/domain"
	"fatherhood-backend/internal/logger"
	"fatherhood-backend/internal/repository"
)

type signupService struct {
	repo     repository.SignupRepository
	emailSvc EmailService // nil when email sending is not configured
}

func NewSignupService(repo repository.SignupRepository, emailSvc EmailService) SignupService {
	return &signupService{repo: repo, emailSvc: emailSvc}
}

func (s *signupService) CreateSignup(ctx context.Context, signup *domain.Signup) (*domain.Signup, error) {
	// Pre-check for an existing email. This is an optimization only: a failed
	// lookup is logged and treated as no match, and the unique index on
	// lower(email) remains the authoritative guard against the
	// check-then-insert race.
	_, err := s.repo.FindIDByEmail(ctx, signup.Email)
	switch {
	case err == nil:
		return nil, domain.ErrDuplicateEmail
	case !errors.Is(err, domain.ErrSignupNotFound):
		logger.Warn("Duplicate email pre-check failed, proceeding with insert", "email", signup.Email, "error", err)
	}

	signup.Status = domain.SignupStatusPending
	if err := s.repo.Create(ctx, signup); err != nil {
		return nil, err
	}

	logger.Info("New signup", "full_name", signup.FullName, "email", signup.Email)

	if s.emailSvc != nil {
		if err := s.emailSvc.SendSignupConfirmation(ctx, signup.Email, signup.FullName); err != nil {
			// Best effort: the signup is already persisted.
			logger.Error("Failed to send confirmation email", "email", signup.Email, "error", err)
		}
	}

	return signup, nil
}

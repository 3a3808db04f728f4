package service

import (
	"context"

	"fatherhood-backend/internal/domain"
)

type SignupService interface {
	// CreateSignup persists a validated, normalized signup. Returns
	// domain.ErrDuplicateEmail when the email is already registered.
	CreateSignup(ctx context.Context, signup *domain.Signup) (*domain.Signup, error)
}

// AdminService answers the privileged read/update operations. When the
// privileged datastore credentials are not configured, every operation
// returns domain.ErrAdminUnavailable without touching the datastore.
type AdminService interface {
	ListSignups(ctx context.Context, status domain.SignupStatus, limit, offset int) ([]domain.Signup, int, error)
	GetSignup(ctx context.Context, id string) (*domain.Signup, error)
	UpdateStatus(ctx context.Context, id string, status domain.SignupStatus) (*domain.Signup, error)
	GetStats(ctx context.Context) (*domain.SignupStats, error)
}

type EmailService interface {
	SendSignupConfirmation(ctx context.Context, email, name string) error
	SendWeeklyDigest(ctx context.Context, email string, stats *domain.SignupStats) error
}

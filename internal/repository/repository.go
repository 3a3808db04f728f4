package repository

import (
	"context"
	"time"

	"fatherhood-backend/internal/domain"
)

// SignupRepository is the datastore surface for signup records. The same
// implementation backs both the restricted and the privileged connection;
// which operations a handle may perform is enforced by database grants.
type SignupRepository interface {
	// Create inserts a new signup and fills in the datastore-assigned id and
	// timestamps. A case-insensitive email collision with the unique index is
	// reported as domain.ErrDuplicateEmail.
	Create(ctx context.Context, s *domain.Signup) error

	// FindIDByEmail looks up a record whose email matches case-insensitively.
	// Returns domain.ErrSignupNotFound when no record matches.
	FindIDByEmail(ctx context.Context, email string) (string, error)

	GetByID(ctx context.Context, id string) (*domain.Signup, error)

	// List returns records ordered by creation time descending, optionally
	// filtered by exact status, sliced to [offset, offset+limit), together
	// with the total matching count.
	List(ctx context.Context, status domain.SignupStatus, limit, offset int) ([]domain.Signup, int, error)

	// UpdateStatus changes the status of one record and returns the updated
	// row, or domain.ErrSignupNotFound.
	UpdateStatus(ctx context.Context, id string, status domain.SignupStatus) (*domain.Signup, error)

	Count(ctx context.Context) (int, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)

	// ListStatuses returns the status column of every record, for tallying.
	ListStatuses(ctx context.Context) ([]domain.SignupStatus, error)
}

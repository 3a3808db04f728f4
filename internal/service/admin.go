package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fatherhood-backend/internal/domain"
	"fatherhood-backend/internal/repository"
)

const defaultListLimit = 50

type adminService struct {
	repo repository.SignupRepository
}

// NewAdminService builds the admin query service. Pass a nil repository when
// the privileged datastore credentials are not configured; every operation
// then fails with domain.ErrAdminUnavailable before any datastore call.
func NewAdminService(repo repository.SignupRepository) AdminService {
	return &adminService{repo: repo}
}

func (s *adminService) ListSignups(ctx context.Context, status domain.SignupStatus, limit, offset int) ([]domain.Signup, int, error) {
	if s.repo == nil {
		return nil, 0, domain.ErrAdminUnavailable
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	signups, total, err := s.repo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list signups: %w", err)
	}
	return signups, total, nil
}

func (s *adminService) GetSignup(ctx context.Context, id string) (*domain.Signup, error) {
	if s.repo == nil {
		return nil, domain.ErrAdminUnavailable
	}
	// A malformed id cannot match any datastore-assigned uuid.
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrSignupNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *adminService) UpdateStatus(ctx context.Context, id string, status domain.SignupStatus) (*domain.Signup, error) {
	if s.repo == nil {
		return nil, domain.ErrAdminUnavailable
	}
	if !domain.IsValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrSignupNotFound
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *adminService) GetStats(ctx context.Context) (*domain.SignupStats, error) {
	if s.repo == nil {
		return nil, domain.ErrAdminUnavailable
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count signups: %w", err)
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	thisWeek, err := s.repo.CountCreatedSince(ctx, weekAgo)
	if err != nil {
		return nil, fmt.Errorf("failed to count recent signups: %w", err)
	}

	// Tally in memory rather than aggregating datastore-side.
	statuses, err := s.repo.ListStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list signup statuses: %w", err)
	}
	byStatus := make(map[domain.SignupStatus]int)
	for _, st := range statuses {
		byStatus[st]++
	}

	return &domain.SignupStats{
		Total:    total,
		ThisWeek: thisWeek,
		ByStatus: byStatus,
	}, nil
}

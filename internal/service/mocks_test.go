package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"fatherhood-backend/internal/domain"
)

// MockSignupRepository
type MockSignupRepository struct {
	mock.Mock
}

func (m *MockSignupRepository) Create(ctx context.Context, s *domain.Signup) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSignupRepository) FindIDByEmail(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *MockSignupRepository) GetByID(ctx context.Context, id string) (*domain.Signup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Signup), args.Error(1)
}

func (m *MockSignupRepository) List(ctx context.Context, status domain.SignupStatus, limit, offset int) ([]domain.Signup, int, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Signup), args.Int(1), args.Error(2)
}

func (m *MockSignupRepository) UpdateStatus(ctx context.Context, id string, status domain.SignupStatus) (*domain.Signup, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Signup), args.Error(1)
}

func (m *MockSignupRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockSignupRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	args := m.Called(ctx, since)
	return args.Int(0), args.Error(1)
}

func (m *MockSignupRepository) ListStatuses(ctx context.Context) ([]domain.SignupStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SignupStatus), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendSignupConfirmation(ctx context.Context, email, name string) error {
	args := m.Called(ctx, email, name)
	return args.Error(0)
}

func (m *MockEmailService) SendWeeklyDigest(ctx context.Context, email string, stats *domain.SignupStats) error {
	args := m.Called(ctx, email, stats)
	return args.Error(0)
}

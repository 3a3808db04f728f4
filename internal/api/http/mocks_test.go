package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fatherhood-backend/internal/domain"
)

type MockSignupService struct {
	mock.Mock
}

func (m *MockSignupService) CreateSignup(ctx context.Context, signup *domain.Signup) (*domain.Signup, error) {
	args := m.Called(ctx, signup)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Signup), args.Error(1)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ListSignups(ctx context.Context, status domain.SignupStatus, limit, offset int) ([]domain.Signup, int, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Signup), args.Int(1), args.Error(2)
}

func (m *MockAdminService) GetSignup(ctx context.Context, id string) (*domain.Signup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Signup), args.Error(1)
}

func (m *MockAdminService) UpdateStatus(ctx context.Context, id string, status domain.SignupStatus) (*domain.Signup, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Signup), args.Error(1)
}

func (m *MockAdminService) GetStats(ctx context.Context) (*domain.SignupStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SignupStats), args.Error(1)
}

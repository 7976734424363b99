package mocks

import (
	"context"

	"flight-recovery-service/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockRecoverer is a mock implementation of handler.Recoverer
type MockRecoverer struct {
	mock.Mock
}

func (m *MockRecoverer) Recover(ctx context.Context, pnr, lastName string) (*entity.RecoveryEnvelope, error) {
	args := m.Called(ctx, pnr, lastName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RecoveryEnvelope), args.Error(1)
}

// MockProfileChecker is a mock implementation of handler.ProfileChecker
type MockProfileChecker struct {
	mock.Mock
}

func (m *MockProfileChecker) CheckEligibility(ctx context.Context, lastName, emailOrPhone string) (entity.EligibilityResult, error) {
	args := m.Called(ctx, lastName, emailOrPhone)
	return args.Get(0).(entity.EligibilityResult), args.Error(1)
}

func (m *MockProfileChecker) CheckBatch(ctx context.Context, requests []entity.EligibilityRequest) ([]entity.BatchEligibilityResult, error) {
	args := m.Called(ctx, requests)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.BatchEligibilityResult), args.Error(1)
}

func (m *MockProfileChecker) FindProfile(ctx context.Context, lastName, emailOrPhone string) (entity.ProfileLookupResult, error) {
	args := m.Called(ctx, lastName, emailOrPhone)
	return args.Get(0).(entity.ProfileLookupResult), args.Error(1)
}

func (m *MockProfileChecker) CompleteInfo(ctx context.Context, lastName, emailOrPhone string) (entity.CompleteUserInfo, error) {
	args := m.Called(ctx, lastName, emailOrPhone)
	return args.Get(0).(entity.CompleteUserInfo), args.Error(1)
}

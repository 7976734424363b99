package usecase

import (
	"context"
	"fmt"

	"flight-recovery-service/internal/domain/entity"
	"flight-recovery-service/internal/domain/repository"
	"flight-recovery-service/pkg/logger"
	"flight-recovery-service/pkg/utils"
)

// ProfileService answers eligibility and profile questions against the current store
type ProfileService struct {
	profileRepo repository.ProfileRepository
	matcher     *utils.ProfileMatcher
	logger      logger.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repository.ProfileRepository, matcher *utils.ProfileMatcher, logger logger.Logger) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		matcher:     matcher,
		logger:      logger,
	}
}

func (s *ProfileService) snapshot(ctx context.Context) ([]entity.ProfileRecord, error) {
	profiles, err := s.profileRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile store: %w", err)
	}
	return profiles, nil
}

// CheckEligibility checks a single passenger
func (s *ProfileService) CheckEligibility(ctx context.Context, lastName, emailOrPhone string) (entity.EligibilityResult, error) {
	profiles, err := s.snapshot(ctx)
	if err != nil {
		return entity.EligibilityResult{}, err
	}
	return s.matcher.Match(lastName, emailOrPhone, profiles), nil
}

// CheckBatch checks several passengers against one snapshot of the store
func (s *ProfileService) CheckBatch(ctx context.Context, requests []entity.EligibilityRequest) ([]entity.BatchEligibilityResult, error) {
	profiles, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Batch eligibility check", "requests", len(requests))
	return s.matcher.CheckBatch(requests, profiles), nil
}

// FindProfile returns every matching profile with booking history
func (s *ProfileService) FindProfile(ctx context.Context, lastName, emailOrPhone string) (entity.ProfileLookupResult, error) {
	profiles, err := s.snapshot(ctx)
	if err != nil {
		return entity.ProfileLookupResult{}, err
	}
	return s.matcher.Lookup(lastName, emailOrPhone, profiles), nil
}

// CompleteInfo returns eligibility and profile history together
func (s *ProfileService) CompleteInfo(ctx context.Context, lastName, emailOrPhone string) (entity.CompleteUserInfo, error) {
	profiles, err := s.snapshot(ctx)
	if err != nil {
		return entity.CompleteUserInfo{}, err
	}
	return s.matcher.CompleteInfo(lastName, emailOrPhone, profiles), nil
}

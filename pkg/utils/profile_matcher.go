package utils

import (
	"strings"
	"time"

	"flight-recovery-service/internal/domain/entity"
	"flight-recovery-service/pkg/logger"
)

// ProfileMatcher resolves passengers against the customer profile store
type ProfileMatcher struct {
	logger logger.Logger
	now    func() time.Time
}

// NewProfileMatcher creates a new profile matcher
func NewProfileMatcher(logger logger.Logger) *ProfileMatcher {
	return &ProfileMatcher{
		logger: logger,
		now:    time.Now,
	}
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func contactMatches(info entity.UserInfo, identifier string) bool {
	return identifier == normalizeKey(info.Mobile.String()) ||
		identifier == normalizeKey(info.Email.String())
}

// Match checks auto-recovery eligibility. The first profile whose last name
// matches decides the outcome: a contact mismatch on that profile yields
// not_eligible without looking at later profiles of the same name.
func (m *ProfileMatcher) Match(lastName, identifier string, store []entity.ProfileRecord) entity.EligibilityResult {
	if len(store) == 0 {
		m.logger.Warn("Eligibility check against empty profile store")
		return entity.EligibilityResult{
			Status:  entity.EligibilityError,
			Message: MSG_CDP_NOT_LOADED,
		}
	}

	lastName = normalizeKey(lastName)
	identifier = normalizeKey(identifier)

	for i, profile := range store {
		if normalizeKey(profile.UserInfo.LastName.String()) != lastName {
			continue
		}

		if !contactMatches(profile.UserInfo, identifier) {
			m.logger.Info("Last name matched but contact did not", "index", i)
			return notEligible()
		}

		criteria := accumulateCriteria(profile.BookingDetails)
		if !criteria.IsHighSpender && !criteria.IsStudent {
			m.logger.Info("Profile matched without qualifying flags", "index", i, "bookings", len(profile.BookingDetails))
			return notEligible()
		}

		info := profile.UserInfo
		m.logger.Info("Profile eligible for auto-recovery",
			"guid", info.GUID.String(),
			"isHighSpender", criteria.IsHighSpender,
			"isStudent", criteria.IsStudent)

		return entity.EligibilityResult{
			Status:   entity.EligibilityEligible,
			Eligible: true,
			UserInfo: &info,
			Criteria: &criteria,
		}
	}

	m.logger.Info("No profile matched last name")
	return entity.EligibilityResult{
		Status:  entity.EligibilityNotFound,
		Message: MSG_USER_NOT_FOUND,
	}
}

func notEligible() entity.EligibilityResult {
	return entity.EligibilityResult{
		Status:  entity.EligibilityNotEligible,
		Message: MSG_NOT_ELIGIBLE,
	}
}

// accumulateCriteria ORs the flags of every booking; a flag once set stays set
func accumulateCriteria(bookings []entity.BookingDetail) entity.EligibilityCriteria {
	var c entity.EligibilityCriteria
	for _, b := range bookings {
		if NormalizeBool(b.HighSpenderHighFreq()) || NormalizeBool(b.HighSpenderLowFreq()) {
			c.IsHighSpender = true
		}
		if NormalizeStudent(b.Student()) {
			c.IsStudent = true
		}
	}
	return c
}

// Lookup returns every profile matching last name and email or mobile, with
// full booking history. Unlike Match it scans the whole store.
func (m *ProfileMatcher) Lookup(lastName, identifier string, store []entity.ProfileRecord) entity.ProfileLookupResult {
	if len(store) == 0 {
		m.logger.Warn("Profile lookup against empty profile store")
		return entity.ProfileLookupResult{
			Status:  entity.ProfileLookupError,
			Message: MSG_CDP_NOT_LOADED,
		}
	}

	lastName = normalizeKey(lastName)
	identifier = normalizeKey(identifier)

	var matches []entity.ProfileRecord
	for _, profile := range store {
		if normalizeKey(profile.UserInfo.LastName.String()) != lastName {
			continue
		}
		if !contactMatches(profile.UserInfo, identifier) {
			continue
		}

		bookings := profile.BookingDetails
		if bookings == nil {
			bookings = []entity.BookingDetail{}
		}
		matches = append(matches, entity.ProfileRecord{
			UserInfo:       profile.UserInfo,
			BookingDetails: bookings,
		})
	}

	if len(matches) == 0 {
		return entity.ProfileLookupResult{
			Status:  entity.ProfileLookupNotFound,
			Message: MSG_USER_NOT_FOUND,
		}
	}

	m.logger.Info("Profile lookup completed", "matches", len(matches))
	return entity.ProfileLookupResult{
		Status: entity.ProfileLookupSuccess,
		Data:   matches,
	}
}

// CheckBatch runs Match for every request, echoing each input with its result
func (m *ProfileMatcher) CheckBatch(requests []entity.EligibilityRequest, store []entity.ProfileRecord) []entity.BatchEligibilityResult {
	results := make([]entity.BatchEligibilityResult, 0, len(requests))
	for _, req := range requests {
		results = append(results, entity.BatchEligibilityResult{
			Input:  req,
			Result: m.Match(req.LastName, req.EmailOrPhone, store),
		})
	}
	return results
}

// CompleteInfo combines eligibility and profile history for one passenger
func (m *ProfileMatcher) CompleteInfo(lastName, identifier string, store []entity.ProfileRecord) entity.CompleteUserInfo {
	return entity.CompleteUserInfo{
		Eligibility: m.Match(lastName, identifier, store),
		Profile:     m.Lookup(lastName, identifier, store),
		Timestamp:   m.now(),
	}
}

// internal/domain/entity/eligibility.go
package entity

import "time"

// EligibilityStatus tags the outcome of an eligibility check
type EligibilityStatus string

const (
	EligibilityEligible    EligibilityStatus = "eligible"
	EligibilityNotEligible EligibilityStatus = "not_eligible"
	EligibilityNotFound    EligibilityStatus = "not_found"
	EligibilityError       EligibilityStatus = "error"
)

// EligibilityCriteria holds the accumulated profile flags
type EligibilityCriteria struct {
	IsHighSpender bool `json:"is_highspender"`
	IsStudent     bool `json:"is_student"`
}

// EligibilityResult is the outcome of matching a passenger against the profile store.
// UserInfo and Criteria are only set when Status is eligible.
type EligibilityResult struct {
	Status   EligibilityStatus    `json:"status"`
	Eligible bool                 `json:"eligible"`
	UserInfo *UserInfo            `json:"user_info,omitempty"`
	Criteria *EligibilityCriteria `json:"criteria,omitempty"`
	Message  string               `json:"message,omitempty"`
}

// IsEligible reports whether the passenger qualifies for auto-recovery
func (r EligibilityResult) IsEligible() bool {
	return r.Status == EligibilityEligible
}

// ProfileLookupStatus tags the outcome of a profile lookup
type ProfileLookupStatus string

const (
	ProfileLookupSuccess  ProfileLookupStatus = "success"
	ProfileLookupNotFound ProfileLookupStatus = "not_found"
	ProfileLookupError    ProfileLookupStatus = "error"
)

// ProfileLookupResult carries every profile matching a passenger
type ProfileLookupResult struct {
	Status  ProfileLookupStatus `json:"status"`
	Data    []ProfileRecord     `json:"data,omitempty"`
	Message string              `json:"message,omitempty"`
}

// EligibilityRequest identifies a passenger for an eligibility check
type EligibilityRequest struct {
	LastName     string `json:"last_name"`
	EmailOrPhone string `json:"email_or_phone"`
}

// BatchEligibilityResult pairs a request with its outcome
type BatchEligibilityResult struct {
	Input  EligibilityRequest `json:"input"`
	Result EligibilityResult  `json:"result"`
}

// CompleteUserInfo combines eligibility and profile history for one passenger
type CompleteUserInfo struct {
	Eligibility EligibilityResult   `json:"eligibility"`
	Profile     ProfileLookupResult `json:"profile"`
	Timestamp   time.Time           `json:"timestamp"`
}

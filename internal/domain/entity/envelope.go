// internal/domain/entity/envelope.go
package entity

// RecoveryStatus is the terminal state of a recovery request
type RecoveryStatus string

const (
	RecoverySuccess       RecoveryStatus = "success"
	RecoveryError         RecoveryStatus = "error"
	RecoveryNotApplicable RecoveryStatus = "not_applicable"
	RecoveryIneligible    RecoveryStatus = "ineligible"
)

// RecoveryReason explains a non-success terminal state
type RecoveryReason string

const (
	ReasonPNRAndLastNameRequired  RecoveryReason = "PNR_AND_LAST_NAME_REQUIRED"
	ReasonPNRNotFound             RecoveryReason = "PNR_NOT_FOUND"
	ReasonNoFlightDisruption      RecoveryReason = "NO_FLIGHT_DISRUPTION"
	ReasonNotHighSpenderOrStudent RecoveryReason = "NOT_HIGHSPENDER_OR_STUDENT"
	ReasonProfileStoreUnavailable RecoveryReason = "PROFILE_STORE_UNAVAILABLE"
)

// PassengerInfo is the passenger block of a successful recovery
type PassengerInfo struct {
	LastName string          `json:"last_name"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone"`
	PastData []ProfileRecord `json:"past_data"`
}

// RecoveryCandidates is the universe of options handed to the decision agent
type RecoveryCandidates struct {
	AvailableFlights []CandidateFlight `json:"available_flights"`
	AvailableSeats   []CandidateSeat   `json:"available_seats"`
}

// RecoveryEnvelope is the single result of a recovery request
type RecoveryEnvelope struct {
	Final          bool                `json:"final"`
	Status         RecoveryStatus      `json:"status"`
	Reason         RecoveryReason      `json:"reason,omitempty"`
	PNR            string              `json:"pnr,omitempty"`
	Passenger      *PassengerInfo      `json:"passenger,omitempty"`
	OriginalFlight *DisruptionRecord   `json:"original_flight,omitempty"`
	Recovery       *RecoveryCandidates `json:"recovery,omitempty"`
}

// NewTerminalEnvelope builds a non-success result
func NewTerminalEnvelope(status RecoveryStatus, reason RecoveryReason, pnr string) *RecoveryEnvelope {
	return &RecoveryEnvelope{
		Final:  true,
		Status: status,
		Reason: reason,
		PNR:    pnr,
	}
}

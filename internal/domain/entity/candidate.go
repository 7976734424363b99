// internal/domain/entity/candidate.go
package entity

// Comfort tags a candidate seat may carry
const (
	SeatTagWindow  = "WINDOW"
	SeatTagAisle   = "AISLE"
	SeatTagLegroom = "LEGROOM"
	SeatTagXL      = "XL"
	SeatTagStretch = "STRETCH"
)

// CandidateFlight is a bookable alternative derived from a flight search.
// Field names on the wire follow the upstream feed the decision agent is briefed on.
type CandidateFlight struct {
	FlightUID       string   `json:"flight_uid"`
	FlightNumber    string   `json:"flight_number"`
	Origin          *string  `json:"origin"`
	Destination     *string  `json:"destination"`
	UTCDeparture    string   `json:"utcDeparture"`
	UTCArrival      *string  `json:"utcArrival"`
	StopCount       *int     `json:"stops"`
	FlightType      *string  `json:"flightType"`
	IsStretch       bool     `json:"isStretch"`
	IsFillingFast   bool     `json:"fillingFast"`
	MinEconomyFare  *float64 `json:"min_economy_fare"`
	MinBusinessFare *float64 `json:"min_business_fare"`
}

// SeatKey identifies a seat across compartments
type SeatKey struct {
	Designator  string
	TravelClass string
}

// String renders the key as designator-class
func (k SeatKey) String() string {
	return k.Designator + "-" + k.TravelClass
}

// CandidateSeat is an assignable, available seat derived from a seat map
type CandidateSeat struct {
	SeatNumber   string   `json:"seat_number"`
	TravelClass  string   `json:"travel_class"`
	Availability int      `json:"availability"`
	SeatType     []string `json:"seat_type"`
}

// Key returns the deduplication key of the seat
func (s CandidateSeat) Key() SeatKey {
	return SeatKey{Designator: s.SeatNumber, TravelClass: s.TravelClass}
}

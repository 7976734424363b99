// internal/domain/entity/flight_search.go
package entity

import "encoding/json"

// Fare classes used to partition passenger fares
const (
	FareClassEconomy  = "Economy"
	FareClassBusiness = "Business"
)

// FlightSearchResponse is the trip-search tree returned by the airline.
// Every level is optional: a missing level reads as empty.
type FlightSearchResponse struct {
	Data *FlightSearchData `json:"data,omitempty"`
}

// FlightSearchData holds the searched trips
type FlightSearchData struct {
	Trips Items[Trip] `json:"trips,omitempty"`
}

// Trip holds the bookable journeys for one searched leg
type Trip struct {
	JourneysAvailable Items[Journey] `json:"journeysAvailable,omitempty"`
}

// Journey is one bookable itinerary option. Summary fields that do not fit
// their type read as absent rather than rejecting the journey.
type Journey struct {
	JourneyKey     FlexString           `json:"journeyKey,omitempty"`
	Stops          *int                 `json:"stops,omitempty"`
	FlightType     *string              `json:"flightType,omitempty"`
	FillingFast    *bool                `json:"fillingFast,omitempty"`
	Segments       Items[Segment]       `json:"segments,omitempty"`
	PassengerFares Items[PassengerFare] `json:"passengerFares,omitempty"`
}

// UnmarshalJSON decodes each member on its own
func (j *Journey) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*j = Journey{}
	decodeField(raw, "journeyKey", &j.JourneyKey)
	decodeField(raw, "stops", &j.Stops)
	decodeField(raw, "flightType", &j.FlightType)
	decodeField(raw, "fillingFast", &j.FillingFast)
	decodeField(raw, "segments", &j.Segments)
	decodeField(raw, "passengerFares", &j.PassengerFares)
	return nil
}

// Segment is one leg of a journey. A segment always decodes, so segments
// keep their position and the first leg stays first.
type Segment struct {
	Identifier *SegmentIdentifier `json:"identifier,omitempty"`
	Designator *SegmentDesignator `json:"designator,omitempty"`
	IsStretch  *bool              `json:"isStretch,omitempty"`
}

// UnmarshalJSON decodes each member on its own; a value that is not an
// object yields an empty segment.
func (s *Segment) UnmarshalJSON(b []byte) error {
	*s = Segment{}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}

	decodeField(raw, "identifier", &s.Identifier)
	decodeField(raw, "designator", &s.Designator)
	decodeField(raw, "isStretch", &s.IsStretch)
	return nil
}

// SegmentIdentifier names the operating flight
type SegmentIdentifier struct {
	CarrierCode FlexString `json:"carrierCode,omitempty"`
	Identifier  FlexString `json:"identifier,omitempty"`
}

// SegmentDesignator carries the route and UTC times of a leg
type SegmentDesignator struct {
	Origin       *string    `json:"origin,omitempty"`
	Destination  *string    `json:"destination,omitempty"`
	UTCDeparture FlexString `json:"utcDeparture,omitempty"`
	UTCArrival   *string    `json:"utcArrival,omitempty"`
}

// UnmarshalJSON decodes each member on its own
func (d *SegmentDesignator) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*d = SegmentDesignator{}
	decodeField(raw, "origin", &d.Origin)
	decodeField(raw, "destination", &d.Destination)
	decodeField(raw, "utcDeparture", &d.UTCDeparture)
	decodeField(raw, "utcArrival", &d.UTCArrival)
	return nil
}

// PassengerFare is one priced fare of a journey
type PassengerFare struct {
	FareClass       *string  `json:"FareClass,omitempty"`
	TotalFareAmount *float64 `json:"totalFareAmount,omitempty"`
}

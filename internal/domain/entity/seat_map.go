// internal/domain/entity/seat_map.go
package entity

// SeatMapResponse is the seat-map tree returned by the airline.
// A nil response and a missing data wrapper both read as empty.
type SeatMapResponse struct {
	Data *SeatMapData `json:"data,omitempty"`
}

// SeatMapData holds one seat map per flight segment
type SeatMapData struct {
	SeatMaps Items[SeatMapEntry] `json:"seatMaps"`
}

// SeatMapEntry wraps a single seat map
type SeatMapEntry struct {
	SeatMap *SeatMap `json:"seatMap,omitempty"`
}

// SeatMap holds the decks of an aircraft, keyed by deck number
type SeatMap struct {
	Decks OrderedMap[Deck] `json:"decks"`
}

// Deck holds cabin compartments, keyed by compartment designator
type Deck struct {
	Compartments OrderedMap[Compartment] `json:"compartments"`
}

// Compartment holds the seat units of one cabin
type Compartment struct {
	Units Items[SeatUnit] `json:"units"`
}

// SeatUnit is one seat of the map
type SeatUnit struct {
	Designator      FlexString          `json:"designator"`
	TravelClassCode FlexString          `json:"travelClassCode"`
	Assignable      *bool               `json:"assignable,omitempty"`
	Availability    *int                `json:"availability,omitempty"`
	Properties      Items[SeatProperty] `json:"properties,omitempty"`
}

// SeatProperty is a coded attribute of a seat unit
type SeatProperty struct {
	Code FlexString `json:"code"`
}

// IsAvailable reports whether the unit can be offered: explicitly assignable
// and with open capacity.
func (u SeatUnit) IsAvailable() bool {
	return u.Assignable != nil && *u.Assignable &&
		u.Availability != nil && *u.Availability > 0
}

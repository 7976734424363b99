package utils

import (
	"flight-recovery-service/internal/domain/entity"
)

// FilterAvailableSeats returns a new seat-map tree of the same shape holding
// only assignable units with open capacity. Nothing reachable from resp is
// shared with the result, so callers may modify either freely.
func FilterAvailableSeats(resp *entity.SeatMapResponse) *entity.SeatMapResponse {
	if resp == nil {
		return nil
	}
	out := &entity.SeatMapResponse{}
	if resp.Data == nil {
		return out
	}

	out.Data = &entity.SeatMapData{
		SeatMaps: make(entity.Items[entity.SeatMapEntry], 0, len(resp.Data.SeatMaps)),
	}

	for _, entry := range resp.Data.SeatMaps {
		if entry.SeatMap == nil {
			out.Data.SeatMaps = append(out.Data.SeatMaps, entity.SeatMapEntry{})
			continue
		}

		seatMap := &entity.SeatMap{}
		decks := entry.SeatMap.Decks
		for _, deckKey := range decks.Keys() {
			deck, _ := decks.Get(deckKey)

			var newDeck entity.Deck
			for _, compKey := range deck.Compartments.Keys() {
				comp, _ := deck.Compartments.Get(compKey)
				newDeck.Compartments.Set(compKey, entity.Compartment{
					Units: availableUnits(comp.Units),
				})
			}
			seatMap.Decks.Set(deckKey, newDeck)
		}

		out.Data.SeatMaps = append(out.Data.SeatMaps, entity.SeatMapEntry{SeatMap: seatMap})
	}

	return out
}

func availableUnits(units []entity.SeatUnit) entity.Items[entity.SeatUnit] {
	kept := make(entity.Items[entity.SeatUnit], 0, len(units))
	for _, u := range units {
		if u.IsAvailable() {
			kept = append(kept, copyUnit(u))
		}
	}
	return kept
}

func copyUnit(u entity.SeatUnit) entity.SeatUnit {
	c := entity.SeatUnit{
		Designator:      u.Designator,
		TravelClassCode: u.TravelClassCode,
	}
	if u.Assignable != nil {
		v := *u.Assignable
		c.Assignable = &v
	}
	if u.Availability != nil {
		v := *u.Availability
		c.Availability = &v
	}
	if u.Properties != nil {
		c.Properties = append(entity.Items[entity.SeatProperty](nil), u.Properties...)
	}
	return c
}

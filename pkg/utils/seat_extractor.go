package utils

import (
	"flight-recovery-service/internal/domain/entity"
	"flight-recovery-service/pkg/logger"
)

// SeatExtractor derives candidate seats from a seat-map response
type SeatExtractor struct {
	logger logger.Logger
}

// NewSeatExtractor creates a new seat extractor
func NewSeatExtractor(logger logger.Logger) *SeatExtractor {
	return &SeatExtractor{
		logger: logger,
	}
}

// ExtractSeats returns every assignable seat with open capacity, once per
// designator and travel class. Decks and compartments are walked in document
// order and the first occurrence of a seat wins, whatever later copies report.
func (e *SeatExtractor) ExtractSeats(resp *entity.SeatMapResponse) []entity.CandidateSeat {
	seats := make([]entity.CandidateSeat, 0)
	if resp == nil || resp.Data == nil {
		e.logger.Debug("Seat map response has no data")
		return seats
	}

	seen := make(map[entity.SeatKey]bool)
	excluded := 0

	forEachUnit(resp, func(unit entity.SeatUnit) {
		if !unit.IsAvailable() {
			excluded++
			return
		}

		seat := entity.CandidateSeat{
			SeatNumber:   unit.Designator.String(),
			TravelClass:  unit.TravelClassCode.String(),
			Availability: *unit.Availability,
			SeatType:     comfortTagsOf(unit.Properties),
		}

		key := seat.Key()
		if seen[key] {
			e.logger.Debug("Skipping duplicate seat", "seat", key.String())
			return
		}
		seen[key] = true
		seats = append(seats, seat)
	})

	e.logger.Info("Extracted candidate seats", "count", len(seats), "excluded", excluded)
	return seats
}

func forEachUnit(resp *entity.SeatMapResponse, fn func(entity.SeatUnit)) {
	for _, entry := range resp.Data.SeatMaps {
		if entry.SeatMap == nil {
			continue
		}
		for _, deck := range entry.SeatMap.Decks.Values() {
			for _, compartment := range deck.Compartments.Values() {
				for _, unit := range compartment.Units {
					fn(unit)
				}
			}
		}
	}
}

// comfortTagsOf keeps the recognised comfort codes in first-seen order
func comfortTagsOf(props []entity.SeatProperty) []string {
	tags := make([]string, 0, len(props))
	seen := make(map[string]bool)
	for _, p := range props {
		code := p.Code.String()
		if !IsComfortTag(code) || seen[code] {
			continue
		}
		seen[code] = true
		tags = append(tags, code)
	}
	return tags
}

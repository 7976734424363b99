package utils

import (
	"flight-recovery-service/internal/domain/entity"
	"flight-recovery-service/pkg/logger"
)

// FlightExtractor derives candidate flights from a trip-search response
type FlightExtractor struct {
	logger logger.Logger
}

// NewFlightExtractor creates a new flight extractor
func NewFlightExtractor(logger logger.Logger) *FlightExtractor {
	return &FlightExtractor{
		logger: logger,
	}
}

// ExtractFlights walks trips and journeys in document order and returns one
// candidate per journey key. Only the first segment of a journey is read;
// when it lacks carrier code, flight identifier or UTC departure the journey
// is dropped, whatever later segments hold. The input is not modified.
func (e *FlightExtractor) ExtractFlights(resp *entity.FlightSearchResponse) []entity.CandidateFlight {
	flights := make([]entity.CandidateFlight, 0)
	if resp == nil || resp.Data == nil {
		e.logger.Debug("Flight search response has no data")
		return flights
	}

	seen := make(map[string]bool)
	skipped := 0

	for _, trip := range resp.Data.Trips {
		for _, journey := range trip.JourneysAvailable {
			flight, ok := buildCandidateFlight(journey)
			if !ok {
				skipped++
				continue
			}

			if seen[flight.FlightUID] {
				e.logger.Debug("Skipping duplicate journey", "journeyKey", flight.FlightUID)
				continue
			}
			seen[flight.FlightUID] = true
			flights = append(flights, flight)
		}
	}

	e.logger.Info("Extracted candidate flights", "count", len(flights), "skipped", skipped)
	return flights
}

func buildCandidateFlight(journey entity.Journey) (entity.CandidateFlight, bool) {
	if len(journey.Segments) == 0 {
		return entity.CandidateFlight{}, false
	}
	segment := journey.Segments[0]

	var ident entity.SegmentIdentifier
	if segment.Identifier != nil {
		ident = *segment.Identifier
	}
	var desig entity.SegmentDesignator
	if segment.Designator != nil {
		desig = *segment.Designator
	}

	carrier := ident.CarrierCode.String()
	flightNo := ident.Identifier.String()
	departure := desig.UTCDeparture.String()
	if carrier == "" || flightNo == "" || departure == "" {
		return entity.CandidateFlight{}, false
	}

	flight := entity.CandidateFlight{
		FlightUID:     journey.JourneyKey.String(),
		FlightNumber:  carrier + flightNo,
		Origin:        desig.Origin,
		Destination:   desig.Destination,
		UTCDeparture:  departure,
		UTCArrival:    desig.UTCArrival,
		StopCount:     journey.Stops,
		FlightType:    journey.FlightType,
		IsStretch:     derefBool(segment.IsStretch),
		IsFillingFast: derefBool(journey.FillingFast),
	}
	flight.MinEconomyFare, flight.MinBusinessFare = minFares(journey.PassengerFares)

	return flight, true
}

// minFares returns the cheapest economy and business totals, nil when a class has no fare
func minFares(fares []entity.PassengerFare) (economy, business *float64) {
	for _, f := range fares {
		if f.FareClass == nil || f.TotalFareAmount == nil {
			continue
		}
		amount := *f.TotalFareAmount

		switch *f.FareClass {
		case entity.FareClassEconomy:
			if economy == nil || amount < *economy {
				economy = &amount
			}
		case entity.FareClassBusiness:
			if business == nil || amount < *business {
				business = &amount
			}
		}
	}
	return economy, business
}

func derefBool(b *bool) bool {
	return b != nil && *b
}

package repository

import (
	"context"

	"flight-recovery-service/internal/domain/entity"
)

// InventoryRepository defines the interface for alternative flight and seat inventory
type InventoryRepository interface {
	SearchFlights(ctx context.Context, disruption *entity.DisruptionRecord) (*entity.FlightSearchResponse, error)
	GetSeatMap(ctx context.Context, disruption *entity.DisruptionRecord) (*entity.SeatMapResponse, error)
}

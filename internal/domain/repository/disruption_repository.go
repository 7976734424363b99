package repository

import (
	"context"

	"flight-recovery-service/internal/domain/entity"
)

// DisruptionRepository defines the interface for disruption feed lookups
type DisruptionRepository interface {
	// FindByPNR returns the first record for pnr, or ErrNotFound
	FindByPNR(ctx context.Context, pnr string) (*entity.DisruptionRecord, error)
}

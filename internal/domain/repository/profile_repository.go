package repository

import (
	"context"

	"flight-recovery-service/internal/domain/entity"
)

// ProfileRepository defines the interface for the customer profile store
type ProfileRepository interface {
	// LoadAll returns a snapshot of the store in its natural order
	LoadAll(ctx context.Context) ([]entity.ProfileRecord, error)
}

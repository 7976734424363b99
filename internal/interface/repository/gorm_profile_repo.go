package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"flight-recovery-service/internal/domain/entity"
	"flight-recovery-service/internal/domain/repository"
	"flight-recovery-service/pkg/logger"

	"gorm.io/gorm"
)

// GormProfileRepository implements ProfileRepository over PostgreSQL
type GormProfileRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProfileRepository creates a new GORM profile repository
func NewGormProfileRepository(db *gorm.DB, logger logger.Logger) repository.ProfileRepository {
	return &GormProfileRepository{
		db:     db,
		logger: logger,
	}
}

// CustomerProfiles GORM model for database mapping
type CustomerProfiles struct {
	ID        uint   `gorm:"primaryKey"`
	Document  string `gorm:"column:document;type:jsonb"`
	CreatedAt time.Time
}

// TableName overrides the default table name
func (CustomerProfiles) TableName() string {
	return "t_customer_profiles"
}

// LoadAll reads the whole store in id order. A row whose document does not
// decode is skipped.
func (r *GormProfileRepository) LoadAll(ctx context.Context) ([]entity.ProfileRecord, error) {
	var rows []CustomerProfiles
	result := r.db.WithContext(ctx).Order("id asc").Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", result.Error)
	}

	profiles := make([]entity.ProfileRecord, 0, len(rows))
	for _, row := range rows {
		var profile entity.ProfileRecord
		if err := json.Unmarshal([]byte(row.Document), &profile); err != nil {
			r.logger.Warn("Skipping undecodable profile", "id", row.ID, "error", err)
			continue
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

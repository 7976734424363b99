package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"flight-recovery-service/internal/domain/entity"
	"flight-recovery-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormDisruptionRepository implements DisruptionRepository over PostgreSQL
type GormDisruptionRepository struct {
	db *gorm.DB
}

// NewGormDisruptionRepository creates a new GORM disruption repository
func NewGormDisruptionRepository(db *gorm.DB) repository.DisruptionRepository {
	return &GormDisruptionRepository{
		db: db,
	}
}

// DisruptionEvents GORM model for database mapping. The upstream record is
// kept verbatim in a JSONB column; only the PNR is lifted out for lookup.
type DisruptionEvents struct {
	ID        uint   `gorm:"primaryKey"`
	PNR       string `gorm:"column:pnr;index"`
	Document  string `gorm:"column:document;type:jsonb"`
	CreatedAt time.Time
}

// TableName overrides the default table name
func (DisruptionEvents) TableName() string {
	return "t_disruption_events"
}

// FindByPNR finds the earliest disruption record for pnr
func (r *GormDisruptionRepository) FindByPNR(ctx context.Context, pnr string) (*entity.DisruptionRecord, error) {
	var row DisruptionEvents
	result := r.db.WithContext(ctx).Where("pnr = ?", pnr).Order("id asc").First(&row)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find disruption %s: %w", pnr, result.Error)
	}

	var record entity.DisruptionRecord
	if err := json.Unmarshal([]byte(row.Document), &record); err != nil {
		return nil, fmt.Errorf("failed to decode disruption %d: %w", row.ID, err)
	}
	return &record, nil
}

package gaterepo

import (
	"context"
	"errors"
	"time"

	"refillstation/internal/core/domain/model/websitegate"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWebsiteGateRepository implements WebsiteGateRepository using GORM.
type GormWebsiteGateRepository struct {
	db *gorm.DB
}

// NewGormWebsiteGateRepository creates a new GORM website gate repository.
func NewGormWebsiteGateRepository(db *gorm.DB) *GormWebsiteGateRepository {
	return &GormWebsiteGateRepository{db: db}
}

// Get retrieves the current gate state. A store that has never been toggled
// has no row yet; that reads as an enabled gate.
func (r *GormWebsiteGateRepository) Get(ctx context.Context) (*websitegate.WebsiteGate, error) {
	var dto WebsiteGateDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", gateRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return websitegate.RestoreWebsiteGate(true, "", time.Time{}), nil
		}
		return nil, err
	}

	return toDomain(dto), nil
}

// Save upserts the single gate row.
func (r *GormWebsiteGateRepository) Save(ctx context.Context, gate *websitegate.WebsiteGate) error {
	if err := gate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(gate)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"enabled", "reason", "updated_at"}),
		}).
		Create(&dto).Error
}

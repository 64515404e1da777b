// Package gaterepo persists the website availability gate. The gate is a
// singleton, stored as a single row with a fixed primary key.
package gaterepo

import (
	"time"

	"refillstation/internal/core/domain/model/websitegate"
)

// gateRowID is the fixed primary key of the single gate row.
const gateRowID = 1

// WebsiteGateDTO represents the database structure for the availability gate.
type WebsiteGateDTO struct {
	ID        int `gorm:"primaryKey"`
	Enabled   bool
	Reason    string
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for the gate row.
func (WebsiteGateDTO) TableName() string {
	return "website_gate"
}

// fromDomain converts the gate aggregate to its database representation.
func fromDomain(gate *websitegate.WebsiteGate) WebsiteGateDTO {
	return WebsiteGateDTO{
		ID:        gateRowID,
		Enabled:   gate.Enabled(),
		Reason:    gate.Reason(),
		UpdatedAt: gate.UpdatedAt(),
	}
}

// toDomain converts the database row to the gate aggregate.
func toDomain(dto WebsiteGateDTO) *websitegate.WebsiteGate {
	return websitegate.RestoreWebsiteGate(dto.Enabled, dto.Reason, dto.UpdatedAt)
}

// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order domain
// aggregate, handling the conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"refillstation/internal/core/domain/model/kernel"
	"refillstation/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is indexed because lifecycle updates and reports filter on it;
// customer_id is indexed for per-customer history lookups.
//
// Timestamps are owned by the domain, so GORM auto-stamping is disabled.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   *uuid.UUID `gorm:"type:uuid;index"`
	CustomerName string
	Phone        string
	Address      string
	HasContainer bool
	Delivery     bool
	Price        int
	Status       int       `gorm:"index"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var customerID *uuid.UUID
	if id := aggregate.CustomerID(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   customerID,
		CustomerName: aggregate.CustomerName(),
		Phone:        aggregate.Phone(),
		Address:      aggregate.Address(),
		HasContainer: aggregate.HasContainer(),
		Delivery:     aggregate.Delivery(),
		Price:        aggregate.Price(),
		Status:       int(aggregate.Status()),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}

		customerID = &cID
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.CustomerName,
		dto.Phone,
		dto.Address,
		dto.HasContainer,
		dto.Delivery,
		dto.Price,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

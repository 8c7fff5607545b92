// Package courierrepo provides data transfer objects and mapping functions
// for courier persistence. This package implements the repository pattern for
// the courier aggregate, handling the conversion between domain entities and
// database representations.
package courierrepo

import (
	"time"

	"posdelivery/internal/core/domain/model/courier"
	"posdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier
// aggregates. Email is unique because it doubles as the login identifier.
type CourierDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	Phone          string    `gorm:"type:varchar(32)"`
	VehicleType    string    `gorm:"type:varchar(32)"`
	VehiclePlate   string    `gorm:"type:varchar(32)"`
	IsActive       bool      `gorm:"not null"`
	LastConnection *time.Time
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		Email:          aggregate.Email(),
		PasswordHash:   aggregate.PasswordHash(),
		Phone:          aggregate.Phone(),
		VehicleType:    aggregate.VehicleType(),
		VehiclePlate:   aggregate.VehiclePlate(),
		IsActive:       aggregate.IsActive(),
		LastConnection: aggregate.LastConnection(),
	}
}

// toDomain converts a database DTO to a courier domain aggregate using
// RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(
		id,
		dto.Name,
		dto.Email,
		dto.PasswordHash,
		dto.Phone,
		dto.VehicleType,
		dto.VehiclePlate,
		dto.IsActive,
		dto.LastConnection,
	)
}

// Package zonerepo provides data transfer objects and mapping functions for
// delivery zone persistence.
package zonerepo

import (
	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/core/domain/model/zone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ZoneDTO represents the database structure for persisting delivery zones.
type ZoneDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name             string          `gorm:"type:varchar(255);not null"`
	Code             string          `gorm:"type:varchar(16);not null;uniqueIndex"`
	Cost             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	EstimatedMinutes int             `gorm:"type:int;not null"`
	Active           bool            `gorm:"not null"`
	Description      string          `gorm:"type:text"`
}

// TableName specifies the database table name for zone entities.
func (ZoneDTO) TableName() string {
	return "delivery_zones"
}

// fromDomain converts a zone aggregate to its database representation.
func fromDomain(aggregate *zone.Zone) ZoneDTO {
	return ZoneDTO{
		ID:               aggregate.ID().Bytes(),
		Name:             aggregate.Name(),
		Code:             aggregate.Code(),
		Cost:             aggregate.Cost(),
		EstimatedMinutes: aggregate.EstimatedMinutes(),
		Active:           aggregate.IsActive(),
		Description:      aggregate.Description(),
	}
}

// toDomain converts a database DTO to a zone aggregate using RestoreZone.
func toDomain(dto ZoneDTO) (*zone.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return zone.RestoreZone(
		id,
		dto.Name,
		dto.Code,
		dto.Cost,
		dto.EstimatedMinutes,
		dto.Active,
		dto.Description,
	)
}

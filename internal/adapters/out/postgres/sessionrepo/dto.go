// Package sessionrepo provides data transfer objects and mapping functions
// for login session persistence.
package sessionrepo

import (
	"time"

	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/core/domain/model/session"

	"github.com/google/uuid"
)

// SessionDTO represents the database structure for persisting login
// sessions. The token column is unique; every authenticated request resolves
// through it.
type SessionDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Token        string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	DeviceInfo   string    `gorm:"type:text"`
	IsActive     bool      `gorm:"not null;index"`
	ExpiresAt    time.Time `gorm:"not null;index"`
	LastActivity time.Time `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the database table name for session entities.
func (SessionDTO) TableName() string {
	return "courier_sessions"
}

// fromDomain converts a session aggregate to its database representation.
func fromDomain(aggregate *session.Session) SessionDTO {
	return SessionDTO{
		ID:           aggregate.ID().Bytes(),
		CourierID:    aggregate.CourierID().Bytes(),
		Token:        aggregate.Token(),
		DeviceInfo:   aggregate.DeviceInfo(),
		IsActive:     aggregate.IsActive(),
		ExpiresAt:    aggregate.ExpiresAt(),
		LastActivity: aggregate.LastActivity(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a session aggregate using RestoreSession.
func toDomain(dto SessionDTO) (*session.Session, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	return session.RestoreSession(
		id,
		courierID,
		dto.Token,
		dto.DeviceInfo,
		dto.IsActive,
		dto.ExpiresAt,
		dto.LastActivity,
		dto.CreatedAt,
	)
}

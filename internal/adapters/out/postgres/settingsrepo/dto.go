// Package settingsrepo provides persistence for the store-wide delivery
// configuration. The configuration is a single database row created on first
// access.
package settingsrepo

import (
	"posdelivery/internal/core/domain/model/settings"
)

// settingsRowID is the fixed primary key of the singleton row.
const settingsRowID = 1

// SettingsDTO represents the database structure for the delivery
// configuration singleton.
type SettingsDTO struct {
	ID                     int  `gorm:"primaryKey"`
	PhotoRequired          bool `gorm:"not null"`
	SignatureRequired      bool `gorm:"not null"`
	GeolocationEnabled     bool `gorm:"not null"`
	RatingEnabled          bool `gorm:"not null"`
	NotificationsEnabled   bool `gorm:"not null"`
	DefaultDeliveryMinutes int  `gorm:"not null"`
}

// TableName specifies the database table name for the settings singleton.
func (SettingsDTO) TableName() string {
	return "delivery_settings"
}

// fromDomain converts the settings to their database representation.
func fromDomain(aggregate *settings.Settings) SettingsDTO {
	return SettingsDTO{
		ID:                     settingsRowID,
		PhotoRequired:          aggregate.PhotoRequired(),
		SignatureRequired:      aggregate.SignatureRequired(),
		GeolocationEnabled:     aggregate.GeolocationEnabled(),
		RatingEnabled:          aggregate.RatingEnabled(),
		NotificationsEnabled:   aggregate.NotificationsEnabled(),
		DefaultDeliveryMinutes: aggregate.DefaultDeliveryMinutes(),
	}
}

// toDomain converts a database DTO to the settings using RestoreSettings.
func toDomain(dto SettingsDTO) (*settings.Settings, error) {
	return settings.RestoreSettings(
		dto.PhotoRequired,
		dto.SignatureRequired,
		dto.GeolocationEnabled,
		dto.RatingEnabled,
		dto.NotificationsEnabled,
		dto.DefaultDeliveryMinutes,
	)
}

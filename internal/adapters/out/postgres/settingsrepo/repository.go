package settingsrepo

import (
	"context"
	"errors"

	"posdelivery/internal/core/domain/model/settings"

	"gorm.io/gorm"
)

// GormSettingsRepository implements SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get retrieves the settings row, creating it with defaults when the
// installation has none yet.
func (r *GormSettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	var dto SettingsDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", settingsRowID).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		defaults := settings.NewDefaultSettings()
		dto = fromDomain(defaults)
		if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return nil, err
		}
		return defaults, nil
	}

	return toDomain(dto)
}

// Update persists changes to the settings row.
func (r *GormSettingsRepository) Update(ctx context.Context, aggregate *settings.Settings) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Save(&dto).Error
}

package ports

import (
	"context"

	"posdelivery/internal/core/domain/model/settings"
)

// SettingsRepository defines the persistence contract for the store-wide
// delivery configuration singleton.
type SettingsRepository interface {
	// Get retrieves the settings record, creating it with defaults when the
	// installation has none yet.
	Get(ctx context.Context) (*settings.Settings, error)

	// Update persists changes to the settings record.
	Update(ctx context.Context, settings *settings.Settings) error
}

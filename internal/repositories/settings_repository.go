package repositories

import (
	"context"

	"gudang/internal/models"
)

// SettingsRepository defines the interface for settings data access.
type SettingsRepository interface {
	Create(ctx context.Context, settings *models.Settings) error
	GetByUserID(ctx context.Context, userID string) (*models.Settings, error)
	Update(ctx context.Context, settings *models.Settings) error
}

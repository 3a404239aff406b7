package repositories

import (
	"context"
	"errors"

	"gudang/internal/models"

	"gorm.io/gorm"
)

// GORMSettingsRepository is a GORM implementation of SettingsRepository.
type GORMSettingsRepository struct {
	db *gorm.DB
}

// NewGORMSettingsRepository creates a new instance of GORMSettingsRepository.
func NewGORMSettingsRepository(db *gorm.DB) *GORMSettingsRepository {
	return &GORMSettingsRepository{
		db: db,
	}
}

// Create inserts a settings row. The user_id unique index rejects duplicates.
func (r *GORMSettingsRepository) Create(ctx context.Context, settings *models.Settings) error {
	if err := r.db.WithContext(ctx).Create(settings).Error; err != nil {
		return storeError("create settings", err)
	}
	return nil
}

// GetByUserID retrieves the settings row of a user.
func (r *GORMSettingsRepository) GetByUserID(ctx context.Context, userID string) (*models.Settings, error) {
	var settings models.Settings
	err := r.db.WithContext(ctx).First(&settings, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeError("get settings", err)
	}
	return &settings, nil
}

// Update overwrites currency, app name and unit preferences of the row keyed on
// settings.UserID and reloads it.
func (r *GORMSettingsRepository) Update(ctx context.Context, settings *models.Settings) error {
	res := r.db.WithContext(ctx).
		Model(&models.Settings{}).
		Where("user_id = ?", settings.UserID).
		Updates(map[string]interface{}{
			"currency":         settings.Currency,
			"app_name":         settings.AppName,
			"unit_preferences": settings.UnitPreferences,
		})
	if res.Error != nil {
		return storeError("update settings", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	err := r.db.WithContext(ctx).First(settings, "user_id = ?", settings.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return storeError("reload settings", err)
	}
	return nil
}

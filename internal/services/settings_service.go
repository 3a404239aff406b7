package services

import (
	"context"

	"gudang/internal/models"
	"gudang/internal/repositories"

	"gorm.io/datatypes"
)

// SettingsUpdate carries the full replacement of a user's settings.
type SettingsUpdate struct {
	Currency        string
	AppName         string
	UnitPreferences []byte // raw JSON document
}

// SettingsService handles business logic related to user settings.
type SettingsService struct {
	repo repositories.SettingsRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(repo repositories.SettingsRepository) *SettingsService {
	return &SettingsService{
		repo: repo,
	}
}

// GetSettings retrieves the settings of a user.
func (s *SettingsService) GetSettings(ctx context.Context, userID string) (*models.Settings, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// UpdateSettings overwrites every field. There is no partial merge.
func (s *SettingsService) UpdateSettings(ctx context.Context, userID string, update SettingsUpdate) (*models.Settings, error) {
	prefs := update.UnitPreferences
	if len(prefs) == 0 || string(prefs) == "null" {
		prefs = []byte(`{}`)
	}

	settings := &models.Settings{
		UserID:          userID,
		Currency:        update.Currency,
		AppName:         update.AppName,
		UnitPreferences: datatypes.JSON(prefs),
	}
	if err := s.repo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

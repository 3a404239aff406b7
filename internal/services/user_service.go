package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gudang/internal/models"
	"gudang/internal/repositories"

	"github.com/google/uuid"
)

// UserService initialises users. A user is identified by its settings row.
type UserService struct {
	settingsRepo repositories.SettingsRepository
	newID        func() string
}

// NewUserService creates a new UserService.
func NewUserService(settingsRepo repositories.SettingsRepository) *UserService {
	return &UserService{
		settingsRepo: settingsRepo,
		newID:        func() string { return uuid.New().String() },
	}
}

// InitUser returns userID unchanged when it already has settings. Otherwise,
// including when userID is unknown, it issues a fresh id and inserts default
// settings for it.
func (s *UserService) InitUser(ctx context.Context, userID string) (string, bool, error) {
	if userID != "" {
		_, err := s.settingsRepo.GetByUserID(ctx, userID)
		if err == nil {
			return userID, false, nil
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return "", false, err
		}
		slog.Debug("Unknown user id supplied, issuing a new one", "user_id", userID)
	}

	id := s.newID()
	if err := s.settingsRepo.Create(ctx, models.NewDefaultSettings(id)); err != nil {
		return "", false, fmt.Errorf("failed to initialise user: %w", err)
	}
	return id, true, nil
}

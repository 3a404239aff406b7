package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	DefaultCurrency = "USD"
	DefaultAppName  = "Inventory"
)

// Settings holds per-user preferences. A user exists exactly when its settings row does.
type Settings struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	UserID          string         `json:"user_id" gorm:"type:varchar(36);uniqueIndex;not null"`
	Currency        string         `json:"currency" gorm:"type:varchar(10)"`
	AppName         string         `json:"app_name" gorm:"type:varchar(100)"`
	UnitPreferences datatypes.JSON `json:"unit_preferences"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// NewDefaultSettings returns the row inserted when a user is first initialised.
func NewDefaultSettings(userID string) *Settings {
	return &Settings{
		UserID:          userID,
		Currency:        DefaultCurrency,
		AppName:         DefaultAppName,
		UnitPreferences: datatypes.JSON(`{}`),
	}
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

// Goal is a user's sales target. Only the newest goal per user is kept.
type Goal struct {
	ID            string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID        string          `json:"user_id" gorm:"type:varchar(36);not null;index"`
	Name          string          `json:"name" gorm:"type:varchar(255)"`
	TargetRevenue float64         `json:"target_revenue"`
	TargetProfit  float64         `json:"target_profit"`
	TargetItems   int             `json:"target_items"`
	Deadline      *datatypes.Date `json:"deadline"`
	Description   *string         `json:"description"`
	CreatedAt     time.Time       `json:"created_at" gorm:"index"`
}

package models

import "time"

// Item represents a stock entry owned by a single user.
type Item struct {
	ID           string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID       string     `json:"user_id" gorm:"type:varchar(36);not null;index"`
	Name         string     `json:"name" gorm:"type:varchar(255)"`
	Category     string     `json:"category" gorm:"type:varchar(100)"` // category or unit label
	Quantity     float64    `json:"quantity"`
	BuyingPrice  float64    `json:"buying_price"`
	SellingPrice float64    `json:"selling_price"`
	Description  *string    `json:"description"`
	CreatedAt    time.Time  `json:"created_at" gorm:"index"`
	UpdatedAt    *time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
}

// Profit returns the margin earned if the whole quantity is sold.
func (i Item) Profit() float64 {
	return (i.SellingPrice - i.BuyingPrice) * i.Quantity
}

package domain

import "time"

type Part struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Category  string    `json:"category" validate:"required"`
	Stock     int       `json:"stock" validate:"gte=0"`
	BuyPrice  float64   `json:"buy_price" validate:"gte=0"`
	SellPrice float64   `json:"sell_price" validate:"gte=0"`
	Unit      string    `json:"unit" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

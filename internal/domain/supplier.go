package domain

import "time"

// Purchase is an entry in a supplier's purchase history.
// Date is a YYYY-MM-DD string, like every other date in this system.
type Purchase struct {
	Date     string  `json:"date"`
	PartID   int64   `json:"part_id"`
	Quantity int     `json:"quantity"`
	BuyPrice float64 `json:"buy_price"`
}

type Supplier struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name" validate:"required"`
	Contact         string         `json:"contact" validate:"required"`
	Address         string         `json:"address" validate:"required"`
	Status          ActivityStatus `json:"status"`
	PurchaseHistory []Purchase     `json:"purchase_history"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

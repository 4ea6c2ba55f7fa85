package domain

import "time"

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// Payment records money received for an order. One payment per paid order;
// there is no partial-payment model. A payment may outlive its order.
type Payment struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"order_id"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

type PaymentMethod struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name" validate:"required"`
	Status    ActivityStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

package domain

import "time"

type ServiceStatus string

const (
	ServiceQueued     ServiceStatus = "queued"
	ServiceInProgress ServiceStatus = "in_progress"
	ServiceDone       ServiceStatus = "done"
)

// OrderCustomer is the customer snapshot embedded in an order. Vehicle holds
// the plate number chosen when the order was opened; the snapshot survives
// later edits or deletion of the customer record.
type OrderCustomer struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Vehicle string `json:"vehicle"`
}

// OrderPart is one part line on an order. UnitPrice is snapshotted from the
// part's sell price at the moment the line was added.
type OrderPart struct {
	PartID    int64   `json:"part_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type ServiceOrder struct {
	ID            int64         `json:"id"`
	Customer      OrderCustomer `json:"customer"`
	Complaint     string        `json:"complaint" validate:"required"`
	MechanicID    int64         `json:"mechanic_id" validate:"required"`
	Date          string        `json:"date"`
	Status        ServiceStatus `json:"status"`
	PartsUsed     []OrderPart   `json:"parts_used"`
	ServiceFee    float64       `json:"service_fee" validate:"gte=0"`
	TotalCost     float64       `json:"total_cost"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// PartsSubtotal sums quantity times the snapshotted unit price over all lines.
func (o *ServiceOrder) PartsSubtotal() float64 {
	var sum float64
	for _, p := range o.PartsUsed {
		sum += float64(p.Quantity) * p.UnitPrice
	}
	return sum
}

// RecalcTotal recomputes the stored TotalCost from the parts list and the
// service fee. Called on every save path that can change either.
func (o *ServiceOrder) RecalcTotal() {
	o.TotalCost = o.PartsSubtotal() + o.ServiceFee
}

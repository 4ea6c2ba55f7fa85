package order

import "bengkel/internal/domain"

// CreatePayload opens a new order. Vehicle is the plate number picked from the
// customer's registered vehicles; it is stored as part of the snapshot.
type CreatePayload struct {
	CustomerID int64   `json:"customer_id" binding:"required"`
	Vehicle    string  `json:"vehicle" binding:"required"`
	Complaint  string  `json:"complaint" binding:"required"`
	MechanicID int64   `json:"mechanic_id" binding:"required"`
	Date       string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	ServiceFee float64 `json:"service_fee" binding:"gte=0"`
}

// UpdatePayload replaces the editable fields of an order. The customer
// snapshot and the parts list are carried over from the stored record.
type UpdatePayload struct {
	Complaint  string  `json:"complaint" binding:"required"`
	MechanicID int64   `json:"mechanic_id" binding:"required"`
	Date       string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Status     string  `json:"status" binding:"omitempty,oneof=queued in_progress done"`
	ServiceFee float64 `json:"service_fee" binding:"gte=0"`
}

type AddPartPayload struct {
	PartID   int64 `json:"part_id" binding:"required"`
	Quantity int   `json:"quantity" binding:"required,gt=0"`
}

// SessionEdit is the state of the open payment dialog. When present, it is
// applied to the stored order before the total is recomputed, so edits made
// while the dialog was open are not lost.
type SessionEdit struct {
	Complaint  string  `json:"complaint"`
	MechanicID int64   `json:"mechanic_id"`
	Date       string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Status     string  `json:"status" binding:"omitempty,oneof=queued in_progress done"`
	ServiceFee float64 `json:"service_fee" binding:"gte=0"`
}

type PaymentRequest struct {
	Method string       `json:"method" binding:"required"`
	Order  *SessionEdit `json:"order"`
}

// PaymentResult is returned by the payment workflow. Order is nil when the
// order was deleted while the dialog was open; the payment is kept anyway.
type PaymentResult struct {
	Payment *domain.Payment      `json:"payment"`
	Order   *domain.ServiceOrder `json:"order,omitempty"`
}

type Recommendation struct {
	RecommendedMethod string `json:"recommended_method"`
	Reason            string `json:"reason"`
}

type exportRow struct {
	ID            int64   `csv:"ID_Order"`
	Customer      string  `csv:"Pelanggan"`
	Vehicle       string  `csv:"Kendaraan"`
	Complaint     string  `csv:"Keluhan"`
	Mechanic      string  `csv:"Mekanik"`
	Date          string  `csv:"Tanggal"`
	Status        string  `csv:"Status"`
	TotalCost     float64 `csv:"Total_Biaya"`
	PaymentStatus string  `csv:"Status_Pembayaran"`
}

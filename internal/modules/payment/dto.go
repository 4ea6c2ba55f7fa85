package payment

import "bengkel/internal/domain"

// deletedPartLabel is shown on invoice lines whose part record is gone.
const deletedPartLabel = "Suku Cadang Dihapus"

// orphanLabel stands in for the customer of a payment whose order was deleted.
const orphanLabel = "N/A"

// ListedPayment is a payment joined with the customer name of its order.
type ListedPayment struct {
	domain.Payment
	CustomerName string `json:"customer_name"`
}

// InvoiceLine is one billed part on the invoice.
type InvoiceLine struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// Invoice is the full document behind the print view. Everything the client
// needs to render it is resolved server-side.
type Invoice struct {
	Workshop        domain.WorkshopProfile `json:"workshop"`
	OrderID         int64                  `json:"order_id"`
	Date            string                 `json:"date"`
	CustomerName    string                 `json:"customer_name"`
	CustomerAddress string                 `json:"customer_address"`
	CustomerPhone   string                 `json:"customer_phone"`
	VehiclePlate    string                 `json:"vehicle_plate"`
	VehicleModel    string                 `json:"vehicle_model"`
	MechanicName    string                 `json:"mechanic_name"`
	Complaint       string                 `json:"complaint"`
	Lines           []InvoiceLine          `json:"lines"`
	PartsSubtotal   float64                `json:"parts_subtotal"`
	ServiceFee      float64                `json:"service_fee"`
	TotalCost       float64                `json:"total_cost"`
	PaymentStatus   domain.PaymentStatus   `json:"payment_status"`
}

type exportRow struct {
	ID       int64   `csv:"ID_Pembayaran"`
	OrderID  int64   `csv:"ID_Order"`
	Customer string  `csv:"Pelanggan"`
	Date     string  `csv:"Tanggal"`
	Amount   float64 `csv:"Jumlah"`
	Method   string  `csv:"Metode"`
}

package domain

// WorkshopProfile is the fixed single-tenant workshop identity shown on
// invoices and the settings screen. Changing it is a deployment concern.
type WorkshopProfile struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

var DefaultProfile = WorkshopProfile{
	Name:    "Bengkel Mobil Maju Jaya",
	Address: "Jl. Otomotif No. 123, Jakarta",
	Phone:   "(021) 555-1234",
	Email:   "admin@bengkelmaju.com",
}

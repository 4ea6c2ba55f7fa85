package customer

type VehiclePayload struct {
	PlateNumber string `json:"plate_number" validate:"required"`
	Model       string `json:"model" validate:"required"`
}

type CustomerPayload struct {
	Name     string           `json:"name" validate:"required"`
	Phone    string           `json:"phone" validate:"required"`
	Address  string           `json:"address" validate:"required"`
	Email    string           `json:"email" validate:"omitempty,email"`
	Vehicles []VehiclePayload `json:"vehicles" validate:"dive"`
}

// exportRow mirrors the customer CSV layout of the dashboard export.
type exportRow struct {
	ID       int64  `csv:"ID"`
	Name     string `csv:"Nama"`
	Phone    string `csv:"Telepon"`
	Address  string `csv:"Alamat"`
	Email    string `csv:"Email"`
	Vehicles string `csv:"Kendaraan"`
}

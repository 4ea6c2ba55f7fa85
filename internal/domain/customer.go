package domain

import "time"

type Vehicle struct {
	PlateNumber string `json:"plate_number" validate:"required"`
	Model       string `json:"model" validate:"required"`
}

// Customer embeds its vehicles; they are not a separate collection.
type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Phone     string    `json:"phone" validate:"required"`
	Address   string    `json:"address" validate:"required"`
	Email     string    `json:"email,omitempty" validate:"omitempty,email"`
	Vehicles  []Vehicle `json:"vehicles"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package domain

import "time"

type Employee struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name" validate:"required"`
	Role           Role           `json:"role" validate:"required"`
	Phone          string         `json:"phone" validate:"required"`
	Status         ActivityStatus `json:"status"`
	Specialization string         `json:"specialization,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

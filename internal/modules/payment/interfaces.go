package payment

import (
	"context"

	"bengkel/internal/domain"
)

type PaymentRepository interface {
	List(ctx context.Context) ([]domain.Payment, error)
}

type OrderReader interface {
	List(ctx context.Context) ([]domain.ServiceOrder, error)
	GetByID(ctx context.Context, id int64) (*domain.ServiceOrder, error)
}

type CustomerReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

type EmployeeReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
}

type PartReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Part, error)
}

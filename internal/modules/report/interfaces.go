package report

import (
	"context"

	"bengkel/internal/domain"
)

type OrderReader interface {
	List(ctx context.Context) ([]domain.ServiceOrder, error)
	ListRecent(ctx context.Context, limit int) ([]domain.ServiceOrder, error)
}

type PaymentReader interface {
	List(ctx context.Context) ([]domain.Payment, error)
}

type PartReader interface {
	ListBelowStock(ctx context.Context, threshold int) ([]domain.Part, error)
}

type CustomerReader interface {
	List(ctx context.Context) ([]domain.Customer, error)
}

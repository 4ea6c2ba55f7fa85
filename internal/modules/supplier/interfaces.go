package supplier

import (
	"context"

	"bengkel/internal/domain"
)

type SupplierRepository interface {
	List(ctx context.Context) ([]domain.Supplier, error)
	GetByID(ctx context.Context, id int64) (*domain.Supplier, error)
	Create(ctx context.Context, s *domain.Supplier) error
	Update(ctx context.Context, s *domain.Supplier) error
	AppendPurchase(ctx context.Context, id int64, p domain.Purchase) error
	Delete(ctx context.Context, id int64) error
}

// StockAdjuster is the slice of the part repository the purchase flow needs.
type StockAdjuster interface {
	AdjustStock(ctx context.Context, id int64, delta int) error
}

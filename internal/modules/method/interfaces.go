package method

import (
	"context"

	"bengkel/internal/domain"
)

type PaymentMethodRepository interface {
	List(ctx context.Context) ([]domain.PaymentMethod, error)
	ListActive(ctx context.Context) ([]domain.PaymentMethod, error)
	GetByID(ctx context.Context, id int64) (*domain.PaymentMethod, error)
	Create(ctx context.Context, m *domain.PaymentMethod) error
	Update(ctx context.Context, m *domain.PaymentMethod) error
	Delete(ctx context.Context, id int64) error
}

package customer

import (
	"context"

	"bengkel/internal/domain"
)

type CustomerRepository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) error
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id int64) error
}

package inventory

import (
	"context"

	"bengkel/internal/domain"
)

type PartRepository interface {
	List(ctx context.Context) ([]domain.Part, error)
	ListBelowStock(ctx context.Context, threshold int) ([]domain.Part, error)
	GetByID(ctx context.Context, id int64) (*domain.Part, error)
	Create(ctx context.Context, p *domain.Part) error
	Update(ctx context.Context, p *domain.Part) error
	Delete(ctx context.Context, id int64) error
}

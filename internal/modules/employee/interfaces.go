package employee

import (
	"context"

	"bengkel/internal/domain"
)

type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, e *domain.Employee) error
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id int64) error
}

package order

import (
	"context"

	"bengkel/internal/domain"
	"bengkel/internal/pkg/gemini"
)

type OrderRepository interface {
	List(ctx context.Context) ([]domain.ServiceOrder, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.ServiceOrder, error)
	GetByID(ctx context.Context, id int64) (*domain.ServiceOrder, error)
	Create(ctx context.Context, o *domain.ServiceOrder) error
	Update(ctx context.Context, o *domain.ServiceOrder) error
	Delete(ctx context.Context, id int64) error
}

type PartReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Part, error)
}

type CustomerReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

type EmployeeReader interface {
	List(ctx context.Context) ([]domain.Employee, error)
}

type PaymentWriter interface {
	Create(ctx context.Context, p *domain.Payment) error
	ListByOrders(ctx context.Context, orderIDs []int64) ([]domain.Payment, error)
}

type MethodReader interface {
	ListActive(ctx context.Context) ([]domain.PaymentMethod, error)
}

// Recommender abstracts the Gemini client so tests can stub the model call.
type Recommender interface {
	SuggestPaymentMethod(ctx context.Context, prompt string, allowed []string) (*gemini.Suggestion, error)
}

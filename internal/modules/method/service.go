package method

import (
	"context"
	"errors"

	"bengkel/internal/domain"
	"bengkel/internal/pkg/idgen"
	"bengkel/internal/repository"
)

var ErrNotFound = errors.New("payment method not found")

type Service struct {
	methods PaymentMethodRepository
	ids     *idgen.Generator
}

func NewService(methods PaymentMethodRepository, ids *idgen.Generator) *Service {
	return &Service{methods: methods, ids: ids}
}

func (s *Service) List(ctx context.Context) ([]domain.PaymentMethod, error) {
	return s.methods.List(ctx)
}

// Active lists the methods offered in the payment dialog. Inactive methods
// stay on stored payments but cannot be picked for new ones.
func (s *Service) Active(ctx context.Context) ([]domain.PaymentMethod, error) {
	return s.methods.ListActive(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.PaymentMethod, error) {
	m, err := s.methods.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *Service) Create(ctx context.Context, req MethodPayload) (*domain.PaymentMethod, error) {
	status := domain.ActivityStatus(req.Status)
	if status == "" {
		status = domain.StatusActive
	}

	m := &domain.PaymentMethod{
		ID:     s.ids.Next(),
		Name:   req.Name,
		Status: status,
	}
	if err := s.methods.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Update(ctx context.Context, id int64, req MethodPayload) (*domain.PaymentMethod, error) {
	status := domain.ActivityStatus(req.Status)
	if status == "" {
		status = domain.StatusActive
	}

	m := &domain.PaymentMethod{
		ID:     id,
		Name:   req.Name,
		Status: status,
	}
	if err := s.methods.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.methods.Delete(ctx, id)
}

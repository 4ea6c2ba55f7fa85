package employee

import (
	"context"

	"bengkel/internal/domain"
	"bengkel/internal/pkg/idgen"
	"bengkel/internal/repository"
)

type Service struct {
	employees EmployeeRepository
	ids       *idgen.Generator
}

func NewService(employees EmployeeRepository, ids *idgen.Generator) *Service {
	return &Service{employees: employees, ids: ids}
}

func (s *Service) List(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.List(ctx)
}

// Mechanics lists the employees assignable to a service order.
func (s *Service) Mechanics(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.ListByRole(ctx, domain.RoleMechanic)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	e, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) Create(ctx context.Context, req EmployeePayload) (*domain.Employee, error) {
	status := domain.ActivityStatus(req.Status)
	if status == "" {
		status = domain.StatusActive
	}

	e := &domain.Employee{
		ID:             s.ids.Next(),
		Name:           req.Name,
		Role:           domain.Role(req.Role),
		Phone:          req.Phone,
		Status:         status,
		Specialization: req.Specialization,
	}
	if err := s.employees.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Update replaces the record by id, silently ignoring unknown ids.
func (s *Service) Update(ctx context.Context, id int64, req EmployeePayload) (*domain.Employee, error) {
	status := domain.ActivityStatus(req.Status)
	if status == "" {
		status = domain.StatusActive
	}

	e := &domain.Employee{
		ID:             id,
		Name:           req.Name,
		Role:           domain.Role(req.Role),
		Phone:          req.Phone,
		Status:         status,
		Specialization: req.Specialization,
	}
	if err := s.employees.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.employees.Delete(ctx, id)
}

func (s *Service) ExportRows(ctx context.Context) ([]exportRow, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]exportRow, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, exportRow{
			ID:             e.ID,
			Name:           e.Name,
			Role:           string(e.Role),
			Phone:          e.Phone,
			Status:         string(e.Status),
			Specialization: e.Specialization,
		})
	}
	return rows, nil
}

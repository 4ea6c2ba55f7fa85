package customer

import (
	"context"
	"fmt"
	"strings"

	"bengkel/internal/domain"
	"bengkel/internal/pkg/idgen"
	"bengkel/internal/repository"
)

type Service struct {
	customers CustomerRepository
	ids       *idgen.Generator
}

func NewService(customers CustomerRepository, ids *idgen.Generator) *Service {
	return &Service{customers: customers, ids: ids}
}

func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, req CustomerPayload) (*domain.Customer, error) {
	c := &domain.Customer{
		ID:       s.ids.Next(),
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		Email:    req.Email,
		Vehicles: toVehicles(req.Vehicles),
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the record by id. An unknown id is a silent no-op: the
// collection keeps replace-if-present semantics.
func (s *Service) Update(ctx context.Context, id int64, req CustomerPayload) (*domain.Customer, error) {
	c := &domain.Customer{
		ID:       id,
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		Email:    req.Email,
		Vehicles: toVehicles(req.Vehicles),
	}
	if err := s.customers.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.customers.Delete(ctx, id)
}

// ExportRows flattens the collection for the CSV download, with vehicles
// rendered as "Model (Plate)" joined by semicolons.
func (s *Service) ExportRows(ctx context.Context) ([]exportRow, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]exportRow, 0, len(customers))
	for _, c := range customers {
		vehicles := make([]string, 0, len(c.Vehicles))
		for _, v := range c.Vehicles {
			vehicles = append(vehicles, fmt.Sprintf("%s (%s)", v.Model, v.PlateNumber))
		}
		rows = append(rows, exportRow{
			ID:       c.ID,
			Name:     c.Name,
			Phone:    c.Phone,
			Address:  c.Address,
			Email:    c.Email,
			Vehicles: strings.Join(vehicles, "; "),
		})
	}
	return rows, nil
}

func toVehicles(in []VehiclePayload) []domain.Vehicle {
	out := make([]domain.Vehicle, 0, len(in))
	for _, v := range in {
		out = append(out, domain.Vehicle{PlateNumber: v.PlateNumber, Model: v.Model})
	}
	return out
}

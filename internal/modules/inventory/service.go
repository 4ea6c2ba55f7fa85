package inventory

import (
	"context"
	"errors"

	"bengkel/internal/domain"
	"bengkel/internal/pkg/idgen"
	"bengkel/internal/repository"
)

// DefaultLowStockThreshold is the reports-screen cutoff; the dashboard
// card uses the tighter value of 5.
const DefaultLowStockThreshold = 10

var ErrNotFound = errors.New("part not found")

type Service struct {
	parts PartRepository
	ids   *idgen.Generator
}

func NewService(parts PartRepository, ids *idgen.Generator) *Service {
	return &Service{parts: parts, ids: ids}
}

func (s *Service) List(ctx context.Context) ([]domain.Part, error) {
	return s.parts.List(ctx)
}

func (s *Service) LowStock(ctx context.Context, threshold int) ([]domain.Part, error) {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return s.parts.ListBelowStock(ctx, threshold)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Part, error) {
	p, err := s.parts.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, req PartPayload) (*domain.Part, error) {
	p := &domain.Part{
		ID:        s.ids.Next(),
		Name:      req.Name,
		Category:  req.Category,
		Stock:     req.Stock,
		BuyPrice:  req.BuyPrice,
		SellPrice: req.SellPrice,
		Unit:      req.Unit,
	}
	if err := s.parts.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id int64, req PartPayload) (*domain.Part, error) {
	p := &domain.Part{
		ID:        id,
		Name:      req.Name,
		Category:  req.Category,
		Stock:     req.Stock,
		BuyPrice:  req.BuyPrice,
		SellPrice: req.SellPrice,
		Unit:      req.Unit,
	}
	if err := s.parts.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.parts.Delete(ctx, id)
}

func (s *Service) ExportRows(ctx context.Context) ([]exportRow, error) {
	parts, err := s.parts.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]exportRow, 0, len(parts))
	for _, p := range parts {
		rows = append(rows, exportRow{
			Name:      p.Name,
			Category:  p.Category,
			Stock:     p.Stock,
			BuyPrice:  p.BuyPrice,
			SellPrice: p.SellPrice,
			Unit:      p.Unit,
		})
	}
	return rows, nil
}

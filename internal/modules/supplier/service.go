package supplier

import (
	"context"
	"time"

	"bengkel/internal/domain"
	"bengkel/internal/pkg/idgen"
	"bengkel/internal/repository"
)

type Service struct {
	suppliers SupplierRepository
	parts     StockAdjuster
	ids       *idgen.Generator
}

func NewService(suppliers SupplierRepository, parts StockAdjuster, ids *idgen.Generator) *Service {
	return &Service{suppliers: suppliers, parts: parts, ids: ids}
}

func (s *Service) List(ctx context.Context) ([]domain.Supplier, error) {
	return s.suppliers.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Supplier, error) {
	sup, err := s.suppliers.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sup, nil
}

func (s *Service) Create(ctx context.Context, req SupplierPayload) (*domain.Supplier, error) {
	status := domain.ActivityStatus(req.Status)
	if status == "" {
		status = domain.StatusActive
	}

	sup := &domain.Supplier{
		ID:              s.ids.Next(),
		Name:            req.Name,
		Contact:         req.Contact,
		Address:         req.Address,
		Status:          status,
		PurchaseHistory: []domain.Purchase{},
	}
	if err := s.suppliers.Create(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

// Update replaces the editable fields of a supplier. The purchase history is
// carried over from the stored record; it is only ever extended through
// RecordPurchase.
func (s *Service) Update(ctx context.Context, id int64, req SupplierPayload) (*domain.Supplier, error) {
	existing, err := s.suppliers.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			// Match the save-by-id semantics elsewhere: updating a
			// record that is gone is a no-op, not an error.
			return nil, nil
		}
		return nil, err
	}

	existing.Name = req.Name
	existing.Contact = req.Contact
	existing.Address = req.Address
	if req.Status != "" {
		existing.Status = domain.ActivityStatus(req.Status)
	}
	if err := s.suppliers.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.suppliers.Delete(ctx, id)
}

// RecordPurchase books a restock from a supplier: the purchase is appended to
// the supplier's history and the part's stock is raised by the quantity.
func (s *Service) RecordPurchase(ctx context.Context, id int64, req PurchasePayload) (*domain.Supplier, error) {
	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	purchase := domain.Purchase{
		Date:     date,
		PartID:   req.PartID,
		Quantity: req.Quantity,
		BuyPrice: req.BuyPrice,
	}

	if err := s.parts.AdjustStock(ctx, req.PartID, req.Quantity); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrPartNotFound
		}
		return nil, err
	}
	if err := s.suppliers.AppendPurchase(ctx, id, purchase); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *Service) ExportRows(ctx context.Context) ([]exportRow, error) {
	suppliers, err := s.suppliers.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]exportRow, 0, len(suppliers))
	for _, sup := range suppliers {
		rows = append(rows, exportRow{
			ID:      sup.ID,
			Name:    sup.Name,
			Contact: sup.Contact,
			Address: sup.Address,
			Status:  string(sup.Status),
		})
	}
	return rows, nil
}

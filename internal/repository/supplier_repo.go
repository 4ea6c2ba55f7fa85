package repository

import (
	"context"
	"encoding/json"
	"time"

	"bengkel/internal/domain"

	"gorm.io/gorm"
)

type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

type supplierRow struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	Name            string    `gorm:"column:name"`
	Contact         string    `gorm:"column:contact"`
	Address         string    `gorm:"column:address"`
	Status          string    `gorm:"column:status"`
	PurchaseHistory string    `gorm:"column:purchase_history;type:text"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (supplierRow) TableName() string { return "suppliers" }

func toDomainSupplier(m supplierRow) *domain.Supplier {
	var history []domain.Purchase
	if m.PurchaseHistory != "" {
		_ = json.Unmarshal([]byte(m.PurchaseHistory), &history)
	}

	return &domain.Supplier{
		ID:              m.ID,
		Name:            m.Name,
		Contact:         m.Contact,
		Address:         m.Address,
		Status:          domain.ActivityStatus(m.Status),
		PurchaseHistory: history,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toSupplierRow(s *domain.Supplier) supplierRow {
	history, _ := json.Marshal(s.PurchaseHistory)

	return supplierRow{
		ID:              s.ID,
		Name:            s.Name,
		Contact:         s.Contact,
		Address:         s.Address,
		Status:          string(s.Status),
		PurchaseHistory: string(history),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (r *SupplierRepository) List(ctx context.Context) ([]domain.Supplier, error) {
	var rows []supplierRow
	if tx := r.db.WithContext(ctx).Order("id").Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Supplier, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainSupplier(m))
	}
	return out, nil
}

func (r *SupplierRepository) GetByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	var m supplierRow
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSupplier(m), nil
}

func (r *SupplierRepository) Create(ctx context.Context, s *domain.Supplier) error {
	m := toSupplierRow(s)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainSupplier(m)
	return nil
}

func (r *SupplierRepository) Update(ctx context.Context, s *domain.Supplier) error {
	m := toSupplierRow(s)
	tx := r.db.WithContext(ctx).
		Model(&supplierRow{}).
		Where("id = ?", s.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&m)
	return tx.Error
}

// AppendPurchase adds one entry to the supplier's purchase history.
func (r *SupplierRepository) AppendPurchase(ctx context.Context, id int64, p domain.Purchase) error {
	s, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	s.PurchaseHistory = append(s.PurchaseHistory, p)
	return r.Update(ctx, s)
}

func (r *SupplierRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&supplierRow{}, id).Error
}

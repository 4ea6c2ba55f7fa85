package repository

import (
	"context"
	"time"

	"bengkel/internal/domain"

	"gorm.io/gorm"
)

type PaymentMethodRepository struct {
	db *gorm.DB
}

func NewPaymentMethodRepository(db *gorm.DB) *PaymentMethodRepository {
	return &PaymentMethodRepository{db: db}
}

type paymentMethodRow struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (paymentMethodRow) TableName() string { return "payment_methods" }

func toDomainPaymentMethod(m paymentMethodRow) *domain.PaymentMethod {
	return &domain.PaymentMethod{
		ID:        m.ID,
		Name:      m.Name,
		Status:    domain.ActivityStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *PaymentMethodRepository) List(ctx context.Context) ([]domain.PaymentMethod, error) {
	var rows []paymentMethodRow
	if tx := r.db.WithContext(ctx).Order("id").Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.PaymentMethod, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPaymentMethod(m))
	}
	return out, nil
}

// ListActive returns the methods offered for new payments.
func (r *PaymentMethodRepository) ListActive(ctx context.Context) ([]domain.PaymentMethod, error) {
	var rows []paymentMethodRow
	tx := r.db.WithContext(ctx).Where("status = ?", string(domain.StatusActive)).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.PaymentMethod, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPaymentMethod(m))
	}
	return out, nil
}

func (r *PaymentMethodRepository) GetByID(ctx context.Context, id int64) (*domain.PaymentMethod, error) {
	var m paymentMethodRow
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPaymentMethod(m), nil
}

func (r *PaymentMethodRepository) Create(ctx context.Context, pm *domain.PaymentMethod) error {
	m := paymentMethodRow{
		ID:        pm.ID,
		Name:      pm.Name,
		Status:    string(pm.Status),
		CreatedAt: pm.CreatedAt,
		UpdatedAt: pm.UpdatedAt,
	}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*pm = *toDomainPaymentMethod(m)
	return nil
}

func (r *PaymentMethodRepository) Update(ctx context.Context, pm *domain.PaymentMethod) error {
	m := paymentMethodRow{
		ID:        pm.ID,
		Name:      pm.Name,
		Status:    string(pm.Status),
		UpdatedAt: pm.UpdatedAt,
	}
	tx := r.db.WithContext(ctx).
		Model(&paymentMethodRow{}).
		Where("id = ?", pm.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&m)
	return tx.Error
}

func (r *PaymentMethodRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&paymentMethodRow{}, id).Error
}

package repository

import (
	"context"
	"time"

	"bengkel/internal/domain"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type paymentRow struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	OrderID   int64     `gorm:"column:order_id"`
	Amount    float64   `gorm:"column:amount"`
	Method    string    `gorm:"column:method"`
	Date      string    `gorm:"column:date"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (paymentRow) TableName() string { return "payments" }

func toDomainPayment(m paymentRow) *domain.Payment {
	return &domain.Payment{
		ID:        m.ID,
		OrderID:   m.OrderID,
		Amount:    m.Amount,
		Method:    m.Method,
		Date:      m.Date,
		CreatedAt: m.CreatedAt,
	}
}

func (r *PaymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	var rows []paymentRow
	if tx := r.db.WithContext(ctx).Order("id").Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Payment, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPayment(m))
	}
	return out, nil
}

func (r *PaymentRepository) ListByOrders(ctx context.Context, orderIDs []int64) ([]domain.Payment, error) {
	if len(orderIDs) == 0 {
		return []domain.Payment{}, nil
	}
	var rows []paymentRow
	tx := r.db.WithContext(ctx).Where("order_id IN ?", orderIDs).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Payment, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPayment(m))
	}
	return out, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	m := paymentRow{
		ID:        p.ID,
		OrderID:   p.OrderID,
		Amount:    p.Amount,
		Method:    p.Method,
		Date:      p.Date,
		CreatedAt: p.CreatedAt,
	}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPayment(m)
	return nil
}

package repository

import (
	"context"
	"encoding/json"
	"time"

	"bengkel/internal/domain"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

type orderRow struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	CustomerID      int64     `gorm:"column:customer_id"`
	CustomerName    string    `gorm:"column:customer_name"`
	CustomerVehicle string    `gorm:"column:customer_vehicle"`
	Complaint       string    `gorm:"column:complaint;type:text"`
	MechanicID      int64     `gorm:"column:mechanic_id"`
	Date            string    `gorm:"column:date"`
	Status          string    `gorm:"column:status"`
	PartsUsed       string    `gorm:"column:parts_used;type:text"`
	ServiceFee      float64   `gorm:"column:service_fee"`
	TotalCost       float64   `gorm:"column:total_cost"`
	PaymentStatus   string    `gorm:"column:payment_status"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (orderRow) TableName() string { return "service_orders" }

func toDomainOrder(m orderRow) *domain.ServiceOrder {
	var parts []domain.OrderPart
	if m.PartsUsed != "" {
		_ = json.Unmarshal([]byte(m.PartsUsed), &parts)
	}

	return &domain.ServiceOrder{
		ID: m.ID,
		Customer: domain.OrderCustomer{
			ID:      m.CustomerID,
			Name:    m.CustomerName,
			Vehicle: m.CustomerVehicle,
		},
		Complaint:     m.Complaint,
		MechanicID:    m.MechanicID,
		Date:          m.Date,
		Status:        domain.ServiceStatus(m.Status),
		PartsUsed:     parts,
		ServiceFee:    m.ServiceFee,
		TotalCost:     m.TotalCost,
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toOrderRow(o *domain.ServiceOrder) orderRow {
	parts, _ := json.Marshal(o.PartsUsed)

	return orderRow{
		ID:              o.ID,
		CustomerID:      o.Customer.ID,
		CustomerName:    o.Customer.Name,
		CustomerVehicle: o.Customer.Vehicle,
		Complaint:       o.Complaint,
		MechanicID:      o.MechanicID,
		Date:            o.Date,
		Status:          string(o.Status),
		PartsUsed:       string(parts),
		ServiceFee:      o.ServiceFee,
		TotalCost:       o.TotalCost,
		PaymentStatus:   string(o.PaymentStatus),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func (r *OrderRepository) List(ctx context.Context) ([]domain.ServiceOrder, error) {
	var rows []orderRow
	if tx := r.db.WithContext(ctx).Order("id").Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.ServiceOrder, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainOrder(m))
	}
	return out, nil
}

// ListRecent returns the newest orders first, capped at limit.
func (r *OrderRepository) ListRecent(ctx context.Context, limit int) ([]domain.ServiceOrder, error) {
	var rows []orderRow
	tx := r.db.WithContext(ctx).Order("id desc").Limit(limit).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.ServiceOrder, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainOrder(m))
	}
	return out, nil
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.ServiceOrder, error) {
	var rows []orderRow
	tx := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.ServiceOrder, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainOrder(m))
	}
	return out, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceOrder, error) {
	var m orderRow
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainOrder(m), nil
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.ServiceOrder) error {
	m := toOrderRow(o)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*o = *toDomainOrder(m)
	return nil
}

func (r *OrderRepository) Update(ctx context.Context, o *domain.ServiceOrder) error {
	m := toOrderRow(o)
	tx := r.db.WithContext(ctx).
		Model(&orderRow{}).
		Where("id = ?", o.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&m)
	return tx.Error
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&orderRow{}, id).Error
}

package repository

import (
	"context"
	"encoding/json"
	"time"

	"bengkel/internal/domain"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type customerRow struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Phone     string    `gorm:"column:phone"`
	Address   string    `gorm:"column:address"`
	Email     *string   `gorm:"column:email"`
	Vehicles  string    `gorm:"column:vehicles;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (customerRow) TableName() string { return "customers" }

func toDomainCustomer(m customerRow) *domain.Customer {
	var email string
	if m.Email != nil {
		email = *m.Email
	}

	var vehicles []domain.Vehicle
	if m.Vehicles != "" {
		_ = json.Unmarshal([]byte(m.Vehicles), &vehicles)
	}

	return &domain.Customer{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		Address:   m.Address,
		Email:     email,
		Vehicles:  vehicles,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toCustomerRow(c *domain.Customer) customerRow {
	var email *string
	if c.Email != "" {
		v := c.Email
		email = &v
	}

	vehicles, _ := json.Marshal(c.Vehicles)

	return customerRow{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		Email:     email,
		Vehicles:  string(vehicles),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	var rows []customerRow
	if tx := r.db.WithContext(ctx).Order("id").Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Customer, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainCustomer(m))
	}
	return out, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var m customerRow
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCustomer(m), nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	m := toCustomerRow(c)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCustomer(m)
	return nil
}

// Update replaces the record matched by id. An unknown id changes nothing
// and is not an error: the collection semantics are replace-if-present.
func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	m := toCustomerRow(c)
	tx := r.db.WithContext(ctx).
		Model(&customerRow{}).
		Where("id = ?", c.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&m)
	return tx.Error
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&customerRow{}, id).Error
}

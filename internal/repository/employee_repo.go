package repository

import (
	"context"
	"time"

	"bengkel/internal/domain"

	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

type employeeRow struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	Name           string    `gorm:"column:name"`
	Role           string    `gorm:"column:role"`
	Phone          string    `gorm:"column:phone"`
	Status         string    `gorm:"column:status"`
	Specialization *string   `gorm:"column:specialization"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (employeeRow) TableName() string { return "employees" }

func toDomainEmployee(m employeeRow) *domain.Employee {
	var specialization string
	if m.Specialization != nil {
		specialization = *m.Specialization
	}

	return &domain.Employee{
		ID:             m.ID,
		Name:           m.Name,
		Role:           domain.Role(m.Role),
		Phone:          m.Phone,
		Status:         domain.ActivityStatus(m.Status),
		Specialization: specialization,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toEmployeeRow(e *domain.Employee) employeeRow {
	var specialization *string
	if e.Specialization != "" {
		v := e.Specialization
		specialization = &v
	}

	return employeeRow{
		ID:             e.ID,
		Name:           e.Name,
		Role:           string(e.Role),
		Phone:          e.Phone,
		Status:         string(e.Status),
		Specialization: specialization,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	var rows []employeeRow
	if tx := r.db.WithContext(ctx).Order("id").Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Employee, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainEmployee(m))
	}
	return out, nil
}

func (r *EmployeeRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.Employee, error) {
	var rows []employeeRow
	tx := r.db.WithContext(ctx).Where("role = ?", string(role)).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Employee, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainEmployee(m))
	}
	return out, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var m employeeRow
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainEmployee(m), nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	m := toEmployeeRow(e)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainEmployee(m)
	return nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	m := toEmployeeRow(e)
	tx := r.db.WithContext(ctx).
		Model(&employeeRow{}).
		Where("id = ?", e.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&m)
	return tx.Error
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&employeeRow{}, id).Error
}

package repository

import (
	"context"
	"errors"

	"bengkel/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userRow struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	Name     string `gorm:"column:name"`
	Username string `gorm:"column:username"`
	Role     string `gorm:"column:role"`
}

func (userRow) TableName() string { return "users" }

func toDomainUser(m userRow) *domain.User {
	return &domain.User{
		ID:       m.ID,
		Name:     m.Name,
		Username: m.Username,
		Role:     domain.Role(m.Role),
	}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	if tx := r.db.WithContext(ctx).Order("id").Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainUser(m))
	}
	return out, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m userRow
	tx := r.db.WithContext(ctx).Where("username = ?", username).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userRow
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := userRow{ID: u.ID, Name: u.Name, Username: u.Username, Role: string(u.Role)}
	return r.db.WithContext(ctx).Create(&m).Error
}

// IsNotFound reports whether err means the record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

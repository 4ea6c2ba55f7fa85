package repository

import (
	"context"
	"time"

	"bengkel/internal/domain"

	"gorm.io/gorm"
)

type PartRepository struct {
	db *gorm.DB
}

func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{db: db}
}

type partRow struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Category  string    `gorm:"column:category"`
	Stock     int       `gorm:"column:stock"`
	BuyPrice  float64   `gorm:"column:buy_price"`
	SellPrice float64   `gorm:"column:sell_price"`
	Unit      string    `gorm:"column:unit"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (partRow) TableName() string { return "parts" }

func toDomainPart(m partRow) *domain.Part {
	return &domain.Part{
		ID:        m.ID,
		Name:      m.Name,
		Category:  m.Category,
		Stock:     m.Stock,
		BuyPrice:  m.BuyPrice,
		SellPrice: m.SellPrice,
		Unit:      m.Unit,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toPartRow(p *domain.Part) partRow {
	return partRow{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Stock:     p.Stock,
		BuyPrice:  p.BuyPrice,
		SellPrice: p.SellPrice,
		Unit:      p.Unit,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (r *PartRepository) List(ctx context.Context) ([]domain.Part, error) {
	var rows []partRow
	if tx := r.db.WithContext(ctx).Order("id").Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Part, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPart(m))
	}
	return out, nil
}

func (r *PartRepository) ListBelowStock(ctx context.Context, threshold int) ([]domain.Part, error) {
	var rows []partRow
	tx := r.db.WithContext(ctx).Where("stock < ?", threshold).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Part, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPart(m))
	}
	return out, nil
}

func (r *PartRepository) GetByID(ctx context.Context, id int64) (*domain.Part, error) {
	var m partRow
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPart(m), nil
}

func (r *PartRepository) Create(ctx context.Context, p *domain.Part) error {
	m := toPartRow(p)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPart(m)
	return nil
}

func (r *PartRepository) Update(ctx context.Context, p *domain.Part) error {
	m := toPartRow(p)
	tx := r.db.WithContext(ctx).
		Model(&partRow{}).
		Where("id = ?", p.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&m)
	return tx.Error
}

// AdjustStock adds delta to a part's stock count. Used by the supplier
// purchase flow; a negative delta is allowed but never produced today.
func (r *PartRepository) AdjustStock(ctx context.Context, id int64, delta int) error {
	tx := r.db.WithContext(ctx).
		Model(&partRow{}).
		Where("id = ?", id).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PartRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&partRow{}, id).Error
}

package system

import (
	"context"

	"bengkel/internal/database"
	"bengkel/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Profile() domain.WorkshopProfile {
	return domain.DefaultProfile
}

// Reset wipes every collection and reseeds the defaults. This is the
// settings-screen danger-zone action; there is no undo.
func (s *Service) Reset(ctx context.Context) error {
	return database.Reset(ctx, s.db)
}

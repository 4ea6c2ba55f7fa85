package auth

import (
	"context"

	"bengkel/internal/domain"
	"bengkel/internal/pkg/jwt"
	"bengkel/internal/repository"
)

type Service struct {
	users UserRepository
	jwt   *jwt.Service
}

func NewService(users UserRepository, jwt *jwt.Service) *Service {
	return &Service{users: users, jwt: jwt}
}

// Users returns the predefined operator list shown on the login picker.
func (s *Service) Users(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Login resolves the picked username and issues a session token. The login
// screen is a role picker; there is no password to check.
func (s *Service) Login(ctx context.Context, username string) (*LoginResponse, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	token, err := s.jwt.GenerateToken(u.ID, u.Username, string(u.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResponse{User: u, Token: token}, nil
}

func (s *Service) Me(ctx context.Context, userID int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

package repository

import (
	"context"

	"github.com/jhoicas/cliente360-api/internal/domain/entity"
)

// UserRepository puerto de persistencia de usuarios (asesores).
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmailAndCompany(ctx context.Context, email, companyID string) (*entity.User, error)
}

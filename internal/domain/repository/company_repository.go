package repository

import (
	"context"

	"github.com/jhoicas/cliente360-api/internal/domain/entity"
)

// CompanyRepository puerto de persistencia de empresas (tenants).
type CompanyRepository interface {
	Create(ctx context.Context, c *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
}

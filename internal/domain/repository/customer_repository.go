package repository

import (
	"context"

	"github.com/jhoicas/cliente360-api/internal/domain/entity"
)

// CustomerRepository puerto de persistencia de clientes.
// Los métodos Get devuelven (nil, nil) cuando el recurso no existe;
// el error queda reservado para fallas de infraestructura.
type CustomerRepository interface {
	Create(ctx context.Context, c *entity.Customer) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Customer, error)
	GetByCompanyAndEmail(ctx context.Context, companyID, email string) (*entity.Customer, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Customer, error)
	Update(ctx context.Context, c *entity.Customer) error
	Delete(ctx context.Context, companyID, id string) error
}

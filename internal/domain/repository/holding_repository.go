package repository

import (
	"context"

	"github.com/jhoicas/cliente360-api/internal/domain/entity"
)

// HoldingRepository puerto de persistencia de productos en poder del cliente.
type HoldingRepository interface {
	Create(ctx context.Context, h *entity.Holding) error
	GetByID(ctx context.Context, id string) (*entity.Holding, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Holding, error)
	Update(ctx context.Context, h *entity.Holding) error
	Delete(ctx context.Context, id string) error
}

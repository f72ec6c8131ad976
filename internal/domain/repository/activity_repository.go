package repository

import (
	"context"

	"github.com/jhoicas/cliente360-api/internal/domain/entity"
)

// ActivityRepository puerto de persistencia de la línea de tiempo.
// ListByCustomer es paginado y devuelve también el total para la UI.
type ActivityRepository interface {
	Create(ctx context.Context, a *entity.Activity) error
	ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*entity.Activity, int, error)
}

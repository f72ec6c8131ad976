package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/cliente360-api/internal/domain/entity"
	"github.com/jhoicas/cliente360-api/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo implementación de ActivityRepository (usable con pool o tx).
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

// Create persiste un evento de la línea de tiempo.
func (r *ActivityRepo) Create(ctx context.Context, a *entity.Activity) error {
	query := `
		INSERT INTO activities (id, customer_id, kind, description, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.CustomerID, a.Kind, a.Description, a.OccurredAt, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// ListByCustomer lista la línea de tiempo paginada, lo más reciente primero.
// Devuelve también el total de eventos del cliente para la paginación.
func (r *ActivityRepo) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*entity.Activity, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM activities WHERE customer_id = $1`, customerID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count activities: %w", err)
	}

	query := `
		SELECT id, customer_id, kind, description, occurred_at, created_at
		FROM activities WHERE customer_id = $1
		ORDER BY occurred_at DESC, id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, customerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()
	var list []*entity.Activity
	for rows.Next() {
		var a entity.Activity
		if err := rows.Scan(&a.ID, &a.CustomerID, &a.Kind, &a.Description, &a.OccurredAt, &a.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, &a)
	}
	return list, total, rows.Err()
}

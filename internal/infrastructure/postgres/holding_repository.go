package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cliente360-api/internal/domain/entity"
	"github.com/jhoicas/cliente360-api/internal/domain/repository"
)

var _ repository.HoldingRepository = (*HoldingRepo)(nil)

// HoldingRepo implementación de HoldingRepository (usable con pool o tx).
type HoldingRepo struct {
	q Querier
}

// NewHoldingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewHoldingRepository(q Querier) *HoldingRepo {
	return &HoldingRepo{q: q}
}

// Create persiste un producto en poder del cliente.
func (r *HoldingRepo) Create(ctx context.Context, h *entity.Holding) error {
	query := `
		INSERT INTO holdings (id, customer_id, product_name, quantity, installed_at, next_service_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		h.ID, h.CustomerID, h.ProductName, h.Quantity, h.InstalledAt, h.NextServiceAt,
		h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert holding: %w", err)
	}
	return nil
}

// GetByID obtiene un holding por ID.
func (r *HoldingRepo) GetByID(ctx context.Context, id string) (*entity.Holding, error) {
	query := `
		SELECT id, customer_id, product_name, quantity, installed_at, next_service_at, created_at, updated_at
		FROM holdings WHERE id = $1`
	var h entity.Holding
	err := r.q.QueryRow(ctx, query, id).Scan(
		&h.ID, &h.CustomerID, &h.ProductName, &h.Quantity, &h.InstalledAt, &h.NextServiceAt,
		&h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get holding: %w", err)
	}
	return &h, nil
}

// ListByCustomer lista los productos del cliente, el próximo servicio primero.
func (r *HoldingRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Holding, error) {
	query := `
		SELECT id, customer_id, product_name, quantity, installed_at, next_service_at, created_at, updated_at
		FROM holdings WHERE customer_id = $1
		ORDER BY next_service_at NULLS LAST, product_name`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list holdings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Holding
	for rows.Next() {
		var h entity.Holding
		if err := rows.Scan(&h.ID, &h.CustomerID, &h.ProductName, &h.Quantity, &h.InstalledAt, &h.NextServiceAt, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan holding: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

// Update actualiza un holding.
func (r *HoldingRepo) Update(ctx context.Context, h *entity.Holding) error {
	query := `
		UPDATE holdings SET product_name = $2, quantity = $3, installed_at = $4, next_service_at = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		h.ID, h.ProductName, h.Quantity, h.InstalledAt, h.NextServiceAt, h.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update holding: %w", err)
	}
	return nil
}

// Delete elimina un holding por ID.
func (r *HoldingRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM holdings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete holding: %w", err)
	}
	return nil
}

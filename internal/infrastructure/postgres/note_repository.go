package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cliente360-api/internal/domain/entity"
	"github.com/jhoicas/cliente360-api/internal/domain/repository"
)

var _ repository.NoteRepository = (*NoteRepo)(nil)

// NoteRepo implementación de NoteRepository (usable con pool o tx).
type NoteRepo struct {
	q Querier
}

// NewNoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNoteRepository(q Querier) *NoteRepo {
	return &NoteRepo{q: q}
}

// Create persiste una nota.
func (r *NoteRepo) Create(ctx context.Context, n *entity.Note) error {
	query := `
		INSERT INTO notes (id, customer_id, author_id, body, pinned, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		n.ID, n.CustomerID, n.AuthorID, n.Body, n.Pinned, n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

// GetByID obtiene una nota por ID.
func (r *NoteRepo) GetByID(ctx context.Context, id string) (*entity.Note, error) {
	query := `
		SELECT id, customer_id, author_id, body, pinned, created_at, updated_at
		FROM notes WHERE id = $1`
	var n entity.Note
	err := r.q.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.CustomerID, &n.AuthorID, &n.Body, &n.Pinned, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get note: %w", err)
	}
	return &n, nil
}

// ListByCustomer lista las notas en el orden canónico del panel:
// fijadas primero, luego última actualización descendente, ID como desempate.
func (r *NoteRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Note, error) {
	query := `
		SELECT id, customer_id, author_id, body, pinned, created_at, updated_at
		FROM notes WHERE customer_id = $1
		ORDER BY pinned DESC, updated_at DESC, id`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Note
	for rows.Next() {
		var n entity.Note
		if err := rows.Scan(&n.ID, &n.CustomerID, &n.AuthorID, &n.Body, &n.Pinned, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// SetPinned fija o desfija una nota actualizando también updated_at.
func (r *NoteRepo) SetPinned(ctx context.Context, id string, pinned bool, updatedAt time.Time) error {
	_, err := r.q.Exec(ctx, `UPDATE notes SET pinned = $2, updated_at = $3 WHERE id = $1`, id, pinned, updatedAt)
	if err != nil {
		return fmt.Errorf("pin note: %w", err)
	}
	return nil
}

// Delete elimina una nota por ID.
func (r *NoteRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

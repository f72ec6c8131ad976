package repository

import (
	"context"
	"time"

	"github.com/jhoicas/cliente360-api/internal/domain/entity"
)

// NoteRepository puerto de persistencia de notas.
// ListByCustomer devuelve el orden canónico del panel: fijadas primero,
// luego por última actualización descendente, con el ID como desempate.
type NoteRepository interface {
	Create(ctx context.Context, n *entity.Note) error
	GetByID(ctx context.Context, id string) (*entity.Note, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Note, error)
	SetPinned(ctx context.Context, id string, pinned bool, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

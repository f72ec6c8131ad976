package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/cliente360-api/internal/application/dto"
	"github.com/jhoicas/cliente360-api/internal/domain"
	"github.com/jhoicas/cliente360-api/internal/domain/entity"
	"github.com/jhoicas/cliente360-api/internal/domain/repository"
)

// NoteUseCase notas del asesor sobre un cliente, con el orden canónico del
// panel: fijadas primero, luego última actualización descendente.
type NoteUseCase struct {
	repo         repository.NoteRepository
	customerRepo repository.CustomerRepository
}

// NewNoteUseCase construye el caso de uso.
func NewNoteUseCase(repo repository.NoteRepository, customerRepo repository.CustomerRepository) *NoteUseCase {
	return &NoteUseCase{repo: repo, customerRepo: customerRepo}
}

// Create registra una nota sobre el cliente.
func (uc *NoteUseCase) Create(ctx context.Context, companyID, customerID, authorID string, in dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	if in.Body == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(ctx, companyID, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	n := &entity.Note{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		AuthorID:   authorID,
		Body:       in.Body,
		Pinned:     in.Pinned,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	out := toNoteResponse(n)
	return &out, nil
}

// List notas del cliente en el orden canónico.
func (uc *NoteUseCase) List(ctx context.Context, customerID string) ([]dto.NoteResponse, error) {
	list, err := uc.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	SortNotes(list)
	out := make([]dto.NoteResponse, 0, len(list))
	for _, n := range list {
		out = append(out, toNoteResponse(n))
	}
	return out, nil
}

// SetPinned fija o suelta la nota y devuelve la lista reordenada del cliente,
// para que la UI pueda aplicar el reordenamiento de una vez.
func (uc *NoteUseCase) SetPinned(ctx context.Context, noteID string, pinned bool) ([]dto.NoteResponse, error) {
	n, err := uc.repo.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.SetPinned(ctx, noteID, pinned, time.Now()); err != nil {
		return nil, err
	}
	return uc.List(ctx, n.CustomerID)
}

// Delete elimina la nota.
func (uc *NoteUseCase) Delete(ctx context.Context, noteID string) error {
	n, err := uc.repo.GetByID(ctx, noteID)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, noteID)
}

// SortNotes ordena in situ con el criterio determinista del panel: fijadas
// primero, luego por última actualización descendente y el ID como desempate
// final. El mismo conjunto produce siempre el mismo orden, también después
// de cualquier mutación de pin.
func SortNotes(list []*entity.Note) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Pinned != b.Pinned {
			return a.Pinned
		}
		if !a.UpdatedAt.Equal(b.UpdatedAt) {
			return a.UpdatedAt.After(b.UpdatedAt)
		}
		return a.ID < b.ID
	})
}

func toNoteResponse(n *entity.Note) dto.NoteResponse {
	return dto.NoteResponse{
		ID:         n.ID,
		CustomerID: n.CustomerID,
		AuthorID:   n.AuthorID,
		Body:       n.Body,
		Pinned:     n.Pinned,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

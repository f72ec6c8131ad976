package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/cliente360-api/internal/application/dto"
	"github.com/jhoicas/cliente360-api/internal/domain"
	"github.com/jhoicas/cliente360-api/internal/domain/entity"
	"github.com/jhoicas/cliente360-api/internal/domain/repository"
)

var validActivityKinds = map[string]bool{
	entity.ActivityPurchase: true,
	entity.ActivityCall:     true,
	entity.ActivityEmail:    true,
	entity.ActivityVisit:    true,
	entity.ActivityService:  true,
	entity.ActivityOther:    true,
}

// ActivityUseCase línea de tiempo del cliente.
type ActivityUseCase struct {
	repo         repository.ActivityRepository
	customerRepo repository.CustomerRepository
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(repo repository.ActivityRepository, customerRepo repository.CustomerRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo, customerRepo: customerRepo}
}

// Record registra un evento. occurred_at vacío = ahora.
func (uc *ActivityUseCase) Record(ctx context.Context, companyID, customerID string, in dto.RecordActivityRequest) (*dto.ActivityResponse, error) {
	if in.Description == "" || !validActivityKinds[in.Kind] {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(ctx, companyID, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	occurred := time.Now()
	if in.OccurredAt != "" {
		t, err := time.Parse(time.RFC3339, in.OccurredAt)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		occurred = t
	}

	a := &entity.Activity{
		ID:          uuid.New().String(),
		CustomerID:  customerID,
		Kind:        in.Kind,
		Description: in.Description,
		OccurredAt:  occurred,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return &dto.ActivityResponse{
		ID:          a.ID,
		CustomerID:  a.CustomerID,
		Kind:        a.Kind,
		Description: a.Description,
		OccurredAt:  a.OccurredAt,
	}, nil
}

// List página de la línea de tiempo, más reciente primero.
func (uc *ActivityUseCase) List(ctx context.Context, customerID string, page dto.PageRequest) (*dto.ActivityPageDTO, error) {
	page.DefaultPage()
	items, total, err := uc.repo.ListByCustomer(ctx, customerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActivityResponse, 0, len(items))
	for _, a := range items {
		out = append(out, dto.ActivityResponse{
			ID:          a.ID,
			CustomerID:  a.CustomerID,
			Kind:        a.Kind,
			Description: a.Description,
			OccurredAt:  a.OccurredAt,
		})
	}
	return &dto.ActivityPageDTO{
		Items: out,
		Total: total,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

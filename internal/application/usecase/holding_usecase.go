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

// HoldingUseCase gestión de productos en poder del cliente.
type HoldingUseCase struct {
	repo         repository.HoldingRepository
	customerRepo repository.CustomerRepository
}

// NewHoldingUseCase construye el caso de uso.
func NewHoldingUseCase(repo repository.HoldingRepository, customerRepo repository.CustomerRepository) *HoldingUseCase {
	return &HoldingUseCase{repo: repo, customerRepo: customerRepo}
}

// Create registra un producto para el cliente. product_name es obligatorio
// y quantity debe ser >= 1. Ambas fechas son opcionales.
func (uc *HoldingUseCase) Create(ctx context.Context, companyID, customerID string, in dto.CreateHoldingRequest) (*entity.Holding, error) {
	if in.ProductName == "" || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(ctx, companyID, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	installed, err := parseDate(in.InstalledAt)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	next, err := parseDate(in.NextServiceAt)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	h := &entity.Holding{
		ID:            uuid.New().String(),
		CustomerID:    customerID,
		ProductName:   in.ProductName,
		Quantity:      in.Quantity,
		InstalledAt:   installed,
		NextServiceAt: next,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// List productos del cliente.
func (uc *HoldingUseCase) List(ctx context.Context, customerID string) ([]*entity.Holding, error) {
	return uc.repo.ListByCustomer(ctx, customerID)
}

// Update edición parcial de cantidad y fechas de servicio.
func (uc *HoldingUseCase) Update(ctx context.Context, id string, in dto.UpdateHoldingRequest) (*entity.Holding, error) {
	h, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, domain.ErrNotFound
	}

	if in.Quantity != nil {
		if *in.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		h.Quantity = *in.Quantity
	}
	if in.InstalledAt != nil {
		installed, err := parseDate(*in.InstalledAt)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		h.InstalledAt = installed
	}
	if in.NextServiceAt != nil {
		next, err := parseDate(*in.NextServiceAt)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		h.NextServiceAt = next
	}
	h.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// Delete elimina el registro del producto.
func (uc *HoldingUseCase) Delete(ctx context.Context, id string) error {
	h, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if h == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

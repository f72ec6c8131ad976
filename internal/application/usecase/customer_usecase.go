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

// CustomerUseCase CRUD de clientes, acotado por empresa.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente. first_name y email son obligatorios; el email es
// único por empresa.
func (uc *CustomerUseCase) Create(ctx context.Context, companyID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.FirstName == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCompanyAndEmail(ctx, companyID, in.Email)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	dob, err := parseDate(in.DateOfBirth)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	lastPurchase, err := parseDate(in.LastPurchaseAt)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.TotalTransactions < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	c := &entity.Customer{
		ID:                 uuid.New().String(),
		CompanyID:          companyID,
		FirstName:          in.FirstName,
		LastName:           in.LastName,
		Email:              in.Email,
		Phone:              in.Phone,
		DateOfBirth:        dob,
		SegmentationStatus: in.SegmentationStatus,
		TotalTransactions:  in.TotalTransactions,
		CLV:                in.CLV,
		TotalSpend:         in.TotalSpend,
		LastPurchaseAt:     lastPurchase,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := toCustomerResponse(c)
	return &out, nil
}

// Get detalle de un cliente.
func (uc *CustomerUseCase) Get(ctx context.Context, companyID, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	out := toCustomerResponse(c)
	return &out, nil
}

// List clientes de la empresa con paginación.
func (uc *CustomerUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) ([]dto.CustomerResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update edición parcial del perfil: solo los campos presentes en el request
// se escriben (last-write-wins por campo, la política del autoguardado del
// panel). El resto del registro queda intacto.
func (uc *CustomerUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	if in.FirstName != nil {
		c.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		c.LastName = *in.LastName
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.DateOfBirth != nil {
		dob, err := parseDate(*in.DateOfBirth)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		c.DateOfBirth = dob
	}
	if in.SegmentationStatus != nil {
		c.SegmentationStatus = *in.SegmentationStatus
	}
	if in.TotalTransactions != nil {
		if *in.TotalTransactions < 0 {
			return nil, domain.ErrInvalidInput
		}
		c.TotalTransactions = *in.TotalTransactions
	}
	if in.CLV != nil {
		c.CLV = in.CLV
	}
	if in.TotalSpend != nil {
		c.TotalSpend = *in.TotalSpend
	}
	if in.LastPurchaseAt != nil {
		lp, err := parseDate(*in.LastPurchaseAt)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		c.LastPurchaseAt = lp
	}
	c.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	out := toCustomerResponse(c)
	return &out, nil
}

// Delete elimina el cliente y, por cascada en la BD, sus colecciones.
func (uc *CustomerUseCase) Delete(ctx context.Context, companyID, id string) error {
	c, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, companyID, id)
}

// parseDate "2006-01-02" → *time.Time; cadena vacía → nil sin error.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	out := dto.CustomerResponse{
		ID:                 c.ID,
		CompanyID:          c.CompanyID,
		FirstName:          c.FirstName,
		LastName:           c.LastName,
		Email:              c.Email,
		Phone:              c.Phone,
		SegmentationStatus: c.SegmentationStatus,
		TotalTransactions:  c.TotalTransactions,
		CLV:                c.CLV,
		TotalSpend:         c.TotalSpend,
		LastPurchaseAt:     c.LastPurchaseAt,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
	if c.DateOfBirth != nil {
		s := c.DateOfBirth.Format("2006-01-02")
		out.DateOfBirth = &s
	}
	return out
}

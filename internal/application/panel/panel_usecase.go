// Package panel arma la vista Cliente 360: perfil, puntuaciones, productos
// con su ciclo de vida, notas, actividades y las sugerencias del motor NBA.
package panel

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/cliente360-api/internal/application/dto"
	"github.com/jhoicas/cliente360-api/internal/domain"
	"github.com/jhoicas/cliente360-api/internal/domain/entity"
	"github.com/jhoicas/cliente360-api/internal/domain/repository"
	"github.com/jhoicas/cliente360-api/internal/domain/scoring"
)

// PanelUseCase evaluación del panel 360. Sin estado propio: cada llamada
// recalcula todo a partir del último estado persistido.
type PanelUseCase struct {
	customerRepo repository.CustomerRepository
	holdingRepo  repository.HoldingRepository
	noteRepo     repository.NoteRepository
	activityRepo repository.ActivityRepository
	events       EventPublisher // opcional: nil = sin publicación
}

// NewPanelUseCase construye el caso de uso. events puede ser nil.
func NewPanelUseCase(
	customerRepo repository.CustomerRepository,
	holdingRepo repository.HoldingRepository,
	noteRepo repository.NoteRepository,
	activityRepo repository.ActivityRepository,
	events EventPublisher,
) *PanelUseCase {
	return &PanelUseCase{
		customerRepo: customerRepo,
		holdingRepo:  holdingRepo,
		noteRepo:     noteRepo,
		activityRepo: activityRepo,
		events:       events,
	}
}

// GetPanel arma la vista 360 del cliente.
// La ausencia del cliente es terminal (ErrNotFound). Las fallas al leer
// holdings, notas o actividades se absorben a vacío: el panel siempre llega
// bien formado aunque el esquema de esas tablas esté a medio aprovisionar.
func (uc *PanelUseCase) GetPanel(ctx context.Context, companyID, customerID string, page dto.PageRequest) (*dto.PanelDTO, error) {
	page.DefaultPage()
	now := time.Now()

	customer, err := uc.customerRepo.GetByID(ctx, companyID, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	holdings, err := uc.holdingRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		log.Warn().Err(err).Str("customer_id", customerID).Msg("leer holdings falló; el panel continúa vacío")
		holdings = nil
	}
	notes, err := uc.noteRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		log.Warn().Err(err).Str("customer_id", customerID).Msg("leer notas falló; el panel continúa vacío")
		notes = nil
	}
	activities, total, err := uc.activityRepo.ListByCustomer(ctx, customerID, page.Limit, page.Offset)
	if err != nil {
		log.Warn().Err(err).Str("customer_id", customerID).Msg("leer actividades falló; el panel continúa vacío")
		activities, total = nil, 0
	}

	grade := scoring.GradeRFM(customer.RFM)
	suggestions := scoring.Evaluate(customer, now)

	out := &dto.PanelDTO{
		Customer: customerToResponse(customer),
		Score: dto.ScoreDTO{
			RFMGrade:     grade.Grade,
			RFMAverage:   grade.Average,
			RFMDefaulted: grade.Defaulted,
			CLV:          scoring.LifetimeValue(customer.CLV, customer.TotalSpend),
			Tier:         string(scoring.ClassifySegment(customer.SegmentationStatus)),
		},
		Suggestions: suggestionsToDTO(suggestions),
		Holdings:    holdingsToDTO(holdings, now),
		Notes:       notesToDTO(notes),
		Activities: dto.ActivityPageDTO{
			Items: activitiesToDTO(activities),
			Total: total,
			Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
		},
		EvaluatedAt: now,
	}

	if uc.events != nil {
		ids := make([]string, 0, len(suggestions))
		for _, s := range suggestions {
			ids = append(ids, string(s.ID))
		}
		uc.events.PanelEvaluated(ctx, PanelEvaluatedEvent{
			CompanyID:   companyID,
			CustomerID:  customerID,
			Tier:        out.Score.Tier,
			RFMGrade:    grade.Grade,
			Suggestions: ids,
			EvaluatedAt: now,
		})
	}

	return out, nil
}

// ── mapeo entidad → DTO ───────────────────────────────────────────────────────

func customerToResponse(c *entity.Customer) dto.CustomerResponse {
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

func suggestionsToDTO(list []scoring.Suggestion) []dto.SuggestionDTO {
	out := make([]dto.SuggestionDTO, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SuggestionDTO{
			ID:          string(s.ID),
			Type:        string(s.Type),
			Title:       s.Title,
			Description: s.Description,
			ActionLabel: s.ActionLabel,
		})
	}
	return out
}

func holdingsToDTO(list []*entity.Holding, now time.Time) []dto.HoldingViewDTO {
	out := make([]dto.HoldingViewDTO, 0, len(list))
	for _, h := range list {
		view := dto.HoldingViewDTO{
			ID:            h.ID,
			ProductName:   h.ProductName,
			Quantity:      h.Quantity,
			InstalledAt:   h.InstalledAt,
			NextServiceAt: h.NextServiceAt,
			UsageProgress: scoring.UsageProgress(h, now),
		}
		days, ok := scoring.DaysRemaining(h, now)
		if ok {
			d := days
			view.DaysRemaining = &d
		}
		status := scoring.ServiceStatusFor(days, ok)
		view.Status = string(status)
		view.Severity = scoring.Severity(status)
		out = append(out, view)
	}
	return out
}

func notesToDTO(list []*entity.Note) []dto.NoteResponse {
	out := make([]dto.NoteResponse, 0, len(list))
	for _, n := range list {
		out = append(out, dto.NoteResponse{
			ID:         n.ID,
			CustomerID: n.CustomerID,
			AuthorID:   n.AuthorID,
			Body:       n.Body,
			Pinned:     n.Pinned,
			CreatedAt:  n.CreatedAt,
			UpdatedAt:  n.UpdatedAt,
		})
	}
	return out
}

func activitiesToDTO(list []*entity.Activity) []dto.ActivityResponse {
	out := make([]dto.ActivityResponse, 0, len(list))
	for _, a := range list {
		out = append(out, dto.ActivityResponse{
			ID:          a.ID,
			CustomerID:  a.CustomerID,
			Kind:        a.Kind,
			Description: a.Description,
			OccurredAt:  a.OccurredAt,
		})
	}
	return out
}

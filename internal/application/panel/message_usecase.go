package panel

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/cliente360-api/internal/application/dto"
	"github.com/jhoicas/cliente360-api/internal/application/ports"
	"github.com/jhoicas/cliente360-api/internal/domain"
	"github.com/jhoicas/cliente360-api/internal/domain/repository"
	"github.com/jhoicas/cliente360-api/internal/domain/scoring"
)

const (
	// generationTimeout tope por llamada al generador: las latencias del LLM
	// no deben bloquear los goroutines del servidor.
	generationTimeout = 10 * time.Second

	// fallbackMessage texto fijo cuando la generación externa falla. El error
	// se absorbe aquí: el usuario ve esto y puede reintentar cuando quiera.
	fallbackMessage = "No fue posible generar el mensaje en este momento. Intenta de nuevo en unos segundos."

	// noPurchaseDisplay centinela explícito cuando no hay última compra;
	// nunca se pasa una cadena vacía ni un nil al generador.
	noPurchaseDisplay = "sin compras registradas"
)

// MessageUseCase puente sugerencia → mensaje. Es la única operación
// asíncrona del núcleo: delega la redacción al colaborador externo.
// No memoiza nada: repetir la llamada regenera el borrador y el anterior
// se considera descartado.
type MessageUseCase struct {
	customerRepo repository.CustomerRepository
	generator    ports.MessageGenerator
	events       EventPublisher // opcional
}

// NewMessageUseCase construye el puente. events puede ser nil.
func NewMessageUseCase(customerRepo repository.CustomerRepository, generator ports.MessageGenerator, events EventPublisher) *MessageUseCase {
	return &MessageUseCase{customerRepo: customerRepo, generator: generator, events: events}
}

// DraftMessage redacta un borrador para la sugerencia elegida.
// La sugerencia debe seguir vigente para el cliente (se reevalúa el motor);
// un ID fuera de la enumeración es ErrInvalidInput y uno no vigente
// ErrNotFound. Cualquier falla del generador (timeout, salida vacía,
// error HTTP) se absorbe con el mensaje de cortesía y Fallback=true.
func (uc *MessageUseCase) DraftMessage(ctx context.Context, companyID, customerID string, in dto.DraftMessageRequest) (*dto.MessageDraftDTO, error) {
	id := scoring.SuggestionID(in.SuggestionID)
	hint, ok := scoring.ContextHintFor(id)
	if !ok {
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
	if !suggestionActive(scoring.Evaluate(customer, now), id) {
		return nil, domain.ErrNotFound
	}

	lastPurchase := noPurchaseDisplay
	if customer.LastPurchaseAt != nil {
		lastPurchase = customer.LastPurchaseAt.Format("02/01/2006")
	}

	genCtx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	text, err := uc.generator.GenerateMarketingMessage(genCtx, customer.FirstName, hint, lastPurchase)
	fallback := false
	if err != nil || strings.TrimSpace(text) == "" {
		log.Warn().Err(err).
			Str("customer_id", customerID).
			Str("suggestion_id", string(id)).
			Msg("generación de mensaje falló; se responde el texto de cortesía")
		text = fallbackMessage
		fallback = true
	}

	if uc.events != nil {
		uc.events.MessageDrafted(ctx, MessageDraftedEvent{
			CompanyID:    companyID,
			CustomerID:   customerID,
			SuggestionID: string(id),
			Fallback:     fallback,
			DraftedAt:    now,
		})
	}

	return &dto.MessageDraftDTO{
		SuggestionID: string(id),
		ContextHint:  hint,
		Message:      strings.TrimSpace(text),
		Fallback:     fallback,
		GeneratedAt:  now,
	}, nil
}

func suggestionActive(list []scoring.Suggestion, id scoring.SuggestionID) bool {
	for _, s := range list {
		if s.ID == id {
			return true
		}
	}
	return false
}

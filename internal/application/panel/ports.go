package panel

import (
	"context"
	"time"

	"github.com/jhoicas/cliente360-api/internal/application/dto"
)

// EventPublisher puerto de salida para eventos de dominio del panel.
// Las publicaciones son best-effort: el adaptador registra sus propias fallas
// y nunca devuelve error al caso de uso (el panel no depende del broker).
type EventPublisher interface {
	PanelEvaluated(ctx context.Context, ev PanelEvaluatedEvent)
	MessageDrafted(ctx context.Context, ev MessageDraftedEvent)
}

// PanelEvaluatedEvent se emite en cada evaluación completa del panel.
type PanelEvaluatedEvent struct {
	CompanyID   string    `json:"company_id"`
	CustomerID  string    `json:"customer_id"`
	Tier        string    `json:"tier"`
	RFMGrade    string    `json:"rfm_grade"`
	Suggestions []string  `json:"suggestions"` // IDs en orden de evaluación
	EvaluatedAt time.Time `json:"evaluated_at"`
}

// MessageDraftedEvent se emite por cada borrador solicitado, incluya o no
// el fallback.
type MessageDraftedEvent struct {
	CompanyID    string    `json:"company_id"`
	CustomerID   string    `json:"customer_id"`
	SuggestionID string    `json:"suggestion_id"`
	Fallback     bool      `json:"fallback"`
	DraftedAt    time.Time `json:"drafted_at"`
}

// PDFGenerator puerto de salida para la representación PDF del panel.
type PDFGenerator interface {
	RenderPanel(ctx context.Context, p *dto.PanelDTO) ([]byte, error)
}

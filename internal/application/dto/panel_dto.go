package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PanelDTO respuesta de GET /api/customers/:id/panel — la vista 360 completa.
// Todo se recalcula en cada petición a partir del último estado persistido;
// el panel no guarda nada entre llamadas.
type PanelDTO struct {
	Customer    CustomerResponse `json:"customer"`
	Score       ScoreDTO         `json:"score"`
	Suggestions []SuggestionDTO  `json:"suggestions"`
	Holdings    []HoldingViewDTO `json:"holdings"`
	Notes       []NoteResponse   `json:"notes"`
	Activities  ActivityPageDTO  `json:"activities"`
	EvaluatedAt time.Time        `json:"evaluated_at"`
}

// ScoreDTO puntuaciones derivadas del cliente.
type ScoreDTO struct {
	RFMGrade   string          `json:"rfm_grade"`   // "A".."D"
	RFMAverage float64         `json:"rfm_average"` // promedio 1–5
	// RFMDefaulted indica que el cliente no tiene RFM medido y la letra sale
	// de la puntuación neutra sintética.
	RFMDefaulted bool            `json:"rfm_defaulted"`
	CLV          decimal.Decimal `json:"clv"`
	Tier         string          `json:"tier"` // active | at_risk | churn
}

// SuggestionDTO siguiente-mejor-acción recomendada, en orden de evaluación.
type SuggestionDTO struct {
	ID          string `json:"id"`   // birthday | retention | upsell | default
	Type        string `json:"type"` // birthday | retention | upsell
	Title       string `json:"title"`
	Description string `json:"description"`
	ActionLabel string `json:"action_label"`
}

// HoldingViewDTO producto del cliente con su estado de ciclo de vida.
// DaysRemaining es nil cuando no hay fecha de próximo servicio.
type HoldingViewDTO struct {
	ID            string     `json:"id"`
	ProductName   string     `json:"product_name"`
	Quantity      int        `json:"quantity"`
	InstalledAt   *time.Time `json:"installed_at,omitempty"`
	NextServiceAt *time.Time `json:"next_service_at,omitempty"`
	UsageProgress float64    `json:"usage_progress"` // 0–100
	DaysRemaining *int       `json:"days_remaining,omitempty"`
	Status        string     `json:"status"`   // neutral | overdue | due_soon | warning | healthy
	Severity      string     `json:"severity"` // neutral | critical | warning | healthy
}

// ActivityPageDTO página de la línea de tiempo dentro del panel.
type ActivityPageDTO struct {
	Items []ActivityResponse `json:"items"`
	Total int                `json:"total"`
	Page  PageResponse       `json:"page"`
}

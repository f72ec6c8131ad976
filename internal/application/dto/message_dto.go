package dto

import "time"

// DraftMessageRequest petición de borrador de mensaje para una sugerencia
// del panel. suggestion_id: birthday | retention | upsell | default.
type DraftMessageRequest struct {
	SuggestionID string `json:"suggestion_id"`
}

// MessageDraftDTO borrador generado. Cada petición produce un texto nuevo
// (no hay memoización): el borrador anterior se considera descartado.
// Fallback=true indica que la generación externa falló y el texto es el
// mensaje fijo de cortesía; el usuario puede reintentar.
type MessageDraftDTO struct {
	SuggestionID string    `json:"suggestion_id"`
	ContextHint  string    `json:"context_hint"`
	Message      string    `json:"message"`
	Fallback     bool      `json:"fallback"`
	GeneratedAt  time.Time `json:"generated_at"`
}

package dto

import "time"

// RecordActivityRequest registro de un evento en la línea de tiempo.
// occurred_at opcional en RFC 3339; vacío = ahora.
type RecordActivityRequest struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
	OccurredAt  string `json:"occurred_at,omitempty"`
}

// ActivityResponse evento de la línea de tiempo.
type ActivityResponse struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurred_at"`
}

package entity

import "time"

// Tipos de actividad registrables en la línea de tiempo del cliente.
const (
	ActivityPurchase = "purchase"
	ActivityCall     = "call"
	ActivityEmail    = "email"
	ActivityVisit    = "visit"
	ActivityService  = "service"
	ActivityOther    = "other"
)

// Activity evento de la línea de tiempo del cliente (compra, llamada, visita...).
type Activity struct {
	ID          string
	CustomerID  string
	Kind        string // ver constantes Activity*
	Description string
	OccurredAt  time.Time
	CreatedAt   time.Time
}

package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RFMScore puntuación Recencia/Frecuencia/Monetario del cliente (escala 1–5).
// Grade es la letra precalculada por el pipeline de datos; el scorer del panel
// recalcula la suya y no usa este campo para decidir.
type RFMScore struct {
	Recency   int
	Frequency int
	Monetary  int
	Grade     string // "A".."D", informativo
}

// Customer representa un cliente de la empresa (vista 360).
// Los campos opcionales del perfil son punteros: nil significa "sin dato",
// nunca un cero implícito. El motor de sugerencias consume esta entidad
// tal cual, sin estado propio entre evaluaciones.
type Customer struct {
	ID                 string
	CompanyID          string
	FirstName          string
	LastName           string
	Email              string
	Phone              string
	DateOfBirth        *time.Time
	SegmentationStatus string // etiqueta libre del pipeline de segmentación ("Leal", "En Riesgo", ...)
	TotalTransactions  int
	RFM                *RFMScore
	CLV                *decimal.Decimal // nil = sin estimación; un cero explícito se respeta
	TotalSpend         decimal.Decimal  // acumulado de compras, fallback del CLV
	LastPurchaseAt     *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// FullName nombre completo para despliegue y mensajes.
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

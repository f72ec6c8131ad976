package entity

import "time"

// Holding representa un producto en poder del cliente, con su ciclo de vida
// de mantenimiento (instalación → próximo servicio).
// InstalledAt y NextServiceAt pueden faltar en registros antiguos; el
// calculador de ciclo de vida tolera ambos ausentes.
type Holding struct {
	ID            string
	CustomerID    string
	ProductName   string // denormalizado para despliegue
	Quantity      int    // siempre >= 1
	InstalledAt   *time.Time
	NextServiceAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

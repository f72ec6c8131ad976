package entity

import "time"

// Note nota interna del asesor sobre un cliente.
// El orden de presentación es determinista: fijadas primero, luego por
// última actualización descendente, con el ID como desempate final.
type Note struct {
	ID         string
	CustomerID string
	AuthorID   string
	Body       string
	Pinned     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

package entity

import "time"

// Company representa una organización/tenant del sistema.
// Todo recurso (clientes, notas, usuarios) está acotado por CompanyID.
type Company struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

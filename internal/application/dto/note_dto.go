package dto

import "time"

// CreateNoteRequest alta de nota sobre un cliente.
type CreateNoteRequest struct {
	Body   string `json:"body"`
	Pinned bool   `json:"pinned"`
}

// PinNoteRequest fijar o soltar una nota.
type PinNoteRequest struct {
	Pinned bool `json:"pinned"`
}

// NoteResponse nota en el orden canónico del panel (fijadas primero,
// luego última actualización descendente).
type NoteResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	AuthorID   string    `json:"author_id"`
	Body       string    `json:"body"`
	Pinned     bool      `json:"pinned"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

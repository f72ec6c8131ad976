package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest alta de cliente. Las fechas van en "2006-01-02".
type CreateCustomerRequest struct {
	FirstName          string           `json:"first_name"`
	LastName           string           `json:"last_name"`
	Email              string           `json:"email"`
	Phone              string           `json:"phone"`
	DateOfBirth        string           `json:"date_of_birth,omitempty"`
	SegmentationStatus string           `json:"segmentation_status,omitempty"`
	TotalTransactions  int              `json:"total_transactions"`
	CLV                *decimal.Decimal `json:"clv,omitempty"`
	TotalSpend         decimal.Decimal  `json:"total_spend"`
	LastPurchaseAt     string           `json:"last_purchase_at,omitempty"`
}

// UpdateCustomerRequest edición parcial del perfil: solo los campos presentes
// (no nil) se escriben. La semántica es last-write-wins por campo.
type UpdateCustomerRequest struct {
	FirstName          *string          `json:"first_name,omitempty"`
	LastName           *string          `json:"last_name,omitempty"`
	Email              *string          `json:"email,omitempty"`
	Phone              *string          `json:"phone,omitempty"`
	DateOfBirth        *string          `json:"date_of_birth,omitempty"`
	SegmentationStatus *string          `json:"segmentation_status,omitempty"`
	TotalTransactions  *int             `json:"total_transactions,omitempty"`
	CLV                *decimal.Decimal `json:"clv,omitempty"`
	TotalSpend         *decimal.Decimal `json:"total_spend,omitempty"`
	LastPurchaseAt     *string          `json:"last_purchase_at,omitempty"`
}

// CustomerResponse perfil del cliente en respuestas de listado y detalle.
type CustomerResponse struct {
	ID                 string           `json:"id"`
	CompanyID          string           `json:"company_id"`
	FirstName          string           `json:"first_name"`
	LastName           string           `json:"last_name"`
	Email              string           `json:"email"`
	Phone              string           `json:"phone"`
	DateOfBirth        *string          `json:"date_of_birth,omitempty"`
	SegmentationStatus string           `json:"segmentation_status,omitempty"`
	TotalTransactions  int              `json:"total_transactions"`
	CLV                *decimal.Decimal `json:"clv,omitempty"`
	TotalSpend         decimal.Decimal  `json:"total_spend"`
	LastPurchaseAt     *time.Time       `json:"last_purchase_at,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

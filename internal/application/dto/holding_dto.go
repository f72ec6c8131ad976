package dto

// CreateHoldingRequest alta de producto en poder del cliente.
// Las fechas van en "2006-01-02" y ambas son opcionales.
type CreateHoldingRequest struct {
	ProductName   string `json:"product_name"`
	Quantity      int    `json:"quantity"`
	InstalledAt   string `json:"installed_at,omitempty"`
	NextServiceAt string `json:"next_service_at,omitempty"`
}

// UpdateHoldingRequest edición parcial de fechas de servicio y cantidad.
type UpdateHoldingRequest struct {
	Quantity      *int    `json:"quantity,omitempty"`
	InstalledAt   *string `json:"installed_at,omitempty"`
	NextServiceAt *string `json:"next_service_at,omitempty"`
}

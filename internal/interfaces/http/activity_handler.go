package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cliente360-api/internal/application/dto"
	"github.com/jhoicas/cliente360-api/internal/application/usecase"
	"github.com/jhoicas/cliente360-api/internal/domain"
)

// ActivityHandler maneja la línea de tiempo del cliente.
type ActivityHandler struct {
	uc *usecase.ActivityUseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// Record POST /api/customers/:customerID/activities
func (h *ActivityHandler) Record(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	var in dto.RecordActivityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	activity, err := h.uc.Record(c.Context(), companyID, c.Params("customerID"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "kind inválido u occurred_at no es RFC 3339"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(activity)
}

// List GET /api/customers/:customerID/activities?limit=20&offset=0
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	page, err := h.uc.List(c.Context(), c.Params("customerID"), parsePage(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(page)
}

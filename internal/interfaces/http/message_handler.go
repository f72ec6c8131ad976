package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cliente360-api/internal/application/dto"
	"github.com/jhoicas/cliente360-api/internal/application/panel"
	"github.com/jhoicas/cliente360-api/internal/domain"
)

// MessageHandler genera borradores de mensaje para las sugerencias del panel.
type MessageHandler struct {
	uc *panel.MessageUseCase
}

// NewMessageHandler construye el handler.
func NewMessageHandler(uc *panel.MessageUseCase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

// Draft godoc
// @Summary      Borrador de mensaje para una sugerencia vigente
// @Tags         panel
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del cliente"
// @Param        body  body  dto.DraftMessageRequest  true  "suggestion_id"
// @Success      200  {object}  dto.MessageDraftDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/message-draft [post]
func (h *MessageHandler) Draft(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	var in dto.DraftMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	draft, err := h.uc.DraftMessage(c.Context(), companyID, c.Params("id"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "suggestion_id desconocido"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado o la sugerencia ya no está vigente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(draft)
}

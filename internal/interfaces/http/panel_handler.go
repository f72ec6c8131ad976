package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cliente360-api/internal/application/dto"
	"github.com/jhoicas/cliente360-api/internal/application/panel"
	"github.com/jhoicas/cliente360-api/internal/domain"
)

// PanelHandler expone la vista 360 del cliente y su exportación a PDF.
type PanelHandler struct {
	panelUC *panel.PanelUseCase
	pdfUC   *panel.PDFUseCase
}

// NewPanelHandler construye el handler.
func NewPanelHandler(panelUC *panel.PanelUseCase, pdfUC *panel.PDFUseCase) *PanelHandler {
	return &PanelHandler{panelUC: panelUC, pdfUC: pdfUC}
}

// GetPanel godoc
// @Summary      Vista 360 del cliente
// @Tags         panel
// @Produce      json
// @Param        id      path   string  true   "ID del cliente"
// @Param        limit   query  int     false  "eventos por página (línea de tiempo)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {object}  dto.PanelDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/panel [get]
func (h *PanelHandler) GetPanel(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	p, err := h.panelUC.GetPanel(c.Context(), companyID, c.Params("id"), parsePage(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(p)
}

// ExportPDF GET /api/customers/:id/panel/pdf
func (h *PanelHandler) ExportPDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	raw, err := h.pdfUC.ExportPanel(c.Context(), companyID, c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="cliente-360.pdf"`)
	return c.Send(raw)
}

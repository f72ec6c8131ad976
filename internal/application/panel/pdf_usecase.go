package panel

import (
	"context"
	"fmt"

	"github.com/jhoicas/cliente360-api/internal/application/dto"
)

// PDFUseCase exporta el resumen del panel 360 como documento PDF.
// Reusa la evaluación completa de PanelUseCase para que el documento y la
// vista HTTP nunca difieran en cifras.
type PDFUseCase struct {
	panel     *PanelUseCase
	generator PDFGenerator
}

// NewPDFUseCase construye el caso de uso de exportación.
func NewPDFUseCase(panel *PanelUseCase, generator PDFGenerator) *PDFUseCase {
	return &PDFUseCase{panel: panel, generator: generator}
}

// ExportPanel evalúa el panel y lo entrega renderizado.
func (uc *PDFUseCase) ExportPanel(ctx context.Context, companyID, customerID string) ([]byte, error) {
	// La primera página de actividades basta para el resumen impreso.
	view, err := uc.panel.GetPanel(ctx, companyID, customerID, dto.PageRequest{Limit: 10})
	if err != nil {
		return nil, err
	}
	pdf, err := uc.generator.RenderPanel(ctx, view)
	if err != nil {
		return nil, fmt.Errorf("renderizar panel PDF: %w", err)
	}
	return pdf, nil
}

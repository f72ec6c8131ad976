package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cliente360-api/internal/application/auth"
	"github.com/jhoicas/cliente360-api/internal/application/panel"
	"github.com/jhoicas/cliente360-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC  *usecase.CompanyUseCase
	CustomerUC *usecase.CustomerUseCase
	HoldingUC  *usecase.HoldingUseCase
	NoteUC     *usecase.NoteUseCase
	ActivityUC *usecase.ActivityUseCase
	PanelUC    *panel.PanelUseCase
	MessageUC  *panel.MessageUseCase
	PDFUC      *panel.PDFUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Patch("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Panel 360 (protegido)
	panelHandler := NewPanelHandler(deps.PanelUC, deps.PDFUC)
	customers.Get("/:id/panel", panelHandler.GetPanel)
	customers.Get("/:id/panel/pdf", panelHandler.ExportPDF)

	// Borradores de mensaje (protegido)
	messageHandler := NewMessageHandler(deps.MessageUC)
	customers.Post("/:id/message-draft", messageHandler.Draft)

	// Holdings del cliente (protegido)
	holdingHandler := NewHoldingHandler(deps.HoldingUC)
	customers.Post("/:customerID/holdings", holdingHandler.Create)
	customers.Get("/:customerID/holdings", holdingHandler.List)
	customers.Patch("/:customerID/holdings/:id", holdingHandler.Update)
	customers.Delete("/:customerID/holdings/:id", holdingHandler.Delete)

	// Notas (protegido)
	noteHandler := NewNoteHandler(deps.NoteUC)
	customers.Post("/:customerID/notes", noteHandler.Create)
	customers.Get("/:customerID/notes", noteHandler.List)
	customers.Patch("/:customerID/notes/:id/pin", noteHandler.Pin)
	customers.Delete("/:customerID/notes/:id", noteHandler.Delete)

	// Línea de tiempo (protegido)
	activityHandler := NewActivityHandler(deps.ActivityUC)
	customers.Post("/:customerID/activities", activityHandler.Record)
	customers.Get("/:customerID/activities", activityHandler.List)
}

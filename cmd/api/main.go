package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/cliente360-api/internal/application/auth"
	"github.com/jhoicas/cliente360-api/internal/application/panel"
	"github.com/jhoicas/cliente360-api/internal/application/ports"
	"github.com/jhoicas/cliente360-api/internal/application/usecase"
	infraai "github.com/jhoicas/cliente360-api/internal/infrastructure/ai"
	infraevents "github.com/jhoicas/cliente360-api/internal/infrastructure/events"
	infrapdf "github.com/jhoicas/cliente360-api/internal/infrastructure/pdf"
	"github.com/jhoicas/cliente360-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/cliente360-api/internal/interfaces/http"
	"github.com/jhoicas/cliente360-api/pkg/config"
	"github.com/jhoicas/cliente360-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	holdingRepo := postgres.NewHoldingRepository(pool)
	noteRepo := postgres.NewNoteRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)

	// Productor de eventos Kafka — opcional, nil = sin eventos
	var publisher panel.EventPublisher
	if cfg.Kafka.Enabled() {
		producer := infraevents.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.PanelTopic, cfg.Kafka.MessageTopic)
		defer producer.Close()
		publisher = producer
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Msg("productor Kafka habilitado")
	}

	// Generador de mensajes — AI_PROVIDER selecciona el adaptador
	var generator ports.MessageGenerator
	switch cfg.AI.Provider {
	case "openai":
		generator = infraai.NewOpenAIService(cfg.AI.OpenAIAPIKey, cfg.AI.OpenAIModel)
	default:
		generator = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	}

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	holdingUC := usecase.NewHoldingUseCase(holdingRepo, customerRepo)
	noteUC := usecase.NewNoteUseCase(noteRepo, customerRepo)
	activityUC := usecase.NewActivityUseCase(activityRepo, customerRepo)

	panelUC := panel.NewPanelUseCase(customerRepo, holdingRepo, noteRepo, activityRepo, publisher)
	messageUC := panel.NewMessageUseCase(customerRepo, generator, publisher)
	pdfUC := panel.NewPDFUseCase(panelUC, infrapdf.NewMarotoPDFGenerator())

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cliente 360 API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:  companyUC,
		CustomerUC: customerUC,
		HoldingUC:  holdingUC,
		NoteUC:     noteUC,
		ActivityUC: activityUC,
		PanelUC:    panelUC,
		MessageUC:  messageUC,
		PDFUC:      pdfUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

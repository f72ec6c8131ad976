// Seeder de datos de demostración: crea una empresa, un asesor y un lote de
// clientes con holdings, notas y actividades para probar el panel en local.
//
// Uso:
//
//	DATABASE_URL=postgres://... go run ./cmd/seed -customers 50
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/cliente360-api/internal/domain/entity"
	"github.com/jhoicas/cliente360-api/internal/infrastructure/postgres"
	"github.com/jhoicas/cliente360-api/pkg/config"
	"github.com/jhoicas/cliente360-api/pkg/logger"
)

var (
	firstNames = []string{"Andrés", "Marta", "Camila", "Jorge", "Lucía", "Felipe", "Valentina", "Santiago", "Paula", "Diego"}
	lastNames  = []string{"Soto", "Quintero", "Ramírez", "Gómez", "Torres", "Castaño", "Mejía", "Londoño", "Vargas", "Pardo"}
	products   = []string{"Caldera compacta", "Filtro de agua", "Aire acondicionado split", "Calentador solar", "Purificador de aire"}
	segments   = []string{"Champion", "Loyal Customer", "At Risk", "Hibernating", "Needs Attention", "Lost", ""}
	kinds      = []string{entity.ActivityPurchase, entity.ActivityCall, entity.ActivityEmail, entity.ActivityVisit, entity.ActivityService}
)

func main() {
	customers := flag.Int("customers", 25, "número de clientes a crear")
	seed := flag.Int64("seed", 42, "semilla del generador aleatorio")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	rng := rand.New(rand.NewSource(*seed))
	now := time.Now()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	holdingRepo := postgres.NewHoldingRepository(pool)
	noteRepo := postgres.NewNoteRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)

	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      "Distribuciones El Roble",
		Email:     "contacto@elroble.demo",
		Phone:     "+57 300 000 0000",
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := companyRepo.Create(ctx, company); err != nil {
		log.Fatal().Err(err).Msg("crear empresa demo")
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	advisor := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    company.ID,
		Email:        "asesor@elroble.demo",
		PasswordHash: string(hash),
		Name:         "Asesor Demo",
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(ctx, advisor); err != nil {
		log.Fatal().Err(err).Msg("crear asesor demo")
	}

	bar := progressbar.Default(int64(*customers))
	for i := 0; i < *customers; i++ {
		c := randomCustomer(rng, company.ID, i, now)
		if err := customerRepo.Create(ctx, c); err != nil {
			log.Fatal().Err(err).Str("email", c.Email).Msg("crear cliente demo")
		}

		for h := 0; h < rng.Intn(3); h++ {
			holding := randomHolding(rng, c.ID, now)
			if err := holdingRepo.Create(ctx, holding); err != nil {
				log.Fatal().Err(err).Msg("crear holding demo")
			}
		}

		if rng.Intn(2) == 0 {
			note := &entity.Note{
				ID:         uuid.New().String(),
				CustomerID: c.ID,
				AuthorID:   advisor.ID,
				Body:       "Cliente contactado en campaña de demo.",
				Pinned:     rng.Intn(4) == 0,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := noteRepo.Create(ctx, note); err != nil {
				log.Fatal().Err(err).Msg("crear nota demo")
			}
		}

		for a := 0; a < 1+rng.Intn(4); a++ {
			act := &entity.Activity{
				ID:          uuid.New().String(),
				CustomerID:  c.ID,
				Kind:        kinds[rng.Intn(len(kinds))],
				Description: "Evento generado por el seeder.",
				OccurredAt:  now.AddDate(0, 0, -rng.Intn(180)),
				CreatedAt:   now,
			}
			if err := activityRepo.Create(ctx, act); err != nil {
				log.Fatal().Err(err).Msg("crear actividad demo")
			}
		}

		_ = bar.Add(1)
	}

	log.Info().
		Str("company_id", company.ID).
		Str("advisor", advisor.Email).
		Int("customers", *customers).
		Msg("seed completado — login con asesor@elroble.demo / demo1234")
}

func randomCustomer(rng *rand.Rand, companyID string, i int, now time.Time) *entity.Customer {
	first := firstNames[rng.Intn(len(firstNames))]
	last := lastNames[rng.Intn(len(lastNames))]
	dob := time.Date(1960+rng.Intn(45), time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC)
	lastPurchase := now.AddDate(0, 0, -rng.Intn(400))
	spend := decimal.NewFromInt(int64(50_000 + rng.Intn(5_000_000)))

	c := &entity.Customer{
		ID:                 uuid.New().String(),
		CompanyID:          companyID,
		FirstName:          first,
		LastName:           last,
		Email:              fmt.Sprintf("%s.%s.%d@cliente.demo", first, last, i),
		Phone:              fmt.Sprintf("+57 31%d %07d", rng.Intn(10), rng.Intn(10_000_000)),
		DateOfBirth:        &dob,
		SegmentationStatus: segments[rng.Intn(len(segments))],
		TotalTransactions:  rng.Intn(20),
		TotalSpend:         spend,
		LastPurchaseAt:     &lastPurchase,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	// Un tercio queda sin RFM ni CLV para ejercitar los defaults del panel
	if rng.Intn(3) != 0 {
		c.RFM = &entity.RFMScore{
			Recency:   1 + rng.Intn(5),
			Frequency: 1 + rng.Intn(5),
			Monetary:  1 + rng.Intn(5),
		}
		clv := spend.Mul(decimal.NewFromFloat(1.5))
		c.CLV = &clv
	}
	return c
}

func randomHolding(rng *rand.Rand, customerID string, now time.Time) *entity.Holding {
	installed := now.AddDate(0, -rng.Intn(24), 0)
	next := installed.AddDate(1, 0, 0)
	return &entity.Holding{
		ID:            uuid.New().String(),
		CustomerID:    customerID,
		ProductName:   products[rng.Intn(len(products))],
		Quantity:      1 + rng.Intn(3),
		InstalledAt:   &installed,
		NextServiceAt: &next,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

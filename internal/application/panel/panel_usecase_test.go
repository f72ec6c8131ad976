package panel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cliente360-api/internal/application/dto"
	"github.com/jhoicas/cliente360-api/internal/application/panel"
	"github.com/jhoicas/cliente360-api/internal/domain"
	"github.com/jhoicas/cliente360-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorio
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	customer *entity.Customer
	err      error
}

func (f *fakeCustomerRepo) Create(context.Context, *entity.Customer) error { return nil }
func (f *fakeCustomerRepo) GetByID(_ context.Context, _, _ string) (*entity.Customer, error) {
	return f.customer, f.err
}
func (f *fakeCustomerRepo) GetByCompanyAndEmail(_ context.Context, _, _ string) (*entity.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) ListByCompany(_ context.Context, _ string, _, _ int) ([]*entity.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) Update(context.Context, *entity.Customer) error { return nil }
func (f *fakeCustomerRepo) Delete(_ context.Context, _, _ string) error    { return nil }

type fakeHoldingRepo struct {
	holdings []*entity.Holding
	err      error
}

func (f *fakeHoldingRepo) Create(context.Context, *entity.Holding) error { return nil }
func (f *fakeHoldingRepo) GetByID(_ context.Context, _ string) (*entity.Holding, error) {
	return nil, nil
}
func (f *fakeHoldingRepo) ListByCustomer(_ context.Context, _ string) ([]*entity.Holding, error) {
	return f.holdings, f.err
}
func (f *fakeHoldingRepo) Update(context.Context, *entity.Holding) error { return nil }
func (f *fakeHoldingRepo) Delete(_ context.Context, _ string) error      { return nil }

type fakeNoteRepo struct {
	notes []*entity.Note
	err   error
}

func (f *fakeNoteRepo) Create(context.Context, *entity.Note) error { return nil }
func (f *fakeNoteRepo) GetByID(_ context.Context, _ string) (*entity.Note, error) {
	return nil, nil
}
func (f *fakeNoteRepo) ListByCustomer(_ context.Context, _ string) ([]*entity.Note, error) {
	return f.notes, f.err
}
func (f *fakeNoteRepo) SetPinned(_ context.Context, _ string, _ bool, _ time.Time) error {
	return nil
}
func (f *fakeNoteRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeActivityRepo struct {
	items []*entity.Activity
	total int
	err   error
}

func (f *fakeActivityRepo) Create(context.Context, *entity.Activity) error { return nil }
func (f *fakeActivityRepo) ListByCustomer(_ context.Context, _ string, _, _ int) ([]*entity.Activity, int, error) {
	return f.items, f.total, f.err
}

func newPanelUC(c *fakeCustomerRepo, h *fakeHoldingRepo, n *fakeNoteRepo, a *fakeActivityRepo) *panel.PanelUseCase {
	return panel.NewPanelUseCase(c, h, n, a, nil)
}

func panelCustomer() *entity.Customer {
	clv := decimal.NewFromInt(4200)
	rfm := &entity.RFMScore{Recency: 5, Frequency: 5, Monetary: 4}
	return &entity.Customer{
		ID:                 "c-001",
		CompanyID:          "co-001",
		FirstName:          "Andrés",
		LastName:           "Soto",
		SegmentationStatus: "Champion",
		TotalTransactions:  8,
		RFM:                rfm,
		CLV:                &clv,
		TotalSpend:         decimal.NewFromInt(1500),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// La ausencia del cliente es terminal: ErrNotFound, sin panel parcial.
func TestGetPanel_ClienteInexistente(t *testing.T) {
	uc := newPanelUC(&fakeCustomerRepo{}, &fakeHoldingRepo{}, &fakeNoteRepo{}, &fakeActivityRepo{})

	_, err := uc.GetPanel(context.Background(), "co-001", "no-existe", dto.PageRequest{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Una falla de infraestructura al leer holdings se absorbe a lista vacía:
// el panel llega completo, nunca se propaga el error.
func TestGetPanel_FallaDeHoldingsSeAbsorbe(t *testing.T) {
	uc := newPanelUC(
		&fakeCustomerRepo{customer: panelCustomer()},
		&fakeHoldingRepo{err: errors.New(`relation "holdings" does not exist`)},
		&fakeNoteRepo{},
		&fakeActivityRepo{},
	)

	got, err := uc.GetPanel(context.Background(), "co-001", "c-001", dto.PageRequest{})

	require.NoError(t, err, "la falla del repo de holdings no debe propagarse")
	assert.Empty(t, got.Holdings)
	assert.NotEmpty(t, got.Suggestions, "el motor NBA corre aunque falten colecciones")
}

// El panel calcula las puntuaciones derivadas y el tier a partir del estado
// crudo del cliente.
func TestGetPanel_PuntuacionesDerivadas(t *testing.T) {
	installed := time.Now().AddDate(0, 0, -30)
	next := time.Now().AddDate(0, 0, 30)
	uc := newPanelUC(
		&fakeCustomerRepo{customer: panelCustomer()},
		&fakeHoldingRepo{holdings: []*entity.Holding{{
			ID: "h-001", CustomerID: "c-001", ProductName: "Filtro Osmo", Quantity: 1,
			InstalledAt: &installed, NextServiceAt: &next,
		}}},
		&fakeNoteRepo{},
		&fakeActivityRepo{total: 3},
	)

	got, err := uc.GetPanel(context.Background(), "co-001", "c-001", dto.PageRequest{})
	require.NoError(t, err)

	assert.Equal(t, "A", got.Score.RFMGrade)
	assert.False(t, got.Score.RFMDefaulted)
	assert.Equal(t, "active", got.Score.Tier)
	assert.True(t, got.Score.CLV.Equal(decimal.NewFromInt(4200)), "el CLV estimado gana al gasto acumulado")

	require.Len(t, got.Holdings, 1)
	h := got.Holdings[0]
	assert.InDelta(t, 50.0, h.UsageProgress, 1.0)
	require.NotNil(t, h.DaysRemaining)
	assert.Equal(t, 30, *h.DaysRemaining)
	assert.Equal(t, "warning", h.Status)
	assert.Equal(t, 3, got.Activities.Total)
}

// Sin RFM medido el panel expone la letra sintética marcada como defaulted.
func TestGetPanel_RFMDefaulted(t *testing.T) {
	c := panelCustomer()
	c.RFM = nil
	uc := newPanelUC(&fakeCustomerRepo{customer: c}, &fakeHoldingRepo{}, &fakeNoteRepo{}, &fakeActivityRepo{})

	got, err := uc.GetPanel(context.Background(), "co-001", "c-001", dto.PageRequest{})
	require.NoError(t, err)

	assert.Equal(t, "B", got.Score.RFMGrade)
	assert.True(t, got.Score.RFMDefaulted, "una letra sintética debe ser distinguible de una medida")
}

// Un holding sin fecha de próximo servicio sale con days_remaining ausente
// y estado neutral: nunca se calcula sobre una fecha que no existe.
func TestGetPanel_HoldingSinFechaDeServicio(t *testing.T) {
	uc := newPanelUC(
		&fakeCustomerRepo{customer: panelCustomer()},
		&fakeHoldingRepo{holdings: []*entity.Holding{{
			ID: "h-002", CustomerID: "c-001", ProductName: "Dispensador D-20", Quantity: 2,
		}}},
		&fakeNoteRepo{},
		&fakeActivityRepo{},
	)

	got, err := uc.GetPanel(context.Background(), "co-001", "c-001", dto.PageRequest{})
	require.NoError(t, err)

	require.Len(t, got.Holdings, 1)
	assert.Nil(t, got.Holdings[0].DaysRemaining)
	assert.Equal(t, "neutral", got.Holdings[0].Status)
	assert.Zero(t, got.Holdings[0].UsageProgress)
}

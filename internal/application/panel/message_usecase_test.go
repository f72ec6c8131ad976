package panel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cliente360-api/internal/application/dto"
	"github.com/jhoicas/cliente360-api/internal/application/panel"
	"github.com/jhoicas/cliente360-api/internal/domain"
)

// fakeGenerator implementación del puerto MessageGenerator para tests.
type fakeGenerator struct {
	text string
	err  error

	gotFirstName    string
	gotContextHint  string
	gotLastPurchase string
	calls           int
}

func (f *fakeGenerator) GenerateMarketingMessage(_ context.Context, firstName, contextHint, lastPurchaseDisplay string) (string, error) {
	f.calls++
	f.gotFirstName = firstName
	f.gotContextHint = contextHint
	f.gotLastPurchase = lastPurchaseDisplay
	return f.text, f.err
}

func newMessageUC(repo *fakeCustomerRepo, gen *fakeGenerator) *panel.MessageUseCase {
	return panel.NewMessageUseCase(repo, gen, nil)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Camino feliz: el puente resuelve el contexto de la sugerencia y la fecha
// de última compra formateada, y entrega el texto del generador.
func TestDraftMessage_CaminoFeliz(t *testing.T) {
	c := panelCustomer() // 8 transacciones → upsell vigente
	last := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	c.LastPurchaseAt = &last
	gen := &fakeGenerator{text: "Hola Andrés, tenemos algo para ti."}
	uc := newMessageUC(&fakeCustomerRepo{customer: c}, gen)

	got, err := uc.DraftMessage(context.Background(), "co-001", "c-001", dto.DraftMessageRequest{SuggestionID: "upsell"})

	require.NoError(t, err)
	assert.False(t, got.Fallback)
	assert.Equal(t, "Hola Andrés, tenemos algo para ti.", got.Message)
	assert.Equal(t, "Andrés", gen.gotFirstName)
	assert.NotEmpty(t, gen.gotContextHint)
	assert.Equal(t, "15/03/2024", gen.gotLastPurchase)
}

// Sin última compra el generador recibe el centinela explícito, nunca una
// cadena vacía.
func TestDraftMessage_SinUltimaCompraUsaCentinela(t *testing.T) {
	gen := &fakeGenerator{text: "Hola."}
	uc := newMessageUC(&fakeCustomerRepo{customer: panelCustomer()}, gen)

	_, err := uc.DraftMessage(context.Background(), "co-001", "c-001", dto.DraftMessageRequest{SuggestionID: "upsell"})

	require.NoError(t, err)
	assert.Equal(t, "sin compras registradas", gen.gotLastPurchase)
}

// La falla del generador se absorbe en el puente: el usuario recibe el
// mensaje de cortesía con Fallback=true, nunca un error.
func TestDraftMessage_FallaDelGeneradorSeAbsorbe(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("api timeout")}
	uc := newMessageUC(&fakeCustomerRepo{customer: panelCustomer()}, gen)

	got, err := uc.DraftMessage(context.Background(), "co-001", "c-001", dto.DraftMessageRequest{SuggestionID: "upsell"})

	require.NoError(t, err, "el error del colaborador externo se absorbe en este límite")
	assert.True(t, got.Fallback)
	assert.NotEmpty(t, got.Message)
}

// Una salida malformada (texto vacío) cuenta como falla y cae al fallback.
func TestDraftMessage_SalidaVaciaCaeAlFallback(t *testing.T) {
	gen := &fakeGenerator{text: "   "}
	uc := newMessageUC(&fakeCustomerRepo{customer: panelCustomer()}, gen)

	got, err := uc.DraftMessage(context.Background(), "co-001", "c-001", dto.DraftMessageRequest{SuggestionID: "upsell"})

	require.NoError(t, err)
	assert.True(t, got.Fallback)
}

// Regenerar es simplemente volver a llamar: cada petición va al generador,
// sin memoización.
func TestDraftMessage_RegeneraSinMemoizar(t *testing.T) {
	gen := &fakeGenerator{text: "Hola."}
	uc := newMessageUC(&fakeCustomerRepo{customer: panelCustomer()}, gen)
	req := dto.DraftMessageRequest{SuggestionID: "upsell"}

	_, err := uc.DraftMessage(context.Background(), "co-001", "c-001", req)
	require.NoError(t, err)
	_, err = uc.DraftMessage(context.Background(), "co-001", "c-001", req)
	require.NoError(t, err)

	assert.Equal(t, 2, gen.calls)
}

// Un ID fuera de la enumeración es entrada inválida; uno válido pero no
// vigente para el cliente es un 404 lógico.
func TestDraftMessage_IDsInvalidosONoVigentes(t *testing.T) {
	gen := &fakeGenerator{text: "Hola."}
	uc := newMessageUC(&fakeCustomerRepo{customer: panelCustomer()}, gen)

	_, err := uc.DraftMessage(context.Background(), "co-001", "c-001", dto.DraftMessageRequest{SuggestionID: "winback"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// panelCustomer dispara upsell, así que "birthday" no está vigente.
	_, err = uc.DraftMessage(context.Background(), "co-001", "c-001", dto.DraftMessageRequest{SuggestionID: "birthday"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, gen.calls, "no se llama al generador con sugerencias no vigentes")
}

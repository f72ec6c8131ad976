package scoring_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cliente360-api/internal/domain/entity"
	"github.com/jhoicas/cliente360-api/internal/domain/scoring"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// testNow fecha de referencia fija para todos los casos: sábado 1 de junio
// de 2024, mediodía UTC. Las reglas solo miran el día calendario.
var testNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

// baseCustomer cliente sin ninguna señal: ni cumpleaños, ni riesgo,
// ni historial suficiente para upsell.
func baseCustomer() *entity.Customer {
	return &entity.Customer{
		ID:        "c-001",
		CompanyID: "co-001",
		FirstName: "Marta",
		LastName:  "Quintero",
	}
}

func dob(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// Regla por defecto
// ──────────────────────────────────────────────────────────────────────────────

// Un cliente sin señal usable produce exactamente una sugerencia:
// el saludo por defecto (id "default", tipo retention).
func TestEvaluate_SinSenalesProduceSoloDefault(t *testing.T) {
	got := scoring.Evaluate(baseCustomer(), testNow)

	require.Len(t, got, 1, "sin señales debe haber exactamente una sugerencia")
	assert.Equal(t, scoring.SuggestionDefault, got[0].ID)
	assert.Equal(t, scoring.TypeRetention, got[0].Type)
}

// La regla por defecto nunca acompaña a otra: si upsell dispara, la lista
// tiene longitud 1 y no aparece el saludo genérico.
func TestEvaluate_DefaultNoAcompanaOtrasReglas(t *testing.T) {
	c := baseCustomer()
	c.TotalTransactions = 5

	got := scoring.Evaluate(c, testNow)

	require.Len(t, got, 1)
	assert.Equal(t, scoring.SuggestionUpsell, got[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Regla de cumpleaños
// ──────────────────────────────────────────────────────────────────────────────

// Caso concreto del panel: hoy 2024-06-01, nacimiento 1990-06-03.
// Faltan 2 días → dispara y el título lleva el conteo exacto.
func TestEvaluate_CumpleEnDosDias(t *testing.T) {
	c := baseCustomer()
	c.DateOfBirth = dob(1990, time.June, 3)

	got := scoring.Evaluate(c, testNow)

	require.Len(t, got, 1)
	assert.Equal(t, scoring.SuggestionBirthday, got[0].ID)
	assert.Equal(t, scoring.TypeBirthday, got[0].Type)
	assert.Contains(t, got[0].Title, "2 días", "el título debe llevar el conteo de días")
}

// Fronteras de la ventana (0,7]: 0 y 8 no disparan; 1 y 7 sí.
func TestEvaluate_FronterasVentanaCumple(t *testing.T) {
	cases := []struct {
		name string
		day  int
		fire bool
	}{
		{"mismo día (diff 0) no dispara", 1, false},
		{"mañana (diff 1) dispara", 2, true},
		{"en 7 días dispara", 8, true},
		{"en 8 días no dispara", 9, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := baseCustomer()
			c.DateOfBirth = dob(1985, time.June, tc.day)

			got := scoring.Evaluate(c, testNow)

			if tc.fire {
				require.Len(t, got, 1)
				assert.Equal(t, scoring.SuggestionBirthday, got[0].ID)
			} else {
				require.Len(t, got, 1, "sin cumpleaños en ventana cae al default")
				assert.Equal(t, scoring.SuggestionDefault, got[0].ID)
			}
		})
	}
}

// Un cumpleaños que ya pasó este año no dispara, aunque falte poco para
// el del año siguiente.
func TestEvaluate_CumplePasadoEsteAnioNoDispara(t *testing.T) {
	c := baseCustomer()
	c.DateOfBirth = dob(1990, time.May, 30) // hace 2 días

	got := scoring.Evaluate(c, testNow)

	require.Len(t, got, 1)
	assert.Equal(t, scoring.SuggestionDefault, got[0].ID)
}

// Nacido el 29 de febrero: en un año no bisiesto la ocurrencia se normaliza
// al 1 de marzo, así que la ventana que termina ese día sigue disparando.
func TestEvaluate_CumpleBisiestoEnAnioNoBisiesto(t *testing.T) {
	c := baseCustomer()
	c.DateOfBirth = dob(2000, time.February, 29)
	now := time.Date(2023, time.February, 25, 9, 0, 0, 0, time.UTC) // 2023 no es bisiesto

	got := scoring.Evaluate(c, now)

	require.Len(t, got, 1)
	assert.Equal(t, scoring.SuggestionBirthday, got[0].ID, "la ocurrencia normalizada al 1 de marzo cae a 4 días")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reglas de retención y upsell
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluate_EtiquetaDeRiesgoDisparaRetencion(t *testing.T) {
	c := baseCustomer()
	c.SegmentationStatus = "At Risk"

	got := scoring.Evaluate(c, testNow)

	require.Len(t, got, 1)
	assert.Equal(t, scoring.SuggestionRetention, got[0].ID)
	assert.Equal(t, scoring.TypeRetention, got[0].Type)
}

// El umbral de upsell es inclusivo: 2 transacciones no, 3 sí.
func TestEvaluate_UmbralUpsellInclusivo(t *testing.T) {
	c := baseCustomer()
	c.TotalTransactions = 2
	got := scoring.Evaluate(c, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, scoring.SuggestionDefault, got[0].ID, "2 transacciones no alcanzan el umbral")

	c.TotalTransactions = 3
	got = scoring.Evaluate(c, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, scoring.SuggestionUpsell, got[0].ID, "3 transacciones disparan upsell")
}

// Las reglas no se excluyen entre sí: cumpleaños + riesgo + upsell producen
// tres sugerencias, en el orden fijo de evaluación.
func TestEvaluate_VariasReglasEnOrdenFijo(t *testing.T) {
	c := baseCustomer()
	c.DateOfBirth = dob(1990, time.June, 5)
	c.SegmentationStatus = "Needs Attention"
	c.TotalTransactions = 10

	got := scoring.Evaluate(c, testNow)

	require.Len(t, got, 3)
	assert.Equal(t, scoring.SuggestionBirthday, got[0].ID)
	assert.Equal(t, scoring.SuggestionRetention, got[1].ID)
	assert.Equal(t, scoring.SuggestionUpsell, got[2].ID)
}

// Evaluar dos veces el mismo estado produce exactamente la misma salida:
// no hay contadores ocultos ni aleatoriedad.
func TestEvaluate_Idempotente(t *testing.T) {
	c := baseCustomer()
	c.DateOfBirth = dob(1990, time.June, 5)
	c.TotalTransactions = 4

	first := scoring.Evaluate(c, testNow)
	second := scoring.Evaluate(c, testNow)

	assert.Equal(t, first, second)
}

// Evaluate no debe provocar panic con todos los opcionales ausentes.
func TestEvaluate_ClienteVacioNoPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		scoring.Evaluate(&entity.Customer{}, testNow)
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de contextos
// ──────────────────────────────────────────────────────────────────────────────

// La tabla ID → contexto debe ser exhaustiva sobre la enumeración completa.
// Si alguien agrega un SuggestionID sin su entrada, este test falla.
func TestContextHintFor_TablaExhaustiva(t *testing.T) {
	for _, id := range scoring.AllSuggestionIDs {
		hint, ok := scoring.ContextHintFor(id)
		require.True(t, ok, "falta contexto para el ID %q", id)
		assert.NotEmpty(t, hint)
	}
}

func TestContextHintFor_IDDesconocido(t *testing.T) {
	_, ok := scoring.ContextHintFor(scoring.SuggestionID("winback"))
	assert.False(t, ok, "un ID fuera de la enumeración no tiene contexto")
}

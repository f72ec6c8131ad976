package scoring_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/cliente360-api/internal/domain/entity"
	"github.com/jhoicas/cliente360-api/internal/domain/scoring"
)

// ──────────────────────────────────────────────────────────────────────────────
// GradeRFM
// ──────────────────────────────────────────────────────────────────────────────

// Vectores de letra sobre el promedio: ≥4→A, ≥3→B, ≥2→C, resto D.
func TestGradeRFM_Vectores(t *testing.T) {
	cases := []struct {
		name    string
		r, f, m int
		grade   string
		average float64
	}{
		{"5/5/4 promedia 4.67 → A", 5, 5, 4, "A", 14.0 / 3.0},
		{"4/4/4 frontera exacta → A", 4, 4, 4, "A", 4.0},
		{"3/3/3 → B", 3, 3, 3, "B", 3.0},
		{"2/2/2 → C", 2, 2, 2, "C", 2.0},
		{"1/1/1 → D", 1, 1, 1, "D", 1.0},
		{"1/2/2 promedia 1.67 → D", 1, 2, 2, "D", 5.0 / 3.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := scoring.GradeRFM(&entity.RFMScore{Recency: tc.r, Frequency: tc.f, Monetary: tc.m})

			assert.Equal(t, tc.grade, got.Grade)
			assert.InDelta(t, tc.average, got.Average, 1e-9, "el promedio usa división real, no entera")
			assert.False(t, got.Defaulted, "una puntuación medida nunca se marca como sintética")
		})
	}
}

// Sin puntuación medida el scorer usa la neutra {3,3,3} y lo marca:
// una "B" sintética es distinguible de una "B" medida.
func TestGradeRFM_SinPuntuacionUsaNeutraMarcada(t *testing.T) {
	got := scoring.GradeRFM(nil)

	assert.Equal(t, "B", got.Grade)
	assert.InDelta(t, 3.0, got.Average, 1e-9)
	assert.True(t, got.Defaulted)
}

// ──────────────────────────────────────────────────────────────────────────────
// LifetimeValue
// ──────────────────────────────────────────────────────────────────────────────

func TestLifetimeValue_SinCLVCaeAlGastoAcumulado(t *testing.T) {
	spend := decimal.NewFromInt(1500)

	got := scoring.LifetimeValue(nil, spend)

	assert.True(t, got.Equal(spend), "sin CLV estimado se usa el gasto acumulado")
}

// Un CLV cero explícito se respeta: no es lo mismo "sin estimación" que
// "estimado en cero".
func TestLifetimeValue_CeroExplicitoSeRespeta(t *testing.T) {
	zero := decimal.Zero
	spend := decimal.NewFromInt(1500)

	got := scoring.LifetimeValue(&zero, spend)

	assert.True(t, got.IsZero(), "CLV=0 explícito no debe caer al fallback")
}

func TestLifetimeValue_TodoAusenteEsCero(t *testing.T) {
	got := scoring.LifetimeValue(nil, decimal.Zero)
	assert.True(t, got.IsZero())
}

func TestLifetimeValue_CLVPresenteGanaAlGasto(t *testing.T) {
	clv := decimal.NewFromInt(9800)

	got := scoring.LifetimeValue(&clv, decimal.NewFromInt(1500))

	assert.True(t, got.Equal(clv))
}

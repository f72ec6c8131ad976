package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/cliente360-api/internal/domain/scoring"
)

// ClassifySegment es total: toda cadena, incluida la vacía, mapea a
// exactamente un tier. Lo desconocido es activo por política deliberada.
func TestClassifySegment_FuncionTotal(t *testing.T) {
	cases := []struct {
		label string
		tier  scoring.Tier
	}{
		{"", scoring.TierActive},
		{"Champion", scoring.TierActive},
		{"cliente LOYAL de años", scoring.TierActive},
		{"At Risk", scoring.TierAtRisk},
		{"needs attention", scoring.TierAtRisk},
		{"Lost", scoring.TierChurn},
		{"Hibernating", scoring.TierChurn},
		{"VIP Premium", scoring.TierActive},    // etiqueta desconocida → activo
		{"12345 ???", scoring.TierActive},      // ruido → activo
		{"RiSk!", scoring.TierAtRisk},          // insensible a mayúsculas
	}
	for _, tc := range cases {
		t.Run("etiqueta "+tc.label, func(t *testing.T) {
			assert.Equal(t, tc.tier, scoring.ClassifySegment(tc.label))
		})
	}
}

// IsRiskLabel es la prueba cruda que usa la regla de retención: una etiqueta
// vacía o desconocida no es riesgo, aunque el clasificador la trate como
// activa por defecto.
func TestIsRiskLabel_SoloSubcadenasExplicitas(t *testing.T) {
	assert.True(t, scoring.IsRiskLabel("At Risk"))
	assert.True(t, scoring.IsRiskLabel("Needs Attention"))
	assert.False(t, scoring.IsRiskLabel(""))
	assert.False(t, scoring.IsRiskLabel("Champion"))
	assert.False(t, scoring.IsRiskLabel("cliente nuevo"))
}

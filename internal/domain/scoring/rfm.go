package scoring

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cliente360-api/internal/domain/entity"
)

// Umbrales de letra sobre el promedio RFM (escala 1–5).
const (
	gradeAThreshold = 4.0
	gradeBThreshold = 3.0
	gradeCThreshold = 2.0
)

// Componentes de la puntuación neutra sintética usada cuando el cliente
// no tiene RFM medido.
const neutralComponent = 3

// RFMGrade resultado derivado del scorer. No se persiste: se recalcula en
// cada evaluación del panel.
type RFMGrade struct {
	Grade   string  // "A".."D"
	Average float64 // promedio real de los tres componentes, siempre en [1,5]
	// Defaulted indica que no había puntuación medida y se usó la neutra
	// {3,3,3}. Permite distinguir una "B" medida de una "B" sintética.
	Defaulted bool
}

// GradeRFM convierte la puntuación RFM del cliente en letra y promedio.
// Con score nil se usa la puntuación neutra {3,3,3} marcada como Defaulted.
func GradeRFM(score *entity.RFMScore) RFMGrade {
	r, f, m := neutralComponent, neutralComponent, neutralComponent
	defaulted := true
	if score != nil {
		r, f, m = score.Recency, score.Frequency, score.Monetary
		defaulted = false
	}

	avg := float64(r+f+m) / 3.0
	return RFMGrade{Grade: gradeFor(avg), Average: avg, Defaulted: defaulted}
}

func gradeFor(avg float64) string {
	switch {
	case avg >= gradeAThreshold:
		return "A"
	case avg >= gradeBThreshold:
		return "B"
	case avg >= gradeCThreshold:
		return "C"
	default:
		return "D"
	}
}

// LifetimeValue valor de vida del cliente: el CLV estimado si existe, si no
// el gasto acumulado. Un CLV cero explícito se respeta y no cae al fallback;
// la cadena termina ahí (TotalSpend en cero devuelve cero).
func LifetimeValue(clv *decimal.Decimal, totalSpend decimal.Decimal) decimal.Decimal {
	if clv != nil {
		return *clv
	}
	return totalSpend
}

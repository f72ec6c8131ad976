package scoring

import "strings"

// Tier clasificación gruesa de compromiso derivada de la etiqueta libre
// de segmentación que produce el pipeline de datos.
type Tier string

const (
	TierActive Tier = "active"
	TierAtRisk Tier = "at_risk"
	TierChurn  Tier = "churn"
)

// Palabras clave fijas del clasificador. La comparación es por subcadena,
// sin distinguir mayúsculas, sobre la etiqueta completa.
var (
	activeKeywords = []string{"champion", "loyal"}
	riskKeywords   = []string{"risk", "attention"}
	churnKeywords  = []string{"lost", "hibernating"}
)

// ClassifySegment mapea la etiqueta de segmentación a un Tier.
// Es una función total: toda cadena, incluida la vacía, produce exactamente
// un tier. Una etiqueta desconocida se trata como TierActive: un cliente sin
// señal se asume activo de forma deliberada, no como estado de alerta.
func ClassifySegment(label string) Tier {
	switch {
	case containsAny(label, activeKeywords):
		return TierActive
	case containsAny(label, riskKeywords):
		return TierAtRisk
	case containsAny(label, churnKeywords):
		return TierChurn
	default:
		return TierActive
	}
}

// IsRiskLabel prueba cruda de las subcadenas de riesgo ("risk"/"attention").
// La regla de retención usa esta prueba directamente y no el tier derivado:
// el fallback optimista de ClassifySegment no debe disparar retención.
func IsRiskLabel(label string) bool {
	return containsAny(label, riskKeywords)
}

func containsAny(label string, keywords []string) bool {
	l := strings.ToLower(label)
	for _, k := range keywords {
		if strings.Contains(l, k) {
			return true
		}
	}
	return false
}

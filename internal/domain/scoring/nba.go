// Package scoring implementa el núcleo de decisión del panel Cliente 360:
// scorer RFM/CLV, clasificador de segmento, calculador de ciclo de vida y el
// motor de siguiente-mejor-acción (NBA). Todo el paquete es puro y sin estado:
// cada evaluación parte del último estado leído del cliente y no cachea nada.
package scoring

import (
	"fmt"
	"time"

	"github.com/jhoicas/cliente360-api/internal/domain/entity"
)

// SuggestionType tipo de acción sugerida; selecciona el contexto con el que
// se redacta el mensaje al cliente.
type SuggestionType string

const (
	TypeBirthday  SuggestionType = "birthday"
	TypeRetention SuggestionType = "retention"
	TypeUpsell    SuggestionType = "upsell"
)

// SuggestionID clave estable de la sugerencia. A diferencia del tipo, el ID
// distingue el saludo por defecto (id "default", tipo retention).
type SuggestionID string

const (
	SuggestionBirthday  SuggestionID = "birthday"
	SuggestionRetention SuggestionID = "retention"
	SuggestionUpsell    SuggestionID = "upsell"
	SuggestionDefault   SuggestionID = "default"
)

// AllSuggestionIDs enumeración completa de IDs, en orden de evaluación.
var AllSuggestionIDs = []SuggestionID{
	SuggestionBirthday, SuggestionRetention, SuggestionUpsell, SuggestionDefault,
}

// Suggestion acción recomendada para un cliente. El orden de la lista que
// devuelve Evaluate es el orden de inserción de las reglas, sin re-ordenar.
type Suggestion struct {
	ID          SuggestionID
	Type        SuggestionType
	Title       string
	Description string
	ActionLabel string
}

const (
	// birthdayWindowDays ventana (0,7] en días para la regla de cumpleaños.
	birthdayWindowDays = 7
	// upsellMinTransactions umbral inclusivo de la regla de venta adicional.
	upsellMinTransactions = 3
)

// nbaRule regla del motor: evalúa el cliente y aporta 0 o 1 sugerencia.
type nbaRule func(c *entity.Customer, now time.Time) (Suggestion, bool)

// nbaRules orden fijo de evaluación. Las reglas son independientes: varias
// pueden dispararse para el mismo cliente y ninguna se repite. Una regla
// nueva se agrega al final de la lista para no alterar el orden existente.
var nbaRules = []nbaRule{birthdayRule, retentionRule, upsellRule}

// Evaluate corre las reglas en orden contra el estado inmutable del cliente.
// Es pura y síncrona: el mismo input produce siempre la misma salida y ningún
// input bien tipado provoca panic, incluso con todos los opcionales ausentes
// (cae a la regla por defecto). Siempre devuelve al menos una sugerencia.
func Evaluate(c *entity.Customer, now time.Time) []Suggestion {
	out := make([]Suggestion, 0, len(nbaRules))
	for _, rule := range nbaRules {
		if s, ok := rule(c, now); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		out = append(out, defaultSuggestion())
	}
	return out
}

// birthdayRule dispara si el cumpleaños de este año cae estrictamente en el
// futuro y dentro de la ventana de una semana. Un cumpleaños que ya pasó este
// año (incluido hoy) no dispara.
func birthdayRule(c *entity.Customer, now time.Time) (Suggestion, bool) {
	if c.DateOfBirth == nil {
		return Suggestion{}, false
	}
	days := daysUntilBirthday(*c.DateOfBirth, now)
	if days <= 0 || days > birthdayWindowDays {
		return Suggestion{}, false
	}
	return Suggestion{
		ID:          SuggestionBirthday,
		Type:        TypeBirthday,
		Title:       fmt.Sprintf("Cumpleaños en %s", spanishDays(days)),
		Description: "El cliente está de cumpleaños esta semana. Una felicitación a tiempo refuerza la relación.",
		ActionLabel: "Enviar felicitación",
	}, true
}

// retentionRule dispara sobre la etiqueta cruda de segmentación, no sobre el
// tier derivado: el fallback default-active del clasificador no cuenta.
func retentionRule(c *entity.Customer, _ time.Time) (Suggestion, bool) {
	if !IsRiskLabel(c.SegmentationStatus) {
		return Suggestion{}, false
	}
	return Suggestion{
		ID:          SuggestionRetention,
		Type:        TypeRetention,
		Title:       "Cliente en riesgo de fuga",
		Description: "La segmentación marca señales de abandono. Una oferta de retención puede recuperar la frecuencia de compra.",
		ActionLabel: "Enviar oferta de retención",
	}, true
}

func upsellRule(c *entity.Customer, _ time.Time) (Suggestion, bool) {
	if c.TotalTransactions < upsellMinTransactions {
		return Suggestion{}, false
	}
	return Suggestion{
		ID:          SuggestionUpsell,
		Type:        TypeUpsell,
		Title:       "Oportunidad de venta adicional",
		Description: "Cliente frecuente con historial de compras consolidado. Es buen momento para proponer un producto complementario.",
		ActionLabel: "Proponer producto",
	}, true
}

// defaultSuggestion saludo genérico; solo se emite cuando ninguna otra regla
// disparó, nunca junto a otra sugerencia.
func defaultSuggestion() Suggestion {
	return Suggestion{
		ID:          SuggestionDefault,
		Type:        TypeRetention,
		Title:       "Mantener el contacto",
		Description: "Sin señales destacadas por ahora. Un saludo cordial mantiene viva la relación comercial.",
		ActionLabel: "Enviar saludo",
	}
}

// daysUntilBirthday diferencia con signo, en días calendario, entre hoy y la
// ocurrencia del cumpleaños en el año de now. Ambas fechas se normalizan a
// medianoche UTC para que la resta sea un múltiplo exacto de 24 h.
// Un nacimiento el 29 de febrero en un año no bisiesto se normaliza al 1 de
// marzo (comportamiento de time.Date), de modo que la regla sigue disparando
// en la ventana que termina ese día.
func daysUntilBirthday(dob, now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	occurrence := time.Date(now.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
	return int(occurrence.Sub(today) / (24 * time.Hour))
}

func spanishDays(n int) string {
	if n == 1 {
		return "1 día"
	}
	return fmt.Sprintf("%d días", n)
}

// contextHints tabla estática ID de sugerencia → contexto con el que se pide
// la redacción del mensaje. Debe ser exhaustiva sobre AllSuggestionIDs: un ID
// sin entrada es un defecto de programación, no una condición de runtime
// (hay un test que fija la exhaustividad).
var contextHints = map[SuggestionID]string{
	SuggestionBirthday:  "felicitación por cumpleaños próximo",
	SuggestionRetention: "oferta de retención para cliente con riesgo de abandono",
	SuggestionUpsell:    "propuesta de producto complementario para cliente frecuente",
	SuggestionDefault:   "saludo cordial para mantener la relación comercial",
}

// ContextHintFor devuelve el contexto de redacción para el ID dado.
// ok=false solo puede ocurrir con un ID fuera de la enumeración.
func ContextHintFor(id SuggestionID) (string, bool) {
	hint, ok := contextHints[id]
	return hint, ok
}

package scoring

import (
	"math"
	"time"

	"github.com/jhoicas/cliente360-api/internal/domain/entity"
)

// ServiceStatus clasificación del holding según los días que faltan para el
// próximo servicio. Overdue y DueSoon comparten severidad visual ("critical")
// pero son estados distintos: vencido vs. por vencer.
type ServiceStatus string

const (
	StatusNeutral ServiceStatus = "neutral"  // sin fecha de servicio registrada
	StatusOverdue ServiceStatus = "overdue"  // servicio vencido (días <= 0)
	StatusDueSoon ServiceStatus = "due_soon" // vence en 1–7 días
	StatusWarning ServiceStatus = "warning"  // vence en 8–30 días
	StatusHealthy ServiceStatus = "healthy"  // más de 30 días
)

// UsageProgress porcentaje transcurrido del ciclo instalación → próximo
// servicio, acotado a [0,100]. Si falta cualquiera de las dos fechas devuelve 0.
// Una duración no positiva (servicio <= instalación) se trata como ciclo ya
// consumido y devuelve 100; nunca hay división por cero ni panic.
func UsageProgress(h *entity.Holding, now time.Time) float64 {
	if h.InstalledAt == nil || h.NextServiceAt == nil {
		return 0
	}
	total := h.NextServiceAt.Sub(*h.InstalledAt)
	if total <= 0 {
		return 100
	}
	elapsed := now.Sub(*h.InstalledAt)
	pct := float64(elapsed) / float64(total) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// DaysRemaining días hasta el próximo servicio, redondeando hacia arriba.
// ok=false cuando el holding no tiene fecha de servicio; en ese caso el valor
// nunca se calcula. Un resultado negativo significa servicio vencido, no error.
func DaysRemaining(h *entity.Holding, now time.Time) (int, bool) {
	if h.NextServiceAt == nil {
		return 0, false
	}
	diff := h.NextServiceAt.Sub(now)
	return int(math.Ceil(diff.Hours() / 24)), true
}

// ServiceStatusFor bucket de estado a partir de (días, ok) de DaysRemaining.
func ServiceStatusFor(days int, ok bool) ServiceStatus {
	switch {
	case !ok:
		return StatusNeutral
	case days <= 0:
		return StatusOverdue
	case days <= 7:
		return StatusDueSoon
	case days <= 30:
		return StatusWarning
	default:
		return StatusHealthy
	}
}

// Severity colapsa el estado a la severidad visual del panel. Overdue y
// DueSoon se pintan igual; el texto del estado conserva la distinción.
func Severity(s ServiceStatus) string {
	switch s {
	case StatusOverdue, StatusDueSoon:
		return "critical"
	case StatusWarning:
		return "warning"
	case StatusHealthy:
		return "healthy"
	default:
		return "neutral"
	}
}

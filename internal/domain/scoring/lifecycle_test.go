package scoring_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cliente360-api/internal/domain/entity"
	"github.com/jhoicas/cliente360-api/internal/domain/scoring"
)

func holdingWithDates(installed, next *time.Time) *entity.Holding {
	return &entity.Holding{
		ID:            "h-001",
		CustomerID:    "c-001",
		ProductName:   "Purificador AquaMax 500",
		Quantity:      1,
		InstalledAt:   installed,
		NextServiceAt: next,
	}
}

func daysFrom(base time.Time, days int) *time.Time {
	d := base.AddDate(0, 0, days)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// UsageProgress
// ──────────────────────────────────────────────────────────────────────────────

// A mitad del ciclo (instalado hace 30 días, servicio en 30) el progreso
// es 50 %.
func TestUsageProgress_MitadDelCiclo(t *testing.T) {
	h := holdingWithDates(daysFrom(testNow, -30), daysFrom(testNow, 30))

	got := scoring.UsageProgress(h, testNow)

	assert.InDelta(t, 50.0, got, 0.01)
}

// Sin fecha de instalación o de servicio el progreso es 0: nunca se calcula
// sobre una fecha ausente.
func TestUsageProgress_FechasAusentes(t *testing.T) {
	next := daysFrom(testNow, 30)
	installed := daysFrom(testNow, -30)

	assert.Zero(t, scoring.UsageProgress(holdingWithDates(nil, next), testNow))
	assert.Zero(t, scoring.UsageProgress(holdingWithDates(installed, nil), testNow))
	assert.Zero(t, scoring.UsageProgress(holdingWithDates(nil, nil), testNow))
}

// Duración no positiva (servicio <= instalación): se trata como ciclo ya
// consumido → 100, sin división por cero.
func TestUsageProgress_DuracionNoPositiva(t *testing.T) {
	same := daysFrom(testNow, -10)

	assert.Equal(t, 100.0, scoring.UsageProgress(holdingWithDates(same, same), testNow))
	assert.Equal(t, 100.0, scoring.UsageProgress(holdingWithDates(daysFrom(testNow, -5), daysFrom(testNow, -20)), testNow))
}

// Desfase de reloj: "ahora" antes de la instalación acota a 0, y un ciclo
// ya vencido acota a 100.
func TestUsageProgress_AcotadoPorDesfaseDeReloj(t *testing.T) {
	futureInstall := holdingWithDates(daysFrom(testNow, 5), daysFrom(testNow, 60))
	assert.Zero(t, scoring.UsageProgress(futureInstall, testNow))

	expired := holdingWithDates(daysFrom(testNow, -90), daysFrom(testNow, -10))
	assert.Equal(t, 100.0, scoring.UsageProgress(expired, testNow))
}

// ──────────────────────────────────────────────────────────────────────────────
// DaysRemaining y buckets de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestDaysRemaining_ServicioEnTreintaDias(t *testing.T) {
	h := holdingWithDates(daysFrom(testNow, -30), daysFrom(testNow, 30))

	days, ok := scoring.DaysRemaining(h, testNow)

	require.True(t, ok)
	assert.Equal(t, 30, days)
}

// Servicio vencido hace 5 días: el valor es negativo, no un error, y el
// bucket es overdue.
func TestDaysRemaining_VencidoEsNegativo(t *testing.T) {
	h := holdingWithDates(daysFrom(testNow, -60), daysFrom(testNow, -5))

	days, ok := scoring.DaysRemaining(h, testNow)

	require.True(t, ok)
	assert.Equal(t, -5, days)
	assert.Equal(t, scoring.StatusOverdue, scoring.ServiceStatusFor(days, ok))
}

func TestDaysRemaining_SinFechaNoSeCalcula(t *testing.T) {
	h := holdingWithDates(daysFrom(testNow, -30), nil)

	_, ok := scoring.DaysRemaining(h, testNow)

	assert.False(t, ok)
	assert.Equal(t, scoring.StatusNeutral, scoring.ServiceStatusFor(0, ok))
}

func TestServiceStatusFor_Buckets(t *testing.T) {
	cases := []struct {
		name   string
		days   int
		ok     bool
		status scoring.ServiceStatus
	}{
		{"sin fecha → neutral", 0, false, scoring.StatusNeutral},
		{"hoy (0) → overdue", 0, true, scoring.StatusOverdue},
		{"vencido → overdue", -12, true, scoring.StatusOverdue},
		{"1 día → due_soon", 1, true, scoring.StatusDueSoon},
		{"7 días → due_soon", 7, true, scoring.StatusDueSoon},
		{"8 días → warning", 8, true, scoring.StatusWarning},
		{"30 días → warning", 30, true, scoring.StatusWarning},
		{"31 días → healthy", 31, true, scoring.StatusHealthy},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, scoring.ServiceStatusFor(tc.days, tc.ok))
		})
	}
}

// Overdue y due_soon comparten severidad visual, pero siguen siendo estados
// distintos para el texto del panel.
func TestSeverity_ColapsaSoloLaSeveridad(t *testing.T) {
	assert.Equal(t, "critical", scoring.Severity(scoring.StatusOverdue))
	assert.Equal(t, "critical", scoring.Severity(scoring.StatusDueSoon))
	assert.Equal(t, "warning", scoring.Severity(scoring.StatusWarning))
	assert.Equal(t, "healthy", scoring.Severity(scoring.StatusHealthy))
	assert.Equal(t, "neutral", scoring.Severity(scoring.StatusNeutral))
	assert.NotEqual(t, scoring.StatusOverdue, scoring.StatusDueSoon)
}

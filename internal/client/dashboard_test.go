package client_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/blslogistica/cargoflow/internal/client"
	"github.com/blslogistica/cargoflow/internal/models"
)

func fecha(year int, month time.Month, day int) models.Fecha {
	return models.NewFecha(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func poliza(id uint, dominio string, fin models.Fecha) models.Poliza {
	return models.Poliza{ID: id, Aseguradora: "Seguros S.A.", VehiculoDominio: dominio, FinVigencia: fin}
}

// TestDeriveAlerts_expiredPolicy verifies that a policy whose end date is
// before today yields exactly one error alert, never an additional
// expiring-soon warning.
func TestDeriveAlerts_expiredPolicy(t *testing.T) {
	now := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)
	polizas := []models.Poliza{poliza(1, "ABC123", fecha(2025, 5, 30))}

	alerts := client.DeriveAlerts(polizas, nil, now)

	require.Len(t, alerts, 1)
	require.Equal(t, client.SeverityError, alerts[0].Severity)
	require.Equal(t, "Póliza vencida para ABC123 el 30/05/2025.", alerts[0].Message)
}

// TestDeriveAlerts_expiryWindow verifies the boundaries of the expiring-soon
// window: today and today+30 are inside, yesterday is expired, today+31 is
// silent.
func TestDeriveAlerts_expiryWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)

	cases := []struct {
		name     string
		fin      models.Fecha
		severity client.Severity
		none     bool
	}{
		{name: "yesterday is expired", fin: fecha(2025, 5, 31), severity: client.SeverityError},
		{name: "today is expiring", fin: fecha(2025, 6, 1), severity: client.SeverityWarning},
		{name: "day thirty is expiring", fin: fecha(2025, 7, 1), severity: client.SeverityWarning},
		{name: "day thirty-one is silent", fin: fecha(2025, 7, 2), none: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			alerts := client.DeriveAlerts([]models.Poliza{poliza(1, "ABC123", tc.fin)}, nil, now)
			if tc.none {
				require.Empty(t, alerts)
				return
			}
			require.Len(t, alerts, 1)
			require.Equal(t, tc.severity, alerts[0].Severity)
		})
	}
}

// TestDeriveAlerts_ordering verifies the fixed class order (errors, warnings,
// info) and that alerts within a class keep the order of the input slices.
func TestDeriveAlerts_ordering(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	polizas := []models.Poliza{
		poliza(1, "WARN01", fecha(2025, 6, 10)),
		poliza(2, "DEAD01", fecha(2025, 5, 1)),
		poliza(3, "WARN02", fecha(2025, 6, 20)),
		poliza(4, "DEAD02", fecha(2025, 5, 2)),
	}
	camiones := []models.Camion{
		{Dominio: "TLR900", Marca: "Volvo", Modelo: "FH", Estado: models.EstadoEnMantenimiento},
	}

	alerts := client.DeriveAlerts(polizas, camiones, now)

	require.Len(t, alerts, 5)
	require.Equal(t, []client.Severity{
		client.SeverityError, client.SeverityError,
		client.SeverityWarning, client.SeverityWarning,
		client.SeverityInfo,
	}, severities(alerts))
	require.Contains(t, alerts[0].Message, "DEAD01")
	require.Contains(t, alerts[1].Message, "DEAD02")
	require.Contains(t, alerts[2].Message, "WARN01")
	require.Contains(t, alerts[3].Message, "WARN02")
	require.Equal(t, "Camión TLR900 (FH) está en mantenimiento.", alerts[4].Message)
}

func severities(alerts []client.Alert) []client.Severity {
	out := make([]client.Severity, len(alerts))
	for i, a := range alerts {
		out[i] = a.Severity
	}
	return out
}

// TestDeriveAlerts_idempotent verifies that deriving twice over the same
// snapshots yields identical output.
func TestDeriveAlerts_idempotent(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	polizas := []models.Poliza{
		poliza(1, "ABC123", fecha(2025, 5, 30)),
		poliza(2, "ACP321", fecha(2025, 6, 20)),
	}
	camiones := []models.Camion{
		{Dominio: "XYZ789", Marca: "Scania", Modelo: "R450", Estado: models.EstadoEnMantenimiento},
	}

	first := client.DeriveAlerts(polizas, camiones, now)
	second := client.DeriveAlerts(polizas, camiones, now)

	require.Equal(t, first, second)
}

// TestDeriveDashboard_indicators verifies the three numeric indicators: three
// trips underway driven by two distinct drivers out of five leaves three
// drivers available, and the critical count equals the number of alerts.
func TestDeriveDashboard_indicators(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	viajes := []models.Viaje{
		{ID: 1, ChoferID: 1, Estado: models.ViajeEnCurso},
		{ID: 2, ChoferID: 1, Estado: models.ViajeEnCurso},
		{ID: 3, ChoferID: 2, Estado: models.ViajeEnCurso},
		{ID: 4, ChoferID: 3, Estado: models.ViajeFinalizado},
		{ID: 5, ChoferID: 4, Estado: models.ViajeProgramado},
	}
	choferes := make([]models.Chofer, 5)
	for i := range choferes {
		choferes[i] = models.Chofer{ID: uint(i + 1)}
	}
	polizas := []models.Poliza{
		poliza(1, "ABC123", fecha(2025, 5, 30)),
		poliza(2, "ACP321", fecha(2025, 6, 20)),
		poliza(3, "XYZ789", fecha(2025, 8, 1)),
	}

	d := client.DeriveDashboard(viajes, choferes, nil, polizas, now)

	require.Equal(t, 3, d.ViajesActivos)
	require.Equal(t, 3, d.ChoferesDisponibles)
	require.Len(t, d.Alertas, 2)
	require.Equal(t, len(d.Alertas), d.AlertasCriticas)
}

// TestDeriveDashboard_driverOnTwoTripsCountsOnce verifies the set semantics
// of the available count with two trips underway for drivers 1 and 2 and a
// finished one, out of five drivers.
func TestDeriveDashboard_driverOnTwoTripsCountsOnce(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	viajes := []models.Viaje{
		{ID: 1, ChoferID: 1, Estado: models.ViajeEnCurso},
		{ID: 2, ChoferID: 2, Estado: models.ViajeEnCurso},
		{ID: 3, ChoferID: 1, Estado: models.ViajeFinalizado},
	}
	choferes := make([]models.Chofer, 5)
	for i := range choferes {
		choferes[i] = models.Chofer{ID: uint(i + 1)}
	}

	d := client.DeriveDashboard(viajes, choferes, nil, nil, now)

	require.Equal(t, 2, d.ViajesActivos)
	require.Equal(t, 3, d.ChoferesDisponibles)
}

// TestDeriveDashboard_availableCanGoNegative verifies that the available
// count is a plain subtraction: more distinct drivers on active trips than
// registered drivers produces a negative number, surfacing the data problem
// instead of hiding it behind a clamp.
func TestDeriveDashboard_availableCanGoNegative(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	viajes := []models.Viaje{
		{ID: 1, ChoferID: 7, Estado: models.ViajeEnCurso},
		{ID: 2, ChoferID: 8, Estado: models.ViajeEnCurso},
		{ID: 3, ChoferID: 9, Estado: models.ViajeEnCurso},
	}
	choferes := []models.Chofer{{ID: 7}, {ID: 8}}

	d := client.DeriveDashboard(viajes, choferes, nil, nil, now)

	require.Equal(t, -1, d.ChoferesDisponibles)
}

// TestPolicyStatus_boundary verifies the status label boundary: a policy
// ending today is still "Vigente" even though the alert engine already flags
// it as expiring soon. The two views intentionally disagree on that day.
func TestPolicyStatus_boundary(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	endsToday := fecha(2025, 6, 1)
	require.Equal(t, client.PolizaVigente, client.PolicyStatus(endsToday, now))

	alerts := client.DeriveAlerts([]models.Poliza{poliza(1, "ABC123", endsToday)}, nil, now)
	require.Len(t, alerts, 1)
	require.Equal(t, client.SeverityWarning, alerts[0].Severity)

	endedYesterday := fecha(2025, 5, 31)
	require.Equal(t, client.PolizaVencida, client.PolicyStatus(endedYesterday, now))
}

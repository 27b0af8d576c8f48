package client

import (
	"fmt"
	"time"

	"github.com/blslogistica/cargoflow/internal/models"
)

// Severity orders alerts: errors first, then warnings, then info. Within a
// class, alerts keep the order of the input collection.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Alert is one dashboard alert line.
type Alert struct {
	Severity Severity
	Message  string
}

// Dashboard is everything the dashboard screen shows, derived in one pass
// over the snapshots.
type Dashboard struct {
	ViajesActivos       int
	ChoferesDisponibles int
	AlertasCriticas     int
	Alertas             []Alert
}

const alertDateLayout = "02/01/2006"

// Policies inside this many days of expiry get a warning.
const expiryWindowDays = 30

// DeriveAlerts computes the alert list from the current snapshots. Pure:
// calling it twice on unchanged inputs yields identical output.
//
// Order is fixed: expired policies (error), policies expiring within the
// window (warning), trucks under maintenance (info). A policy whose
// truncated end date is before today is expired and never also counted as
// expiring soon.
func DeriveAlerts(polizas []models.Poliza, camiones []models.Camion, now time.Time) []Alert {
	hoy := truncateDay(now)

	var alerts []Alert
	for _, p := range polizas {
		fin := truncateDay(p.FinVigencia.Time)
		if fin.Before(hoy) {
			alerts = append(alerts, Alert{
				Severity: SeverityError,
				Message:  fmt.Sprintf("Póliza vencida para %s el %s.", p.VehiculoDominio, fin.Format(alertDateLayout)),
			})
		}
	}

	for _, p := range polizas {
		fin := truncateDay(p.FinVigencia.Time)
		diff := daysBetween(hoy, fin)
		if diff >= 0 && diff <= expiryWindowDays {
			alerts = append(alerts, Alert{
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("Póliza para %s vence el %s.", p.VehiculoDominio, fin.Format(alertDateLayout)),
			})
		}
	}

	for _, c := range camiones {
		if c.Estado == models.EstadoEnMantenimiento {
			alerts = append(alerts, Alert{
				Severity: SeverityInfo,
				Message:  fmt.Sprintf("Camión %s (%s) está en mantenimiento.", c.Dominio, c.Modelo),
			})
		}
	}

	return alerts
}

// DeriveDashboard computes the KPI cards plus the alert list.
//
// Available drivers is total drivers minus the distinct drivers on active
// trips — set semantics, a driver on two active trips counts once. The value
// is deliberately not clamped; inconsistent data shows up as a negative
// number rather than being hidden.
func DeriveDashboard(viajes []models.Viaje, choferes []models.Chofer, camiones []models.Camion, polizas []models.Poliza, now time.Time) Dashboard {
	activos := 0
	enViaje := make(map[uint]struct{})
	for _, v := range viajes {
		if v.Estado == models.ViajeEnCurso {
			activos++
			enViaje[v.ChoferID] = struct{}{}
		}
	}

	alertas := DeriveAlerts(polizas, camiones, now)

	return Dashboard{
		ViajesActivos:       activos,
		ChoferesDisponibles: len(choferes) - len(enViaje),
		AlertasCriticas:     len(alertas),
		Alertas:             alertas,
	}
}

// Policy row statuses shown in the polizas list.
const (
	PolizaVigente = "Vigente"
	PolizaVencida = "Vencida"
)

// PolicyStatus projects a policy's display status from its end date: Vigente
// while the end of the expiry day has not passed. Note the boundary differs
// from DeriveAlerts on purpose: a policy expiring today is Vigente in the
// list but already inside the dashboard's expiring-soon window.
func PolicyStatus(finVigencia models.Fecha, now time.Time) string {
	endOfDay := truncateDay(finVigencia.Time).AddDate(0, 0, 1)
	if truncateDay(now).Before(endOfDay) {
		return PolizaVigente
	}
	return PolizaVencida
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween is the whole-day difference to - from. Both arguments are
// already midnight-truncated, so this is the ceiling of the raw difference.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}

package reports_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/blslogistica/cargoflow/internal/models"
	"github.com/blslogistica/cargoflow/internal/reports"
)

func fechaHora(year int, month time.Month, day int) models.FechaHora {
	return models.FechaHora{Time: time.Date(year, month, day, 12, 0, 0, 0, time.UTC)}
}

// TestBuildViajesReport verifies the sheet layout: headers on row one, one
// row per trip, driver names resolved and dates formatted dd/mm/yyyy. An open
// trip leaves the end-date cell blank.
func TestBuildViajesReport(t *testing.T) {
	viajes := []models.Viaje{
		{
			ID: 1, Origen: "Asunción", Destino: "Encarnación",
			FechaInicio: fechaHora(2025, 6, 1), FechaFin: fechaHora(2025, 6, 3),
			ChoferID: 1, CamionDominio: "ABC123", AcopladoDominio: "ACP321",
			Estado: models.ViajeFinalizado,
		},
		{
			ID: 2, Origen: "Asunción", Destino: "Ciudad del Este",
			FechaInicio: fechaHora(2025, 6, 5),
			ChoferID: 99, CamionDominio: "ABC123",
			Estado: models.ViajeEnCurso,
		},
	}
	choferes := []models.Chofer{{ID: 1, Nombre: "Juan", Apellido: "Pérez"}}

	f, err := reports.BuildViajesReport(viajes, choferes)
	require.NoError(t, err)

	get := func(cell string) string {
		v, err := f.GetCellValue("Viajes", cell)
		require.NoError(t, err)
		return v
	}

	require.Equal(t, "ID", get("A1"))
	require.Equal(t, "Estado", get("I1"))

	require.Equal(t, "Encarnación", get("C2"))
	require.Equal(t, "01/06/2025", get("D2"))
	require.Equal(t, "03/06/2025", get("E2"))
	require.Equal(t, "Juan Pérez", get("F2"))

	// Unknown driver and open trip.
	require.Equal(t, "chofer #99", get("F3"))
	require.Equal(t, "", get("E3"))
}

// TestBuildGastosViajeReport verifies the trip header line and the
// per-currency totals under the expense rows.
func TestBuildGastosViajeReport(t *testing.T) {
	viaje := models.Viaje{ID: 1, Origen: "Asunción", Destino: "Encarnación"}
	gastos := []models.Gasto{
		{ID: 1, Monto: 150000, Fecha: fechaHora(2025, 6, 1), ViajeID: 1, TipoID: 1, Moneda: "PYG"},
		{ID: 2, Monto: 50000, Fecha: fechaHora(2025, 6, 2), ViajeID: 1, TipoID: 1, Moneda: "PYG"},
		{ID: 3, Monto: 40, Fecha: fechaHora(2025, 6, 2), ViajeID: 1, TipoID: 2, Moneda: "USD"},
	}
	tipos := []models.TipoDeGasto{{ID: 1, Nombre: "Combustible"}, {ID: 2, Nombre: "Peajes"}}

	f, err := reports.BuildGastosViajeReport(viaje, gastos, tipos)
	require.NoError(t, err)

	get := func(cell string) string {
		v, err := f.GetCellValue("Gastos", cell)
		require.NoError(t, err)
		return v
	}

	require.Equal(t, "Gastos del viaje Asunción → Encarnación", get("A1"))
	require.Equal(t, "Combustible", get("C3"))
	require.Equal(t, "Peajes", get("C5"))

	// Totals start one blank row below the last expense, in currency order.
	require.Equal(t, "Total PYG", get("A7"))
	require.Equal(t, "200000", get("E7"))
	require.Equal(t, "Total USD", get("A8"))
	require.Equal(t, "40", get("E8"))
}

// TestFilterGastosPeriodo verifies the inclusive calendar-day window and that
// undated expenses are dropped.
func TestFilterGastosPeriodo(t *testing.T) {
	desde := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	hasta := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	gastos := []models.Gasto{
		{ID: 1, Fecha: fechaHora(2025, 5, 31)},
		{ID: 2, Fecha: fechaHora(2025, 6, 1)},
		{ID: 3, Fecha: models.FechaHora{Time: time.Date(2025, 6, 30, 23, 59, 0, 0, time.UTC)}},
		{ID: 4, Fecha: fechaHora(2025, 7, 1)},
		{ID: 5}, // undated
	}

	out := reports.FilterGastosPeriodo(desde, hasta, gastos)

	require.Len(t, out, 2)
	require.Equal(t, uint(2), out[0].ID)
	require.Equal(t, uint(3), out[1].ID)
}

// TestBuildGastosPeriodoReport verifies the range title and that out-of-range
// expenses never reach the sheet.
func TestBuildGastosPeriodoReport(t *testing.T) {
	desde := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	hasta := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	gastos := []models.Gasto{
		{ID: 1, Monto: 100, Fecha: fechaHora(2025, 6, 15), TipoID: 1, Moneda: "USD"},
		{ID: 2, Monto: 999, Fecha: fechaHora(2025, 7, 15), TipoID: 1, Moneda: "USD"},
	}
	tipos := []models.TipoDeGasto{{ID: 1, Nombre: "Peajes"}}

	f, err := reports.BuildGastosPeriodoReport(desde, hasta, gastos, tipos)
	require.NoError(t, err)

	get := func(cell string) string {
		v, err := f.GetCellValue("Gastos", cell)
		require.NoError(t, err)
		return v
	}

	require.Equal(t, "Gastos del 01/06/2025 al 30/06/2025", get("A1"))
	require.Equal(t, "100", get("E3"))
	require.Equal(t, "", get("A4")) // the July expense is filtered out
}

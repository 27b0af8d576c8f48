// Package reports builds the spreadsheet downloads offered by the Informes
// screen. Builders are pure functions over already-fetched records so they can
// be tested without a database.
package reports

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/blslogistica/cargoflow/internal/models"
)

const dateLayout = "02/01/2006"

// BuildViajesReport lists every trip with the driver's full name resolved.
func BuildViajesReport(viajes []models.Viaje, choferes []models.Chofer) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Viajes"
	f.SetSheetName("Sheet1", sheet)

	nombres := make(map[uint]string, len(choferes))
	for _, ch := range choferes {
		nombres[ch.ID] = ch.Nombre + " " + ch.Apellido
	}

	headers := []string{"ID", "Origen", "Destino", "Fecha Inicio", "Fecha Fin", "Chofer", "Camión", "Acoplado", "Estado"}
	if err := writeRow(f, sheet, 1, toCells(headers)); err != nil {
		return nil, err
	}

	for i, v := range viajes {
		chofer := nombres[v.ChoferID]
		if chofer == "" {
			chofer = fmt.Sprintf("chofer #%d", v.ChoferID)
		}
		row := []interface{}{
			v.ID, v.Origen, v.Destino,
			formatFecha(v.FechaInicio), formatFecha(v.FechaFin),
			chofer, v.CamionDominio, v.AcopladoDominio, v.Estado,
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// BuildGastosViajeReport lists the expenses of one trip with a per-currency
// total block underneath.
func BuildGastosViajeReport(viaje models.Viaje, gastos []models.Gasto, tipos []models.TipoDeGasto) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Gastos"
	f.SetSheetName("Sheet1", sheet)

	title := fmt.Sprintf("Gastos del viaje %s → %s", viaje.Origen, viaje.Destino)
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, err
	}

	if err := writeGastos(f, sheet, 2, gastos, tipos); err != nil {
		return nil, err
	}
	return f, nil
}

// BuildGastosPeriodoReport lists every expense whose fecha falls inside
// [desde, hasta] (whole days, both ends inclusive).
func BuildGastosPeriodoReport(desde, hasta time.Time, gastos []models.Gasto, tipos []models.TipoDeGasto) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Gastos"
	f.SetSheetName("Sheet1", sheet)

	title := fmt.Sprintf("Gastos del %s al %s", desde.Format(dateLayout), hasta.Format(dateLayout))
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, err
	}

	filtered := FilterGastosPeriodo(desde, hasta, gastos)
	if err := writeGastos(f, sheet, 2, filtered, tipos); err != nil {
		return nil, err
	}
	return f, nil
}

// FilterGastosPeriodo keeps the expenses dated inside [desde, hasta],
// comparing calendar days. Undated expenses are dropped.
func FilterGastosPeriodo(desde, hasta time.Time, gastos []models.Gasto) []models.Gasto {
	start := truncateDay(desde)
	end := truncateDay(hasta).AddDate(0, 0, 1)

	var out []models.Gasto
	for _, g := range gastos {
		if g.Fecha.IsZero() {
			continue
		}
		d := g.Fecha.Time
		if !d.Before(start) && d.Before(end) {
			out = append(out, g)
		}
	}
	return out
}

func writeGastos(f *excelize.File, sheet string, startRow int, gastos []models.Gasto, tipos []models.TipoDeGasto) error {
	nombres := make(map[uint]string, len(tipos))
	for _, t := range tipos {
		nombres[t.ID] = t.Nombre
	}

	headers := []string{"ID", "Fecha", "Tipo", "Descripción", "Monto", "Moneda"}
	if err := writeRow(f, sheet, startRow, toCells(headers)); err != nil {
		return err
	}

	totals := make(map[string]float64)
	row := startRow
	for _, g := range gastos {
		row++
		tipo := nombres[g.TipoID]
		if tipo == "" {
			tipo = fmt.Sprintf("tipo #%d", g.TipoID)
		}
		cells := []interface{}{g.ID, formatFecha(g.Fecha), tipo, g.Descripcion, g.Monto, g.Moneda}
		if err := writeRow(f, sheet, row, cells); err != nil {
			return err
		}
		totals[g.Moneda] += g.Monto
	}

	row += 2
	for _, moneda := range sortedKeys(totals) {
		cells := []interface{}{"Total " + moneda, "", "", "", totals[moneda], moneda}
		if err := writeRow(f, sheet, row, cells); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	for i, v := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func toCells(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func formatFecha(f models.FechaHora) string {
	if f.IsZero() {
		return ""
	}
	return f.Format(dateLayout)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}

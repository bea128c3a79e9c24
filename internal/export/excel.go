package export

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/PaintCalc/internal/model"
)

// Sheet names of the exported workbook.
const (
	SheetSummary = "Summary"
	SheetPaints  = "By Paint"
	SheetRooms   = "Rooms"
	SheetWalls   = "Walls"
)

// ExportExcel writes a job report as an Excel workbook with a summary sheet,
// a shopping list per paint, a per-room breakdown and a wall schedule.
func ExportExcel(path string, rep model.JobReport, cfg model.AppConfig) error {
	if len(rep.Rooms) == 0 {
		return ErrEmptyReport
	}
	cfg = cfg.Normalize()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}
	for _, name := range []string{SheetPaints, SheetRooms, SheetWalls} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %q: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	summary := [][]interface{}{
		{cfg.ReportTitle},
		{"Job", rep.Name},
		{"Rooms", len(rep.Rooms)},
		{"Paintable area (m²)", round2(rep.NetArea)},
		{"Buckets", rep.TotalBuckets},
		{"Total cost (" + cfg.Currency + ")", round2(rep.TotalCost)},
	}
	for i, w := range rep.Warnings {
		label := ""
		if i == 0 {
			label = "Warnings"
		}
		summary = append(summary, []interface{}{label, w})
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetSummary, "A1", "A1", bold); err != nil {
		return fmt.Errorf("style summary: %w", err)
	}

	paints := [][]interface{}{
		{"Paint", "Walls", "Litres needed", "Litres bought", "Buckets", "Price per bucket", "Cost"},
	}
	for _, t := range rep.ByPaint {
		paints = append(paints, []interface{}{
			t.Paint.Name, t.Walls, round2(t.LitresNeeded), round2(t.LitresPurchased),
			t.Buckets, t.Paint.PricePerBucket, round2(t.Cost),
		})
	}
	if err := writeTable(f, SheetPaints, paints, bold); err != nil {
		return err
	}

	rooms := [][]interface{}{
		{"Room", "ID", "Walls", "Area (m²)", "Paint", "Buckets", "Cost"},
	}
	for _, r := range rep.Rooms {
		for _, t := range r.ByPaint {
			rooms = append(rooms, []interface{}{
				r.Name, r.RoomID, r.Walls, round2(r.NetArea), t.Paint.Name, t.Buckets, round2(t.Cost),
			})
		}
		rooms = append(rooms, []interface{}{
			r.Name + " total", r.RoomID, r.Walls, round2(r.NetArea), "", r.Buckets, round2(r.Cost),
		})
	}
	if err := writeTable(f, SheetRooms, rooms, bold); err != nil {
		return err
	}

	walls := [][]interface{}{
		{"Room", "Wall ID", "Label", "Shape", "Area (m²)", "Paint", "Coats", "Buckets", "Cost"},
	}
	for _, r := range rep.Rooms {
		for _, w := range r.Details {
			walls = append(walls, []interface{}{
				r.Name, w.WallID, w.Label, w.Shape, round2(w.NetArea), w.Paint, w.Coats, w.Buckets, round2(w.Cost),
			})
		}
	}
	if err := writeTable(f, SheetWalls, walls, bold); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write workbook %s: %w", path, err)
	}
	return nil
}

// writeTable writes rows with a bold header and widened first column.
func writeTable(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("style %s header: %w", sheet, err)
	}
	return f.SetColWidth(sheet, "A", "A", 24)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

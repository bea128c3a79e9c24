// Package export renders paint job reports to PDF, Excel and QR-coded
// shopping labels.
package export

import (
	"errors"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/PaintCalc/internal/model"
)

// ErrEmptyReport is returned when a report has nothing to render.
var ErrEmptyReport = errors.New("report has no rooms")

// paintSwatch is the RGB fill used for a row in the paint table.
type paintSwatch struct {
	R, G, B int
}

// swatches cycles through row markers so each paint stands out.
var swatches = []paintSwatch{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	rowHeight    = 6.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// pdfWriter carries the document and the text translator for core fonts,
// which are not UTF-8.
type pdfWriter struct {
	pdf      *fpdf.Fpdf
	tr       func(string) string
	currency string
	y        float64
}

// ExportPDF writes a job report as a PDF: a summary block, the shopping list
// per paint, a breakdown per room and any wall warnings.
func ExportPDF(path string, rep model.JobReport, cfg model.AppConfig) error {
	if len(rep.Rooms) == 0 {
		return ErrEmptyReport
	}
	cfg = cfg.Normalize()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetTitle(cfg.ReportTitle, true)
	pdf.AddPage()

	w := &pdfWriter{
		pdf:      pdf,
		tr:       pdf.UnicodeTranslatorFromDescriptor(""),
		currency: cfg.Currency,
		y:        marginTop,
	}

	w.renderHeader(cfg.ReportTitle, rep)
	w.renderSummary(rep)
	w.renderPaintTable(rep.ByPaint)
	w.renderRooms(rep.Rooms)
	w.renderWarnings(rep.Warnings)
	w.renderFooter()

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}

// ensureSpace starts a new page when fewer than h millimetres remain.
func (w *pdfWriter) ensureSpace(h float64) {
	if w.y+h > pageHeight-marginBottom-8 {
		w.renderFooter()
		w.pdf.AddPage()
		w.y = marginTop
	}
}

func (w *pdfWriter) renderHeader(title string, rep model.JobReport) {
	pdf := w.pdf
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(marginLeft, w.y)
	pdf.CellFormat(contentWidth, 10, w.tr(title), "", 0, "L", false, 0, "")
	w.y += 10

	if rep.Name != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetXY(marginLeft, w.y)
		pdf.CellFormat(contentWidth, 6, w.tr(rep.Name), "", 0, "L", false, 0, "")
		w.y += 6
	}

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, w.y+2, pageWidth-marginRight, w.y+2)
	w.y += 6
}

func (w *pdfWriter) renderSummary(rep model.JobReport) {
	pdf := w.pdf
	w.sectionTitle("Summary")

	items := []struct {
		label string
		value string
	}{
		{"Rooms", fmt.Sprintf("%d", len(rep.Rooms))},
		{"Paintable area", fmt.Sprintf("%.2f m²", rep.NetArea)},
		{"Buckets to buy", fmt.Sprintf("%d", rep.TotalBuckets)},
		{"Total cost", formatMoney(w.currency, rep.TotalCost)},
	}

	for _, item := range items {
		pdf.SetXY(marginLeft+5, w.y)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(50, rowHeight, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(50, rowHeight, w.tr(item.value), "", 0, "L", false, 0, "")
		w.y += rowHeight + 1
	}
	w.y += 4
}

func (w *pdfWriter) renderPaintTable(totals []model.PaintTotal) {
	w.sectionTitle("Shopping List")

	colWidths := []float64{8, 42, 20, 30, 30, 20, 30}
	headers := []string{"", "Paint", "Walls", "Litres needed", "Litres bought", "Buckets", "Cost"}
	w.tableHeader(colWidths, headers)

	pdf := w.pdf
	for i, t := range totals {
		w.ensureSpace(rowHeight)
		sw := swatches[i%len(swatches)]
		pdf.SetFillColor(sw.R, sw.G, sw.B)
		pdf.Rect(marginLeft+2, w.y+1.5, 4, 3, "F")

		w.tableRow(colWidths, i, 2, []string{
			"",
			t.Paint.Name,
			fmt.Sprintf("%d", t.Walls),
			fmt.Sprintf("%.2f", t.LitresNeeded),
			fmt.Sprintf("%.2f", t.LitresPurchased),
			fmt.Sprintf("%d", t.Buckets),
			formatMoney(w.currency, t.Cost),
		})
	}
	w.y += 6
}

func (w *pdfWriter) renderRooms(rooms []model.RoomReport) {
	w.ensureSpace(30)
	w.sectionTitle("Rooms")

	colWidths := []float64{60, 20, 35, 25, 40}
	headers := []string{"Room", "Walls", "Area (m²)", "Buckets", "Cost"}
	w.tableHeader(colWidths, headers)

	for i, r := range rooms {
		w.ensureSpace(rowHeight)
		w.tableRow(colWidths, i, 1, []string{
			r.Name,
			fmt.Sprintf("%d", r.Walls),
			fmt.Sprintf("%.2f", r.NetArea),
			fmt.Sprintf("%d", r.Buckets),
			formatMoney(w.currency, r.Cost),
		})
	}
	w.y += 6
}

func (w *pdfWriter) renderWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	pdf := w.pdf
	w.ensureSpace(20)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(200, 0, 0)
	pdf.SetXY(marginLeft, w.y)
	pdf.CellFormat(contentWidth, 7, "WARNING: Obstacles exceed wall area", "", 0, "L", false, 0, "")
	w.y += 8

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, msg := range warnings {
		w.ensureSpace(5)
		pdf.SetXY(marginLeft+5, w.y)
		pdf.CellFormat(contentWidth-5, 5, w.tr("- "+msg), "", 0, "L", false, 0, "")
		w.y += 5
	}
}

func (w *pdfWriter) renderFooter() {
	pdf := w.pdf
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(contentWidth, 4, fmt.Sprintf("Generated by PaintCalc - page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func (w *pdfWriter) sectionTitle(title string) {
	w.pdf.SetFont("Helvetica", "B", 12)
	w.pdf.SetTextColor(0, 0, 0)
	w.pdf.SetXY(marginLeft, w.y)
	w.pdf.CellFormat(100, 7, title, "", 0, "L", false, 0, "")
	w.y += 9
}

func (w *pdfWriter) tableHeader(colWidths []float64, headers []string) {
	pdf := w.pdf
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	x := marginLeft
	for i, h := range headers {
		pdf.SetXY(x, w.y)
		pdf.CellFormat(colWidths[i], rowHeight, w.tr(h), "1", 0, "C", true, 0, "")
		x += colWidths[i]
	}
	w.y += rowHeight
}

// tableRow draws one row with alternating background. The first leftCols
// cells are left-aligned, the rest right-aligned. Empty leading cells stay
// unfilled so a swatch drawn beneath them shows through.
func (w *pdfWriter) tableRow(colWidths []float64, index, leftCols int, cells []string) {
	pdf := w.pdf
	pdf.SetFont("Helvetica", "", 9)
	x := marginLeft
	for j, cell := range cells {
		if index%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		align := "R"
		if j < leftCols {
			align = "L"
		}
		fill := cell != "" || j > 0
		pdf.SetXY(x, w.y)
		pdf.CellFormat(colWidths[j], rowHeight, w.tr(cell), "1", 0, align, fill, 0, "")
		x += colWidths[j]
	}
	w.y += rowHeight
}

// formatMoney renders an amount with two decimals behind the currency symbol.
func formatMoney(currency string, v float64) string {
	return fmt.Sprintf("%s%.2f", currency, v)
}

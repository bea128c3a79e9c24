package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/PaintCalc/internal/model"
)

// LabelInfo holds the data encoded into each shopping label's QR code.
type LabelInfo struct {
	Job             string  `json:"job,omitempty"`
	Paint           string  `json:"paint"`
	Buckets         int     `json:"buckets"`
	LitresPerBucket float64 `json:"litres_per_bucket"`
	LitresNeeded    float64 `json:"litres_needed"`
	Cost            float64 `json:"cost"`
	Currency        string  `json:"currency"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF with one QR-coded shopping label per paint
// that needs buying. Paints with no buckets get no label.
func ExportLabels(path string, rep model.JobReport, cfg model.AppConfig) error {
	labels := CollectLabelInfos(rep, cfg.Normalize())
	if len(labels) == 0 {
		return fmt.Errorf("no paint to buy: %w", ErrEmptyReport)
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, tr, x, y, i, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.Paint, err)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write labels %s: %w", path, err)
	}
	return nil
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, tr func(string) string, x, y float64, index int, info LabelInfo) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%d", index)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Paint name, truncated to fit
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	name := tr(info.Paint)
	if pdf.GetStringWidth(name) > textW {
		for len(name) > 0 && pdf.GetStringWidth(name+"...") > textW {
			name = name[:len(name)-1]
		}
		name += "..."
	}
	pdf.CellFormat(textW, 4.5, name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	qty := fmt.Sprintf("%d x %.2f L", info.Buckets, info.LitresPerBucket)
	pdf.CellFormat(textW, 3.5, qty, "", 1, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+9)
	pdf.CellFormat(textW, 3.5, tr(formatMoney(info.Currency, info.Cost)), "", 1, "L", false, 0, "")

	if info.Job != "" {
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetTextColor(100, 100, 100)
		pdf.SetXY(textX, y+labelPadding+13)
		pdf.CellFormat(textW, 3, tr(info.Job), "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos extracts one label per paint with at least one bucket
// to buy, in report order.
func CollectLabelInfos(rep model.JobReport, cfg model.AppConfig) []LabelInfo {
	var labels []LabelInfo
	for _, t := range rep.ByPaint {
		if t.Buckets == 0 {
			continue
		}
		labels = append(labels, LabelInfo{
			Job:             rep.Name,
			Paint:           t.Paint.Name,
			Buckets:         t.Buckets,
			LitresPerBucket: t.Paint.LitresPerBucket,
			LitresNeeded:    t.LitresNeeded,
			Cost:            t.Cost,
			Currency:        cfg.Currency,
		})
	}
	return labels
}

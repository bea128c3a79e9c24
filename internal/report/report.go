// Package report renders a job report as console text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/piwi3910/PaintCalc/internal/model"
)

// Format selects the console rendering.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat accepts "text" or "json", case-insensitively. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown report format %q (use text or json)", s)
	}
}

// Write renders rep to w in the given format.
func Write(w io.Writer, rep model.JobReport, cfg model.AppConfig, format Format) error {
	if format == FormatJSON {
		return WriteJSON(w, rep)
	}
	return WriteText(w, rep, cfg)
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, rep model.JobReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// WriteText writes a human-readable summary: the shopping list, the room
// breakdown, warnings and the grand total.
func WriteText(w io.Writer, rep model.JobReport, cfg model.AppConfig) error {
	cfg = cfg.Normalize()
	money := func(v float64) string { return fmt.Sprintf("%s%.2f", cfg.Currency, v) }

	var b strings.Builder
	title := cfg.ReportTitle
	if rep.Name != "" {
		title += ": " + rep.Name
	}
	fmt.Fprintln(&b, title)
	fmt.Fprintln(&b, strings.Repeat("=", len([]rune(title))))
	fmt.Fprintln(&b)

	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Paint\tWalls\tLitres\tBuckets\tCost\t")
	for _, t := range rep.ByPaint {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%d\t%s\t\n", t.Paint.Name, t.Walls, t.LitresNeeded, t.Buckets, money(t.Cost))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(&b)

	tw = tabwriter.NewWriter(&b, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Room\tWalls\tArea m²\tBuckets\tCost\t")
	for _, r := range rep.Rooms {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%d\t%s\t\n", r.Name, r.Walls, r.NetArea, r.Buckets, money(r.Cost))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(rep.Warnings) > 0 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "Warnings:")
		for _, msg := range rep.Warnings {
			fmt.Fprintf(&b, "  - %s\n", msg)
		}
	}

	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Total: %d buckets, %s\n", rep.TotalBuckets, money(rep.TotalCost))

	_, err := io.WriteString(w, b.String())
	return err
}

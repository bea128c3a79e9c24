package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/PaintCalc/internal/model"
)

// buildTestReport creates a realistic two-room job report for testing.
func buildTestReport(t *testing.T) model.JobReport {
	t.Helper()
	spec := model.JobSpec{
		Name: "Flat 3B",
		Rooms: []model.RoomSpec{
			{
				Name: "Kitchen",
				Walls: []model.WallSpec{
					{
						Label:       "North",
						SurfaceSpec: model.SurfaceSpec{Shape: "rectangle", Dimensions: []float64{4, 3}},
						Paint:       "Cotton",
						Coats:       2,
						Obstacles: []model.SurfaceSpec{
							{Shape: "rectangle", Dimensions: []float64{1, 2}},
						},
					},
					{
						Label:       "East",
						SurfaceSpec: model.SurfaceSpec{Shape: "square", Dimensions: []float64{3}},
						Paint:       "Emerald",
						Coats:       1,
					},
				},
			},
			{
				Name: "Hall",
				Walls: []model.WallSpec{
					{
						Label:       "Stairs",
						SurfaceSpec: model.SurfaceSpec{Shape: "triangle", Dimensions: []float64{4, 3}},
						Paint:       "Cotton",
						Coats:       1,
					},
				},
			},
		},
	}
	job, err := model.BuildJob(spec, model.DefaultCatalog())
	if err != nil {
		t.Fatalf("BuildJob returned error: %v", err)
	}
	return job.Report()
}

func assertNonEmptyFile(t *testing.T, path string, minSize int64) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("file was not created: %v", err)
	}
	if info.Size() < minSize {
		t.Errorf("file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estimate.pdf")

	err := ExportPDF(path, buildTestReport(t), model.DefaultAppConfig())
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	assertNonEmptyFile(t, path, 500)
}

func TestExportPDF_EmptyReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")

	err := ExportPDF(path, model.JobReport{}, model.DefaultAppConfig())
	if !errors.Is(err, ErrEmptyReport) {
		t.Fatalf("expected ErrEmptyReport, got %v", err)
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Error("no file should be written for an empty report")
	}
}

func TestExportPDF_WithWarnings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warnings.pdf")

	rep := buildTestReport(t)
	rep.Warnings = []string{`room 1 "Kitchen", wall 1 "North": obstacles exceed wall area`}

	if err := ExportPDF(path, rep, model.DefaultAppConfig()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	assertNonEmptyFile(t, path, 500)
}

func TestExportPDF_ManyRoomsPaginates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "long.pdf")

	rep := buildTestReport(t)
	base := rep.Rooms[0]
	for i := 0; i < 80; i++ {
		rep.Rooms = append(rep.Rooms, base)
	}

	if err := ExportPDF(path, rep, model.DefaultAppConfig()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	assertNonEmptyFile(t, path, 1000)
}

func TestExportPDF_InvalidPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "estimate.pdf")

	if err := ExportPDF(path, buildTestReport(t), model.DefaultAppConfig()); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestFormatMoney(t *testing.T) {
	if got := formatMoney("£", 64); got != "£64.00" {
		t.Errorf("formatMoney = %q, want £64.00", got)
	}
	if got := formatMoney("", 3.456); got != "3.46" {
		t.Errorf("formatMoney = %q, want 3.46", got)
	}
}

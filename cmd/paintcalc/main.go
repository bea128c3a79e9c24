// PaintCalc: paint quantity and cost estimator.
//
// Reads one or more job documents, works out how many buckets of each paint
// to buy for every wall, and prints the totals. Reports can also be written
// as PDF, Excel workbooks and QR-coded shopping labels.
//
// Build:
//
//	go build -o paintcalc ./cmd/paintcalc
//
// Usage:
//
//	paintcalc [flags] job.yaml [more.csv rooms.xlsx north.dxf ...]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/PaintCalc/internal/export"
	"github.com/piwi3910/PaintCalc/internal/importer"
	"github.com/piwi3910/PaintCalc/internal/input"
	"github.com/piwi3910/PaintCalc/internal/logging"
	"github.com/piwi3910/PaintCalc/internal/model"
	"github.com/piwi3910/PaintCalc/internal/project"
	"github.com/piwi3910/PaintCalc/internal/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv))
}

// options holds the parsed command line.
type options struct {
	configPath string
	envFile    string
	catalog    string
	format     report.Format
	pdf        string
	xlsx       string
	labels     string
	saveJob    string
	room       string
	paint      string
	coats      int
	validate   bool
	skipBad    bool
	listPaints bool
	initConfig bool
	backup     string
	restore    string
	inputs     []string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("paintcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", project.DefaultConfigPath(), "application config file (JSON)")
	fs.StringVar(&opts.envFile, "env", ".env", "env file with PAINTCALC_* overrides")
	fs.StringVar(&opts.catalog, "catalog", "", "paint catalog file (YAML or JSON); overrides config")
	format := fs.String("format", "text", "console report format: text or json")
	fs.StringVar(&opts.pdf, "pdf", "", "write a PDF report to this path")
	fs.StringVar(&opts.xlsx, "xlsx", "", "write an Excel workbook to this path")
	fs.StringVar(&opts.labels, "labels", "", "write QR-coded shopping labels (PDF) to this path")
	fs.StringVar(&opts.saveJob, "save-job", "", "write the merged job as YAML to this path")
	fs.StringVar(&opts.room, "room", "Elevations", "room that walls read from DXF files belong to")
	fs.StringVar(&opts.paint, "paint", "", "paint for walls read from DXF files")
	fs.IntVar(&opts.coats, "coats", 0, "coats for walls read from DXF files (0 = config default)")
	fs.BoolVar(&opts.validate, "validate", false, "check the inputs and exit without a report")
	fs.BoolVar(&opts.skipBad, "skip-bad-rows", false, "leave rejected spreadsheet rows out of the estimate instead of failing")
	fs.BoolVar(&opts.listPaints, "list-paints", false, "print the paint catalog and exit")
	fs.BoolVar(&opts.initConfig, "init-config", false, "write the default config file and exit")
	fs.StringVar(&opts.backup, "backup", "", "write config and paint catalog to a settings bundle and exit")
	fs.StringVar(&opts.restore, "restore", "", "install a settings bundle as the config and catalog and exit")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	f, err := report.ParseFormat(*format)
	if err != nil {
		fmt.Fprintln(stderr, "paintcalc: -format:", err)
		return opts, err
	}
	opts.format = f
	opts.inputs = fs.Args()
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer, lookup func(string) (string, bool)) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if err := project.LoadEnvFiles(opts.envFile); err != nil {
		fmt.Fprintln(stderr, "paintcalc:", err)
		return 1
	}

	cfg, err := project.LoadAppConfig(opts.configPath)
	if err != nil {
		fmt.Fprintln(stderr, "paintcalc:", err)
		return 1
	}
	cfg, envWarnings := project.ApplyEnv(cfg, lookup)
	if opts.catalog != "" {
		cfg.CatalogPath = opts.catalog
	}
	cfg = cfg.Normalize()

	logger, err := logging.New(logging.Options{
		Writer: stderr,
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Color:  cfg.LogColor,
	})
	if err != nil {
		logger.Warn("logging config", "error", err)
	}
	for _, w := range envWarnings {
		logger.Warn(w)
	}

	if err := execute(opts, cfg, logger, stdout); err != nil {
		logger.Error("paintcalc failed", "error", err)
		return 1
	}
	return 0
}

func execute(opts options, cfg model.AppConfig, logger *slog.Logger, stdout io.Writer) error {
	if opts.initConfig {
		if err := project.SaveAppConfig(opts.configPath, cfg); err != nil {
			return err
		}
		logger.Info("config written", "path", opts.configPath)
		return nil
	}

	if opts.restore != "" {
		restored, err := project.RestoreAllData(opts.restore, opts.configPath)
		if err != nil {
			return err
		}
		logger.Info("settings restored", "config", opts.configPath, "catalog", restored.CatalogPath)
		return nil
	}

	catalog, err := project.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}
	logger.Debug("catalog loaded", "path", cfg.CatalogPath, "paints", catalog.Len())

	if opts.backup != "" {
		if err := project.ExportAllData(opts.backup, cfg, catalog); err != nil {
			return err
		}
		logger.Info("settings bundle written", "path", opts.backup, "paints", catalog.Len())
		return nil
	}

	if opts.listPaints {
		return listPaints(stdout, catalog, cfg)
	}

	if len(opts.inputs) == 0 {
		return errors.New("no job files given")
	}

	spec, rejected, err := collectJob(opts, cfg, catalog, logger)
	if err != nil {
		return err
	}

	job, err := model.BuildJob(spec, catalog)
	if err != nil {
		return err
	}
	rep := job.Report()
	for _, w := range rep.Warnings {
		logger.Warn("obstacles exceed wall area", "wall", w)
	}
	logger.Info("job built", "rooms", len(rep.Rooms), "walls", spec.WallCount(), "buckets", rep.TotalBuckets)

	if opts.validate {
		if rejected > 0 {
			return fmt.Errorf("%d rejected rows", rejected)
		}
		fmt.Fprintf(stdout, "OK: %d rooms, %d walls\n", len(rep.Rooms), spec.WallCount())
		return nil
	}

	if opts.saveJob != "" {
		if err := project.SaveJobFile(opts.saveJob, spec); err != nil {
			return err
		}
		logger.Info("job saved", "path", opts.saveJob)
	}

	if err := report.Write(stdout, rep, cfg, opts.format); err != nil {
		return err
	}

	return writeExports(opts, rep, cfg, logger)
}

// writeExports writes every file output requested on the command line.
func writeExports(opts options, rep model.JobReport, cfg model.AppConfig, logger *slog.Logger) error {
	exports := []struct {
		kind  string
		path  string
		write func(string, model.JobReport, model.AppConfig) error
	}{
		{"pdf", opts.pdf, export.ExportPDF},
		{"xlsx", opts.xlsx, export.ExportExcel},
		{"labels", opts.labels, export.ExportLabels},
	}
	for _, e := range exports {
		if e.path == "" {
			continue
		}
		if err := e.write(e.path, rep, cfg); err != nil {
			return fmt.Errorf("%s export: %w", e.kind, err)
		}
		logger.Info("report written", "kind", e.kind, "path", e.path)
	}
	return nil
}

// collectJob merges every input document into one job. Job documents and
// spreadsheets contribute rooms; DXF elevations contribute walls to a
// single room named by -room. A spreadsheet row that fails validation
// aborts the merge unless -skip-bad-rows is set, in which case the count
// of dropped rows is returned.
func collectJob(opts options, cfg model.AppConfig, catalog model.Catalog, logger *slog.Logger) (model.JobSpec, int, error) {
	var spec model.JobSpec
	var elevations []model.WallSpec
	rejected := 0

	for _, path := range opts.inputs {
		ext := strings.ToLower(filepath.Ext(path))
		log := logger.With("file", path)

		switch ext {
		case ".yaml", ".yml", ".json":
			js, err := project.LoadJobFile(path, cfg.DefaultCoats)
			if err != nil {
				return spec, rejected, err
			}
			if spec.Name == "" {
				spec.Name = js.Name
			}
			spec.Rooms = append(spec.Rooms, js.Rooms...)
			log.Debug("job file loaded", "rooms", len(js.Rooms))

		case ".csv", ".tsv", ".txt", ".xlsx":
			var res importer.ImportResult
			if ext == ".xlsx" {
				res = importer.ImportExcel(path, cfg.DefaultCoats)
			} else {
				res = importer.ImportCSV(path, cfg.DefaultCoats)
			}
			for _, w := range res.Warnings {
				log.Debug(w)
			}
			if len(res.Errors) > 0 && !opts.skipBad {
				return spec, rejected, fmt.Errorf("%s: %d rejected rows: %s", path, len(res.Errors), strings.Join(res.Errors, "; "))
			}
			for _, e := range res.Errors {
				log.Warn("row skipped", "reason", e)
			}
			rejected += len(res.Errors)
			if len(res.Job.Rooms) == 0 {
				return spec, rejected, fmt.Errorf("%s: no usable rows", path)
			}
			spec.Rooms = append(spec.Rooms, res.Job.Rooms...)
			log.Debug("spreadsheet imported", "rooms", len(res.Job.Rooms), "skipped", len(res.Errors))

		case ".dxf":
			paint, err := input.ParsePaint(opts.paint, catalog)
			if err != nil {
				return spec, rejected, fmt.Errorf("%s: -paint: %w", path, err)
			}
			coats := opts.coats
			if coats == 0 {
				coats = cfg.DefaultCoats
			}
			res := importer.ImportDXFWall(path, paint.Name, coats)
			for _, w := range res.Warnings {
				log.Debug(w)
			}
			if len(res.Errors) > 0 {
				return spec, rejected, fmt.Errorf("%s: %s", path, strings.Join(res.Errors, "; "))
			}
			elevations = append(elevations, res.Wall)
			log.Debug("elevation imported", "shape", res.Wall.Shape, "obstacles", len(res.Wall.Obstacles))

		default:
			return spec, rejected, fmt.Errorf("%s: unsupported file type %q", path, ext)
		}
	}

	if len(elevations) > 0 {
		spec.Rooms = append(spec.Rooms, model.RoomSpec{Name: opts.room, Walls: elevations})
	}
	return spec, rejected, nil
}

func listPaints(w io.Writer, catalog model.Catalog, cfg model.AppConfig) error {
	for _, p := range catalog.Entries() {
		_, err := fmt.Fprintf(w, "%-12s %s%.2f per %.2f L bucket, %.0f m²/L\n",
			p.Name, cfg.Currency, p.PricePerBucket, p.LitresPerBucket, p.CoveragePerLitre)
		if err != nil {
			return err
		}
	}
	return nil
}

package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/piwi3910/PaintCalc/internal/model"
)

// Environment variables that override the config file.
const (
	EnvCatalog      = "PAINTCALC_CATALOG"
	EnvCurrency     = "PAINTCALC_CURRENCY"
	EnvDefaultCoats = "PAINTCALC_DEFAULT_COATS"
	EnvReportTitle  = "PAINTCALC_REPORT_TITLE"
	EnvLogLevel     = "PAINTCALC_LOG_LEVEL"
	EnvLogFormat    = "PAINTCALC_LOG_FORMAT"
	EnvLogColor     = "PAINTCALC_LOG_COLOR"
)

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.paintcalc/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".paintcalc")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
// Fields missing from the file keep their default values.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	config := model.DefaultAppConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config.Normalize(), nil
}

// LoadEnvFiles loads KEY=VALUE pairs from the given .env files into the
// process environment. Variables that are already set win. Missing files
// and empty paths are skipped.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides config values with PAINTCALC_* variables found through
// lookup (normally os.LookupEnv). Unparseable values are skipped and returned
// as warnings.
func ApplyEnv(cfg model.AppConfig, lookup func(string) (string, bool)) (model.AppConfig, []string) {
	var warnings []string

	if v, ok := lookup(EnvCatalog); ok {
		cfg.CatalogPath = v
	}
	if v, ok := lookup(EnvCurrency); ok {
		cfg.Currency = v
	}
	if v, ok := lookup(EnvReportTitle); ok && v != "" {
		cfg.ReportTitle = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		cfg.LogFormat = v
	}
	if v, ok := lookup(EnvDefaultCoats); ok {
		coats, err := strconv.Atoi(v)
		if err != nil || coats < 1 {
			warnings = append(warnings, fmt.Sprintf("%s=%q is not a positive whole number, keeping %d", EnvDefaultCoats, v, cfg.DefaultCoats))
		} else {
			cfg.DefaultCoats = coats
		}
	}
	if v, ok := lookup(EnvLogColor); ok {
		color, err := strconv.ParseBool(v)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s=%q is not a boolean, keeping %t", EnvLogColor, v, cfg.LogColor))
		} else {
			cfg.LogColor = color
		}
	}

	return cfg, warnings
}

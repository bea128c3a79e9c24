package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/PaintCalc/internal/model"
)

// BackupVersion is written into every settings bundle.
const BackupVersion = "1.0.0"

// BackupData is the top-level structure of a settings bundle: the
// application config together with the paint catalog it prices against.
type BackupData struct {
	Version   string             `json:"version"`
	CreatedAt string             `json:"created_at"`
	Config    model.AppConfig    `json:"config"`
	Paints    []model.PaintEntry `json:"paints"`
}

// ExportAllData writes config and catalog to a single JSON file so a setup
// can be moved to another machine.
func ExportAllData(exportPath string, config model.AppConfig, catalog model.Catalog) error {
	backup := BackupData{
		Version:   BackupVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    config,
		Paints:    catalog.Entries(),
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup data: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(exportPath), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := os.WriteFile(exportPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ImportAllData reads a settings bundle. The paints are validated as a
// catalog; the caller decides where to install them.
func ImportAllData(importPath string) (BackupData, model.Catalog, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, model.Catalog{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, model.Catalog{}, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, model.Catalog{}, fmt.Errorf("invalid backup file: missing version field")
	}
	backup.Config = backup.Config.Normalize()

	if len(backup.Paints) == 0 {
		return backup, model.DefaultCatalog(), nil
	}
	catalog, err := model.NewCatalog(backup.Paints...)
	if err != nil {
		return BackupData{}, model.Catalog{}, fmt.Errorf("invalid backup catalog: %w", err)
	}
	return backup, catalog, nil
}

// RestoreAllData installs a settings bundle: the catalog is written next to
// the config file and the config is pointed at it.
func RestoreAllData(importPath, configPath string) (model.AppConfig, error) {
	backup, catalog, err := ImportAllData(importPath)
	if err != nil {
		return model.AppConfig{}, err
	}
	cfg := backup.Config
	cfg.CatalogPath = filepath.Join(filepath.Dir(configPath), "catalog.yaml")
	if err := SaveCatalog(cfg.CatalogPath, catalog); err != nil {
		return model.AppConfig{}, fmt.Errorf("failed to install catalog: %w", err)
	}
	if err := SaveAppConfig(configPath, cfg); err != nil {
		return model.AppConfig{}, fmt.Errorf("failed to install config: %w", err)
	}
	return cfg, nil
}

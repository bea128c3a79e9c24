package project

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/piwi3910/PaintCalc/internal/model"
	"gopkg.in/yaml.v3"
)

// CatalogFile is the on-disk layout of a paint catalog. YAML and JSON files
// share the same structure.
type CatalogFile struct {
	Paints []model.PaintEntry `json:"paints" yaml:"paints"`
}

// LoadCatalog reads a paint catalog from a YAML or JSON file.
// An empty path selects the built-in paint range.
func LoadCatalog(path string) (model.Catalog, error) {
	if path == "" {
		return model.DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("failed to read catalog: %w", err)
	}
	catalog, err := ParseCatalog(data)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("catalog %s: %w", filepath.Base(path), err)
	}
	return catalog, nil
}

// ParseCatalog decodes catalog data. JSON is accepted as a subset of YAML.
func ParseCatalog(data []byte) (model.Catalog, error) {
	var file CatalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return model.Catalog{}, fmt.Errorf("catalog is empty")
		}
		return model.Catalog{}, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(file.Paints) == 0 {
		return model.Catalog{}, fmt.Errorf("catalog lists no paints")
	}
	return model.NewCatalog(file.Paints...)
}

// SaveCatalog writes the catalog as YAML, e.g. to seed an editable copy of
// the built-in range.
func SaveCatalog(path string, catalog model.Catalog) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(CatalogFile{Paints: catalog.Entries()})
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

package model

import (
	"fmt"
	"math"
	"strings"
)

// PaintEntry describes one purchasable paint.
type PaintEntry struct {
	Name             string  `json:"name" yaml:"name"`
	PricePerBucket   float64 `json:"price_per_bucket" yaml:"price_per_bucket"`     // currency units
	LitresPerBucket  float64 `json:"litres_per_bucket" yaml:"litres_per_bucket"`   // litres
	CoveragePerLitre float64 `json:"coverage_per_litre" yaml:"coverage_per_litre"` // m² per litre
}

// Validate checks that the entry has a name and strictly positive attributes.
func (p PaintEntry) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidPaint)
	}
	checks := []struct {
		field string
		value float64
	}{
		{"price per bucket", p.PricePerBucket},
		{"litres per bucket", p.LitresPerBucket},
		{"coverage per litre", p.CoveragePerLitre},
	}
	for _, c := range checks {
		if !(c.value > 0) || math.IsInf(c.value, 0) {
			return fmt.Errorf("%w: %s %s must be positive, got %g", ErrInvalidPaint, p.Name, c.field, c.value)
		}
	}
	return nil
}

// BucketCoverage returns the area one bucket covers with a single coat.
func (p PaintEntry) BucketCoverage() float64 {
	return p.LitresPerBucket * p.CoveragePerLitre
}

// Catalog is an immutable set of paints keyed by case-insensitive name.
// The zero value is an empty catalog.
type Catalog struct {
	entries []PaintEntry
	index   map[string]int
}

// NewCatalog validates the entries and builds a catalog preserving their order.
func NewCatalog(entries ...PaintEntry) (Catalog, error) {
	c := Catalog{
		entries: make([]PaintEntry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return Catalog{}, err
		}
		e.Name = strings.TrimSpace(e.Name)
		key := paintKey(e.Name)
		if _, dup := c.index[key]; dup {
			return Catalog{}, fmt.Errorf("%w: %q", ErrDuplicatePaint, e.Name)
		}
		c.index[key] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// DefaultCatalog returns the reference paint range.
func DefaultCatalog() Catalog {
	c, err := NewCatalog(DefaultPaints()...)
	if err != nil {
		panic(err) // the built-in range is always valid
	}
	return c
}

// DefaultPaints returns a copy of the reference paint range.
func DefaultPaints() []PaintEntry {
	return []PaintEntry{
		{Name: "Emerald", PricePerBucket: 24, LitresPerBucket: 2.5, CoveragePerLitre: 13},
		{Name: "Sapphire", PricePerBucket: 20, LitresPerBucket: 2.5, CoveragePerLitre: 13},
		{Name: "White", PricePerBucket: 45, LitresPerBucket: 2.5, CoveragePerLitre: 12},
		{Name: "Black", PricePerBucket: 20, LitresPerBucket: 2.5, CoveragePerLitre: 13},
		{Name: "Berry", PricePerBucket: 20, LitresPerBucket: 2.5, CoveragePerLitre: 13},
		{Name: "Cotton", PricePerBucket: 10, LitresPerBucket: 0.75, CoveragePerLitre: 16},
		{Name: "Pebble", PricePerBucket: 32, LitresPerBucket: 5, CoveragePerLitre: 13},
		{Name: "Ivory", PricePerBucket: 10, LitresPerBucket: 5, CoveragePerLitre: 13},
	}
}

// Lookup finds a paint by name. A miss is an error; there is no fallback paint.
func (c Catalog) Lookup(name string) (PaintEntry, error) {
	if i, ok := c.index[paintKey(name)]; ok {
		return c.entries[i], nil
	}
	return PaintEntry{}, fmt.Errorf("%w: %q", ErrUnknownPaint, name)
}

// Entries returns the paints in catalog order.
func (c Catalog) Entries() []PaintEntry {
	out := make([]PaintEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Names returns the paint names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of paints in the catalog.
func (c Catalog) Len() int {
	return len(c.entries)
}

func paintKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

package model

import (
	"errors"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if c.Len() != 8 {
		t.Fatalf("expected 8 paints, got %d", c.Len())
	}

	emerald, err := c.Lookup("Emerald")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if emerald.PricePerBucket != 24 || emerald.LitresPerBucket != 2.5 || emerald.CoveragePerLitre != 13 {
		t.Errorf("unexpected Emerald entry: %+v", emerald)
	}

	cotton, err := c.Lookup("cotton")
	if err != nil {
		t.Fatalf("lookup should be case-insensitive: %v", err)
	}
	if cotton.LitresPerBucket != 0.75 {
		t.Errorf("expected Cotton 0.75 L buckets, got %f", cotton.LitresPerBucket)
	}

	names := c.Names()
	if names[0] != "Emerald" || names[7] != "Ivory" {
		t.Errorf("catalog order not preserved: %v", names)
	}
}

func TestCatalogLookupUnknownPaint(t *testing.T) {
	c := DefaultCatalog()
	_, err := c.Lookup("Red")
	if !errors.Is(err, ErrUnknownPaint) {
		t.Fatalf("expected ErrUnknownPaint, got %v", err)
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	_, err := NewCatalog(
		PaintEntry{Name: "Red", PricePerBucket: 1, LitresPerBucket: 1.25, CoveragePerLitre: 0.75},
		PaintEntry{Name: " red ", PricePerBucket: 2, LitresPerBucket: 1, CoveragePerLitre: 1},
	)
	if !errors.Is(err, ErrDuplicatePaint) {
		t.Fatalf("expected ErrDuplicatePaint, got %v", err)
	}
}

func TestNewCatalogRejectsInvalidEntries(t *testing.T) {
	bad := []PaintEntry{
		{Name: "", PricePerBucket: 1, LitresPerBucket: 1, CoveragePerLitre: 1},
		{Name: "Free", PricePerBucket: 0, LitresPerBucket: 1, CoveragePerLitre: 1},
		{Name: "Empty", PricePerBucket: 1, LitresPerBucket: -1, CoveragePerLitre: 1},
		{Name: "Thin", PricePerBucket: 1, LitresPerBucket: 1, CoveragePerLitre: 0},
	}
	for _, p := range bad {
		if _, err := NewCatalog(p); !errors.Is(err, ErrInvalidPaint) {
			t.Errorf("expected ErrInvalidPaint for %+v, got %v", p, err)
		}
	}
}

func TestCatalogEntriesIsCopy(t *testing.T) {
	c := DefaultCatalog()
	entries := c.Entries()
	entries[0].PricePerBucket = 999

	emerald, _ := c.Lookup("Emerald")
	if emerald.PricePerBucket != 24 {
		t.Errorf("catalog was mutated through Entries(): %f", emerald.PricePerBucket)
	}
}

func TestZeroCatalog(t *testing.T) {
	var c Catalog
	if c.Len() != 0 {
		t.Errorf("expected empty catalog")
	}
	if _, err := c.Lookup("Emerald"); !errors.Is(err, ErrUnknownPaint) {
		t.Errorf("expected ErrUnknownPaint from empty catalog, got %v", err)
	}
}

func TestBucketCoverage(t *testing.T) {
	p := PaintEntry{Name: "Pebble", PricePerBucket: 32, LitresPerBucket: 5, CoveragePerLitre: 13}
	if p.BucketCoverage() != 65 {
		t.Errorf("expected 65 m² per bucket, got %f", p.BucketCoverage())
	}
}

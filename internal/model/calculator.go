package model

import (
	"fmt"
	"math"
)

// CoverageEstimate holds the result of a paint coverage calculation.
type CoverageEstimate struct {
	NetArea         float64 `json:"net_area"`         // Paintable area (m²)
	Coats           int     `json:"coats"`            // Coats applied
	LitresNeeded    float64 `json:"litres_needed"`    // Exact litres for all coats
	BucketsExact    float64 `json:"buckets_exact"`    // Exact fractional number of buckets
	Buckets         int     `json:"buckets"`          // Whole buckets to buy (ceiling of exact)
	LitresPurchased float64 `json:"litres_purchased"` // Buckets x litres per bucket
	Cost            float64 `json:"cost"`             // Buckets x price per bucket
	PricePerBucket  float64 `json:"price_per_bucket"` // Price used for the estimate
}

// SurplusLitres returns the paint left over once the bought buckets are used.
func (e CoverageEstimate) SurplusLitres() float64 {
	return math.Max(0, e.LitresPurchased-e.LitresNeeded)
}

// bucketTolerance absorbs floating-point noise so that an area sitting exactly
// on a bucket boundary does not round up to an extra bucket.
const bucketTolerance = 1e-9

// EstimateCoverage computes how many buckets of paint cover netArea with the
// given number of coats, and what they cost. Partial buckets cannot be bought,
// so the bucket count always rounds up.
func EstimateCoverage(netArea float64, coats int, paint PaintEntry) (CoverageEstimate, error) {
	if coats < 1 {
		return CoverageEstimate{}, fmt.Errorf("%w: need at least 1 coat, got %d", ErrInvalidCoatCount, coats)
	}
	if math.IsNaN(netArea) || math.IsInf(netArea, 0) || netArea < 0 {
		return CoverageEstimate{}, fmt.Errorf("%w: net area must be a non-negative number, got %g", ErrInvalidDimensions, netArea)
	}
	if err := paint.Validate(); err != nil {
		return CoverageEstimate{}, err
	}

	litres := netArea * float64(coats) / paint.CoveragePerLitre
	exact := litres / paint.LitresPerBucket
	buckets := 0
	if exact > bucketTolerance {
		buckets = int(math.Ceil(exact - bucketTolerance))
	}

	return CoverageEstimate{
		NetArea:         netArea,
		Coats:           coats,
		LitresNeeded:    litres,
		BucketsExact:    exact,
		Buckets:         buckets,
		LitresPurchased: float64(buckets) * paint.LitresPerBucket,
		Cost:            float64(buckets) * paint.PricePerBucket,
		PricePerBucket:  paint.PricePerBucket,
	}, nil
}

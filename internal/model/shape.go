package model

import (
	"fmt"
	"math"
	"strings"
)

// ShapeKind identifies the geometric shape of a wall or obstacle.
type ShapeKind string

const (
	ShapeSquare        ShapeKind = "square"
	ShapeRectangle     ShapeKind = "rectangle"
	ShapeParallelogram ShapeKind = "parallelogram"
	ShapeTrapezoid     ShapeKind = "trapezoid"
	ShapeTriangle      ShapeKind = "triangle"
	ShapeEllipse       ShapeKind = "ellipse"
	ShapeCircle        ShapeKind = "circle"
	ShapeSemicircle    ShapeKind = "semicircle"
)

// ShapeKinds lists every supported shape in display order.
var ShapeKinds = []ShapeKind{
	ShapeSquare,
	ShapeRectangle,
	ShapeParallelogram,
	ShapeTrapezoid,
	ShapeTriangle,
	ShapeEllipse,
	ShapeCircle,
	ShapeSemicircle,
}

// shapeParams holds the ordered dimension names each shape requires.
var shapeParams = map[ShapeKind][]string{
	ShapeSquare:        {"side"},
	ShapeRectangle:     {"base", "height"},
	ShapeParallelogram: {"base", "height"},
	ShapeTrapezoid:     {"base", "height", "top"},
	ShapeTriangle:      {"base", "height"},
	ShapeEllipse:       {"horizontal_radius", "vertical_radius"},
	ShapeCircle:        {"radius"},
	ShapeSemicircle:    {"radius"},
}

// ParseShapeKind converts a shape name such as "Rectangle" or " circle " into
// a ShapeKind.
func ParseShapeKind(name string) (ShapeKind, error) {
	kind := ShapeKind(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := shapeParams[kind]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	return kind, nil
}

// Valid reports whether k is one of the supported shapes.
func (k ShapeKind) Valid() bool {
	_, ok := shapeParams[k]
	return ok
}

// Params returns the ordered dimension names required by the shape.
func (k ShapeKind) Params() []string {
	params := shapeParams[k]
	out := make([]string, len(params))
	copy(out, params)
	return out
}

// DisplayName returns the capitalised shape name, e.g. "Semicircle".
func (k ShapeKind) DisplayName() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

func (k ShapeKind) String() string {
	return string(k)
}

// Area computes the planar area of a shape from its ordered dimensions.
//
// Two formulas truncate on purpose, matching the quantities the calculator
// has always quoted: a trapezoid floors the half-sum of its parallel sides
// before multiplying by the height, and a semicircle floors its half-disc
// area. All other shapes use exact real arithmetic.
func Area(kind ShapeKind, dims []float64) (float64, error) {
	if err := checkDimensions(kind, dims); err != nil {
		return 0, err
	}

	switch kind {
	case ShapeSquare:
		return dims[0] * dims[0], nil
	case ShapeRectangle, ShapeParallelogram:
		return dims[0] * dims[1], nil
	case ShapeTrapezoid:
		base, height, top := dims[0], dims[1], dims[2]
		return math.Floor((base+top)/2) * height, nil
	case ShapeTriangle:
		return 0.5 * (dims[0] * dims[1]), nil
	case ShapeEllipse:
		return math.Pi * dims[0] * dims[1], nil
	case ShapeCircle:
		return math.Pi * dims[0] * dims[0], nil
	case ShapeSemicircle:
		return math.Floor(math.Pi * dims[0] * dims[0] / 2), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, string(kind))
}

// checkDimensions verifies the dimension count and that every value is a
// finite, non-negative number.
func checkDimensions(kind ShapeKind, dims []float64) error {
	params, ok := shapeParams[kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownShape, string(kind))
	}
	if len(dims) != len(params) {
		return fmt.Errorf("%w: %s needs %d values (%s), got %d",
			ErrInvalidDimensions, kind, len(params), strings.Join(params, ", "), len(dims))
	}
	for i, d := range dims {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("%w: %s %s is not a finite number", ErrInvalidDimensions, kind, params[i])
		}
		if d < 0 {
			return fmt.Errorf("%w: %s %s must not be negative, got %g", ErrInvalidDimensions, kind, params[i], d)
		}
	}
	return nil
}

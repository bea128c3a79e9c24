package model

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Surface is a committed shape with its dimensions and cached area. Walls and
// obstacles are both surfaces; obstacles carry nothing else.
type Surface struct {
	kind ShapeKind
	dims []float64
	area float64
}

// NewSurface commits a shape and its ordered dimensions, computing the area
// once. Zero dimensions are accepted and give a degenerate surface.
func NewSurface(kind ShapeKind, dims ...float64) (Surface, error) {
	area, err := Area(kind, dims)
	if err != nil {
		return Surface{}, err
	}
	stored := make([]float64, len(dims))
	copy(stored, dims)
	return Surface{kind: kind, dims: stored, area: area}, nil
}

// NewObstacle commits a door, window or other unpainted element. Obstacles
// must have extent, so zero dimensions are rejected.
func NewObstacle(kind ShapeKind, dims ...float64) (Surface, error) {
	s, err := NewSurface(kind, dims...)
	if err != nil {
		return Surface{}, err
	}
	if err := s.requireExtent("obstacle"); err != nil {
		return Surface{}, err
	}
	return s, nil
}

// Kind returns the surface shape.
func (s Surface) Kind() ShapeKind { return s.kind }

// Dimensions returns a copy of the ordered dimension values.
func (s Surface) Dimensions() []float64 {
	out := make([]float64, len(s.dims))
	copy(out, s.dims)
	return out
}

// Area returns the area computed when the surface was committed.
func (s Surface) Area() float64 { return s.area }

// Describe renders the shape and dimensions, e.g. "Rectangle 10 x 3".
func (s Surface) Describe() string {
	out := s.kind.DisplayName()
	for i, d := range s.dims {
		if i == 0 {
			out += fmt.Sprintf(" %g", d)
		} else {
			out += fmt.Sprintf(" x %g", d)
		}
	}
	return out
}

func (s Surface) requireExtent(role string) error {
	params := shapeParams[s.kind]
	for i, d := range s.dims {
		if d == 0 {
			return fmt.Errorf("%w: %s %s %s must be greater than zero", ErrInvalidDimensions, role, s.kind, params[i])
		}
	}
	return nil
}

// Wall is a paintable surface with its paint, coat count and obstacles.
type Wall struct {
	id        string
	label     string
	surface   Surface
	paint     PaintEntry
	coats     int
	obstacles []Surface
}

// NewWall commits a wall. The paint must be a valid entry (normally taken
// from a Catalog) and at least one coat is required.
func NewWall(label string, surface Surface, paint PaintEntry, coats int, obstacles ...Surface) (*Wall, error) {
	if !surface.kind.Valid() {
		return nil, fmt.Errorf("%w: wall has no committed shape", ErrInvalidDimensions)
	}
	if err := surface.requireExtent("wall"); err != nil {
		return nil, err
	}
	if err := paint.Validate(); err != nil {
		return nil, err
	}
	if coats < 1 {
		return nil, fmt.Errorf("%w: need at least 1 coat, got %d", ErrInvalidCoatCount, coats)
	}
	obs := make([]Surface, len(obstacles))
	copy(obs, obstacles)
	return &Wall{
		id:        uuid.New().String()[:8],
		label:     label,
		surface:   surface,
		paint:     paint,
		coats:     coats,
		obstacles: obs,
	}, nil
}

func (w *Wall) ID() string         { return w.id }
func (w *Wall) Label() string      { return w.label }
func (w *Wall) Surface() Surface   { return w.surface }
func (w *Wall) Area() float64      { return w.surface.area }
func (w *Wall) Paint() PaintEntry  { return w.paint }
func (w *Wall) Coats() int         { return w.coats }
func (w *Wall) ObstacleCount() int { return len(w.obstacles) }

// Obstacles returns a copy of the wall's obstacles.
func (w *Wall) Obstacles() []Surface {
	out := make([]Surface, len(w.obstacles))
	copy(out, w.obstacles)
	return out
}

// ObstacleArea returns the summed area of every obstacle on the wall.
func (w *Wall) ObstacleArea() float64 {
	var total float64
	for _, o := range w.obstacles {
		total += o.area
	}
	return total
}

// NetArea returns the paintable area: the wall area less its obstacles,
// never below zero.
func (w *Wall) NetArea() float64 {
	return math.Max(0, w.surface.area-w.ObstacleArea())
}

// Overflow reports ErrNegativeNetArea when the obstacles are larger than the
// wall. The wall is still usable; its net area is clamped to zero.
func (w *Wall) Overflow() error {
	obstacles := w.ObstacleArea()
	if obstacles > w.surface.area {
		return fmt.Errorf("%w: obstacles cover %.2f m² of a %.2f m² wall", ErrNegativeNetArea, obstacles, w.surface.area)
	}
	return nil
}

// Estimate runs the coverage calculation for the wall's net area.
func (w *Wall) Estimate() (CoverageEstimate, error) {
	return EstimateCoverage(w.NetArea(), w.coats, w.paint)
}

// Buckets returns the whole buckets needed for the wall. It reports 0 when
// Estimate fails, which only happens for a Wall not built with NewWall; call
// Estimate directly to see the error.
func (w *Wall) Buckets() int {
	est, err := w.Estimate()
	if err != nil {
		return 0
	}
	return est.Buckets
}

// Cost returns the price of the wall's buckets, or 0 when Estimate fails.
func (w *Wall) Cost() float64 {
	est, err := w.Estimate()
	if err != nil {
		return 0
	}
	return est.Cost
}

// Litres returns the exact litres the wall needs before rounding to buckets,
// or 0 when Estimate fails.
func (w *Wall) Litres() float64 {
	est, err := w.Estimate()
	if err != nil {
		return 0
	}
	return est.LitresNeeded
}

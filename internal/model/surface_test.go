package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emerald(t *testing.T) PaintEntry {
	t.Helper()
	p, err := DefaultCatalog().Lookup("Emerald")
	require.NoError(t, err)
	return p
}

func cotton(t *testing.T) PaintEntry {
	t.Helper()
	p, err := DefaultCatalog().Lookup("Cotton")
	require.NoError(t, err)
	return p
}

func mustSurface(t *testing.T, kind ShapeKind, dims ...float64) Surface {
	t.Helper()
	s, err := NewSurface(kind, dims...)
	require.NoError(t, err)
	return s
}

func mustObstacle(t *testing.T, kind ShapeKind, dims ...float64) Surface {
	t.Helper()
	s, err := NewObstacle(kind, dims...)
	require.NoError(t, err)
	return s
}

func mustWall(t *testing.T, s Surface, paint PaintEntry, coats int, obstacles ...Surface) *Wall {
	t.Helper()
	w, err := NewWall("", s, paint, coats, obstacles...)
	require.NoError(t, err)
	return w
}

func TestNewSurfaceCachesArea(t *testing.T) {
	dims := []float64{10, 3}
	s := mustSurface(t, ShapeRectangle, dims...)
	assert.Equal(t, 30.0, s.Area())

	// Changing the caller's slice does not affect the committed surface.
	dims[0] = 100
	assert.Equal(t, []float64{10, 3}, s.Dimensions())
	assert.Equal(t, 30.0, s.Area())
}

func TestNewSurfaceAllowsZero(t *testing.T) {
	s := mustSurface(t, ShapeCircle, 0)
	assert.Equal(t, 0.0, s.Area())
}

func TestNewObstacleRejectsZero(t *testing.T) {
	_, err := NewObstacle(ShapeRectangle, 0.9, 0)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestNewSurfaceRejectsBadDimensions(t *testing.T) {
	_, err := NewSurface(ShapeEllipse, 1)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestSurfaceDescribe(t *testing.T) {
	assert.Equal(t, "Rectangle 10 x 3", mustSurface(t, ShapeRectangle, 10, 3).Describe())
	assert.Equal(t, "Circle 1.5", mustSurface(t, ShapeCircle, 1.5).Describe())
}

func TestNewWallValidation(t *testing.T) {
	s := mustSurface(t, ShapeSquare, 4)

	_, err := NewWall("", s, emerald(t), 0)
	assert.ErrorIs(t, err, ErrInvalidCoatCount)

	_, err = NewWall("", s, PaintEntry{Name: "Nothing"}, 1)
	assert.ErrorIs(t, err, ErrInvalidPaint)

	_, err = NewWall("", Surface{}, emerald(t), 1)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewWall("", mustSurface(t, ShapeSquare, 0), emerald(t), 1)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestWallNetArea(t *testing.T) {
	door := mustObstacle(t, ShapeRectangle, 0.9, 2)
	window := mustObstacle(t, ShapeSquare, 1)
	w := mustWall(t, mustSurface(t, ShapeRectangle, 5, 2.5), emerald(t), 1, door, window)

	assert.Equal(t, 12.5, w.Area())
	assert.InDelta(t, 2.8, w.ObstacleArea(), 1e-9)
	assert.InDelta(t, 9.7, w.NetArea(), 1e-9)
	assert.Equal(t, 2, w.ObstacleCount())
	assert.NoError(t, w.Overflow())
	assert.Len(t, w.ID(), 8)
}

func TestWallNetAreaClampsToZero(t *testing.T) {
	big := mustObstacle(t, ShapeRectangle, 3, 3)
	w := mustWall(t, mustSurface(t, ShapeSquare, 2), emerald(t), 2, big, big)

	assert.Equal(t, 0.0, w.NetArea())
	assert.ErrorIs(t, w.Overflow(), ErrNegativeNetArea)
	assert.Equal(t, 0, w.Buckets())
	assert.Equal(t, 0.0, w.Cost())
}

func TestWallObstaclesIsCopy(t *testing.T) {
	o := mustObstacle(t, ShapeSquare, 1)
	w := mustWall(t, mustSurface(t, ShapeSquare, 4), emerald(t), 1, o)

	obs := w.Obstacles()
	obs[0] = mustObstacle(t, ShapeSquare, 3)
	assert.Equal(t, 15.0, w.NetArea())
}

func TestZeroWallNeedsNoPaint(t *testing.T) {
	var w Wall
	assert.Equal(t, 0, w.Buckets())
	assert.Equal(t, 0.0, w.Cost())
	_, err := w.Estimate()
	assert.Error(t, err)
}

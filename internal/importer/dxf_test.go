package importer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/PaintCalc/internal/model"
)

func saveDrawing(t *testing.T, name string, draw func(d *drawing.Drawing)) string {
	t.Helper()
	d := dxf.NewDrawing()
	draw(d)
	path := filepath.Join(t.TempDir(), name)
	if err := d.SaveAs(path); err != nil {
		t.Fatalf("failed to save DXF file: %v", err)
	}
	return path
}

func TestImportDXFWall_RectangleWithWindowAndPorthole(t *testing.T) {
	path := saveDrawing(t, "north.dxf", func(d *drawing.Drawing) {
		d.Circle(1, 1.5, 0, 0.3)
		d.LwPolyline(true, []float64{0, 0}, []float64{5, 0}, []float64{5, 3}, []float64{0, 3})
		d.LwPolyline(true, []float64{3, 1}, []float64{4, 1}, []float64{4, 2}, []float64{3, 2})
	})

	result := ImportDXFWall(path, "Cotton", 2)
	require.Empty(t, result.Errors)

	wall := result.Wall
	assert.Equal(t, "north", wall.Label)
	assert.Equal(t, "rectangle", wall.Shape)
	assert.InDelta(t, 5, wall.Dimensions[0], 1e-6)
	assert.InDelta(t, 3, wall.Dimensions[1], 1e-6)
	assert.Equal(t, "Cotton", wall.Paint)
	assert.Equal(t, 2, wall.Coats)

	require.Len(t, wall.Obstacles, 2)
	assert.Equal(t, "square", wall.Obstacles[0].Shape)
	assert.Equal(t, "circle", wall.Obstacles[1].Shape)
}

func TestImportDXFWall_LineChainGable(t *testing.T) {
	path := saveDrawing(t, "gable.dxf", func(d *drawing.Drawing) {
		// Triangle drawn with the base split into two LINEs.
		d.Line(0, 0, 0, 2, 0, 0)
		d.Line(2, 0, 0, 4, 0, 0)
		d.Line(4, 0, 0, 2, 3, 0)
		d.Line(2, 3, 0, 0, 0, 0)
	})

	result := ImportDXFWall(path, "Emerald", 1)
	require.Empty(t, result.Errors)
	assert.Equal(t, "triangle", result.Wall.Shape)
	assert.InDelta(t, 4, result.Wall.Dimensions[0], 1e-6)
	assert.InDelta(t, 3, result.Wall.Dimensions[1], 1e-6)
	assert.Empty(t, result.Wall.Obstacles)
}

func TestImportDXFWall_BuildsWall(t *testing.T) {
	path := saveDrawing(t, "east.dxf", func(d *drawing.Drawing) {
		d.LwPolyline(true, []float64{0, 0}, []float64{4, 0}, []float64{4, 2}, []float64{0, 2})
	})

	result := ImportDXFWall(path, "cotton", 1)
	require.Empty(t, result.Errors)

	wall, err := model.BuildWall(result.Wall, model.DefaultCatalog())
	require.NoError(t, err)
	assert.InDelta(t, 8.0, wall.NetArea(), 1e-6)
}

func TestImportDXFWall_Empty(t *testing.T) {
	path := saveDrawing(t, "blank.dxf", func(d *drawing.Drawing) {})
	result := ImportDXFWall(path, "Cotton", 1)
	assert.NotEmpty(t, result.Errors)
}

func TestImportDXFWall_FileNotFound(t *testing.T) {
	result := ImportDXFWall(filepath.Join(t.TempDir(), "missing.dxf"), "Cotton", 1)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Cannot open DXF file")
}

func TestClassifyPolygon(t *testing.T) {
	tests := []struct {
		name  string
		poly  polygon
		shape string
		dims  []float64
	}{
		{"square", polygon{{0, 0}, {2, 0}, {2, 2}, {0, 2}}, "square", []float64{2}},
		{"rectangle", polygon{{0, 0}, {4, 0}, {4, 2}, {0, 2}}, "rectangle", []float64{4, 2}},
		{"parallelogram", polygon{{0, 0}, {4, 0}, {5, 2}, {1, 2}}, "parallelogram", []float64{4, 2}},
		{"trapezoid", polygon{{0, 0}, {6, 0}, {5, 2}, {1, 2}}, "trapezoid", []float64{6, 2, 4}},
		{"triangle", polygon{{0, 0}, {4, 0}, {1, 3}}, "triangle", []float64{4, 3}},
		{"triangle rotated", polygon{{1, 3}, {0, 0}, {4, 0}}, "triangle", []float64{4, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := classifyPolygon(tt.poly)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, spec.Shape)
			assert.InDeltaSlice(t, tt.dims, spec.Dimensions, 1e-9)
		})
	}
}

func TestClassifyPolygon_Unsupported(t *testing.T) {
	_, err := classifyPolygon(polygon{{0, 0}, {1, 0}, {2, 1}, {1, 2}, {0, 1}})
	assert.Error(t, err)

	_, err = classifyPolygon(polygon{{0, 0}, {4, 1}, {1, 3}})
	assert.Error(t, err, "triangle without a horizontal edge")
}

func TestClassifyLwPolyline_Semicircle(t *testing.T) {
	lw := &entity.LwPolyline{
		Vertices: [][]float64{{0, 0}, {4, 0}},
		Bulges:   []float64{0, 1},
	}
	spec, err := classifyLwPolyline(lw)
	require.NoError(t, err)
	assert.Equal(t, "semicircle", spec.Shape)
	assert.Equal(t, []float64{2}, spec.Dimensions)
}

func TestMergeCollinear(t *testing.T) {
	got := mergeCollinear(polygon{{0, 0}, {2, 0}, {4, 0}, {4, 2}, {0, 2}})
	assert.Equal(t, polygon{{0, 0}, {4, 0}, {4, 2}, {0, 2}}, got)
}

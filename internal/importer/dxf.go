package importer

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/PaintCalc/internal/model"
)

// dxfTolerance is the distance under which two coordinates are treated as equal.
const dxfTolerance = 0.01

// point is a 2D drawing coordinate.
type point struct {
	X, Y float64
}

// polygon is a closed outline without a repeated closing vertex.
type polygon []point

// segment represents a line segment between two 2D points, used for
// chaining disconnected LINE entities into closed outlines.
type segment struct {
	start point
	end   point
}

// DXFResult holds a wall read from an elevation drawing.
type DXFResult struct {
	Wall     model.WallSpec
	Errors   []string
	Warnings []string
}

// shapeOnDrawing is a recognised closed shape and its area.
type shapeOnDrawing struct {
	spec model.SurfaceSpec
	area float64
}

// ImportDXFWall reads a wall elevation from a DXF file. Every recognised
// closed shape (CIRCLE, LWPOLYLINE, or chain of LINEs) becomes a surface; the
// largest is the wall and the others are its obstacles. The wall is labelled
// after the file name and painted with the given paint and coat count.
func ImportDXFWall(path, paint string, coats int) DXFResult {
	result := DXFResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var shapes []shapeOnDrawing
	var segments []segment

	add := func(spec model.SurfaceSpec, err error) {
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Skipped shape: %v", err))
			return
		}
		area, err := model.Area(model.ShapeKind(spec.Shape), spec.Dimensions)
		if err != nil || area <= 0 {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Skipped degenerate %s", spec.Shape))
			return
		}
		shapes = append(shapes, shapeOnDrawing{spec: spec, area: area})
	}

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.Circle:
			add(model.SurfaceSpec{Shape: string(model.ShapeCircle), Dimensions: []float64{e.Radius}}, nil)

		case *entity.LwPolyline:
			add(classifyLwPolyline(e))

		case *entity.Line:
			segments = append(segments, segment{
				start: point{X: e.Start[0], Y: e.Start[1]},
				end:   point{X: e.End[0], Y: e.End[1]},
			})

		default:
			// Unsupported entity types are silently skipped
		}
	}

	for _, p := range chainSegments(segments, dxfTolerance) {
		add(classifyPolygon(p))
	}

	if len(shapes) == 0 {
		result.Errors = append(result.Errors, "No recognisable shapes found in DXF file")
		return result
	}

	sort.SliceStable(shapes, func(i, j int) bool {
		return shapes[i].area > shapes[j].area
	})

	base := filepath.Base(path)
	result.Wall = model.WallSpec{
		Label:       strings.TrimSuffix(base, filepath.Ext(base)),
		SurfaceSpec: shapes[0].spec,
		Paint:       paint,
		Coats:       coats,
	}
	for _, s := range shapes[1:] {
		result.Wall.Obstacles = append(result.Wall.Obstacles, s.spec)
	}
	return result
}

// classifyLwPolyline recognises a polyline outline. Two vertices joined by
// a half-circle bulge form a semicircle; anything else is treated as a
// straight-edged polygon.
func classifyLwPolyline(lw *entity.LwPolyline) (model.SurfaceSpec, error) {
	p := make(polygon, 0, len(lw.Vertices))
	for i, v := range lw.Vertices {
		if i < len(lw.Bulges) && math.Abs(lw.Bulges[i]) > 1e-9 {
			if len(lw.Vertices) == 2 && math.Abs(math.Abs(lw.Bulges[i])-1) < 1e-6 {
				a, b := lw.Vertices[0], lw.Vertices[1]
				radius := math.Hypot(b[0]-a[0], b[1]-a[1]) / 2
				return model.SurfaceSpec{Shape: string(model.ShapeSemicircle), Dimensions: []float64{radius}}, nil
			}
			return model.SurfaceSpec{}, fmt.Errorf("curved LWPOLYLINE is not a supported shape")
		}
		p = append(p, point{X: v[0], Y: v[1]})
	}
	return classifyPolygon(dedupe(p))
}

// classifyPolygon maps a straight-edged outline onto a shape kind. Triangles
// and quadrilaterals must sit on a horizontal base.
func classifyPolygon(p polygon) (model.SurfaceSpec, error) {
	switch len(p) {
	case 3:
		for i := range p {
			a, b, c := p[i], p[(i+1)%3], p[(i+2)%3]
			if near(a.Y, b.Y) {
				return model.SurfaceSpec{
					Shape:      string(model.ShapeTriangle),
					Dimensions: []float64{math.Abs(b.X - a.X), math.Abs(c.Y - a.Y)},
				}, nil
			}
		}
		return model.SurfaceSpec{}, fmt.Errorf("triangle has no horizontal edge")

	case 4:
		return classifyQuad(p)

	default:
		return model.SurfaceSpec{}, fmt.Errorf("outline with %d vertices is not a supported shape", len(p))
	}
}

// classifyQuad recognises squares, rectangles, parallelograms and
// trapezoids with horizontal top and bottom edges.
func classifyQuad(p polygon) (model.SurfaceSpec, error) {
	var horizontal []int
	for i := range p {
		if near(p[i].Y, p[(i+1)%4].Y) {
			horizontal = append(horizontal, i)
		}
	}
	if len(horizontal) != 2 {
		return model.SurfaceSpec{}, fmt.Errorf("quadrilateral needs horizontal top and bottom edges")
	}

	edge := func(i int) (length, y float64) {
		a, b := p[i], p[(i+1)%4]
		return math.Abs(b.X - a.X), a.Y
	}
	l1, y1 := edge(horizontal[0])
	l2, y2 := edge(horizontal[1])
	bottom, top := l1, l2
	if y2 < y1 {
		bottom, top = l2, l1
	}
	height := math.Abs(y2 - y1)

	if !near(bottom, top) {
		return model.SurfaceSpec{
			Shape:      string(model.ShapeTrapezoid),
			Dimensions: []float64{bottom, height, top},
		}, nil
	}

	vertical := true
	for i := range p {
		if !near(p[i].Y, p[(i+1)%4].Y) && !near(p[i].X, p[(i+1)%4].X) {
			vertical = false
		}
	}
	switch {
	case !vertical:
		return model.SurfaceSpec{Shape: string(model.ShapeParallelogram), Dimensions: []float64{bottom, height}}, nil
	case near(bottom, height):
		return model.SurfaceSpec{Shape: string(model.ShapeSquare), Dimensions: []float64{bottom}}, nil
	default:
		return model.SurfaceSpec{Shape: string(model.ShapeRectangle), Dimensions: []float64{bottom, height}}, nil
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= dxfTolerance
}

// dedupe drops consecutive repeated vertices, including a closing vertex
// equal to the first.
func dedupe(p polygon) polygon {
	out := make(polygon, 0, len(p))
	for _, v := range p {
		if len(out) > 0 && pointsClose(out[len(out)-1], v, dxfTolerance) {
			continue
		}
		out = append(out, v)
	}
	if len(out) > 1 && pointsClose(out[0], out[len(out)-1], dxfTolerance) {
		out = out[:len(out)-1]
	}
	return out
}

// chainSegments connects individual segments into closed outlines.
// tolerance is the maximum distance between endpoints to consider them connected.
// Open chains are discarded.
func chainSegments(segs []segment, tolerance float64) []polygon {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var outlines []polygon

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := polygon{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		if len(chain) >= 4 && pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			outlines = append(outlines, mergeCollinear(chain[:len(chain)-1]))
		}
	}

	return outlines
}

// mergeCollinear removes vertices lying on a straight run, so a wall edge
// drawn as several LINEs still reads as one edge.
func mergeCollinear(p polygon) polygon {
	if len(p) < 4 {
		return p
	}
	out := make(polygon, 0, len(p))
	n := len(p)
	for i := range p {
		prev, cur, next := p[(i+n-1)%n], p[i], p[(i+1)%n]
		cross := (cur.X-prev.X)*(next.Y-cur.Y) - (cur.Y-prev.Y)*(next.X-cur.X)
		if math.Abs(cross) > dxfTolerance*dxfTolerance {
			out = append(out, cur)
		}
	}
	return out
}

// pointsClose checks whether two points are within the given tolerance.
func pointsClose(a, b point, tolerance float64) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) <= tolerance
}

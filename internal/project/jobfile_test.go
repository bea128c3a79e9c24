package project

import (
	"path/filepath"
	"testing"

	"github.com/piwi3910/PaintCalc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobYAML = `name: Flat 3
rooms:
  - name: Kitchen
    walls:
      - shape: square
        dimensions: [4]
        paint: Emerald
        coats: 1
      - label: Window wall
        shape: rectangle
        dimensions: [10, 3]
        paint: Cotton
        obstacles:
          - shape: square
            dimensions: [2]
  - name: Kitchen
    walls:
      - shape: trapezoid
        dimensions: [5, 2, 4]
        paint: ivory
        coats: 2
`

func TestParseJobYAML(t *testing.T) {
	spec, err := ParseJob([]byte(jobYAML), 1)
	require.NoError(t, err)

	assert.Equal(t, "Flat 3", spec.Name)
	require.Len(t, spec.Rooms, 2)
	require.Len(t, spec.Rooms[0].Walls, 2)

	w := spec.Rooms[0].Walls[1]
	assert.Equal(t, "Window wall", w.Label)
	assert.Equal(t, "rectangle", w.Shape)
	assert.Equal(t, []float64{10, 3}, w.Dimensions)
	assert.Equal(t, 1, w.Coats, "missing coats take the default")
	require.Len(t, w.Obstacles, 1)
	assert.Equal(t, []float64{2}, w.Obstacles[0].Dimensions)

	job, err := model.BuildJob(spec, model.DefaultCatalog())
	require.NoError(t, err)
	assert.Equal(t, 64.0, job.TotalCost())
}

func TestParseJobJSON(t *testing.T) {
	data := `{"rooms": [{"name": "Hall", "walls": [{"shape": "circle", "dimensions": [1.5], "paint": "White", "coats": 3}]}]}`
	spec, err := ParseJob([]byte(data), 2)
	require.NoError(t, err)

	require.Len(t, spec.Rooms, 1)
	assert.Equal(t, "circle", spec.Rooms[0].Walls[0].Shape)
	assert.Equal(t, 3, spec.Rooms[0].Walls[0].Coats)
}

func TestParseJobDefaultCoats(t *testing.T) {
	data := `rooms: [{name: Hall, walls: [{shape: square, dimensions: [3], paint: Black}]}]`
	spec, err := ParseJob([]byte(data), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, spec.Rooms[0].Walls[0].Coats)
}

func TestParseJobSchemaViolations(t *testing.T) {
	tests := map[string]string{
		"empty":             ``,
		"no rooms":          `rooms: []`,
		"room without wall": `rooms: [{name: Hall, walls: []}]`,
		"negative":          `rooms: [{name: Hall, walls: [{shape: square, dimensions: [-3], paint: Black}]}]`,
		"zero coats":        `rooms: [{name: Hall, walls: [{shape: square, dimensions: [3], paint: Black, coats: 0}]}]`,
		"fractional coats":  `rooms: [{name: Hall, walls: [{shape: square, dimensions: [3], paint: Black, coats: 1.5}]}]`,
		"missing paint":     `rooms: [{name: Hall, walls: [{shape: square, dimensions: [3]}]}]`,
		"unknown field":     `rooms: [{name: Hall, colour: red, walls: [{shape: square, dimensions: [3], paint: Black}]}]`,
		"too many dims":     `rooms: [{name: Hall, walls: [{shape: square, dimensions: [1, 2, 3, 4], paint: Black}]}]`,
		"not a mapping":     `- just a list`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseJob([]byte(data), 1)
			assert.Error(t, err)
		})
	}
}

func TestLoadJobFile(t *testing.T) {
	spec, err := LoadJobFile(writeFile(t, "job.yaml", jobYAML), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, spec.WallCount())

	_, err = LoadJobFile(filepath.Join(t.TempDir(), "missing.yaml"), 1)
	assert.Error(t, err)
}

func TestSaveJobFileRoundTrip(t *testing.T) {
	spec, err := ParseJob([]byte(jobYAML), 1)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, SaveJobFile(path, spec))

	loaded, err := LoadJobFile(path, 1)
	require.NoError(t, err)
	assert.Equal(t, spec, loaded)
}

package input

import (
	"errors"
	"testing"

	"github.com/piwi3910/PaintCalc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messageOf(t *testing.T, err error) string {
	t.Helper()
	var ie *Error
	require.True(t, errors.As(err, &ie), "expected *Error, got %v", err)
	return ie.Message
}

func TestParseIntPositive(t *testing.T) {
	for _, s := range []string{"1", "2", "10", "20", "250", "1050", " 7 "} {
		_, err := ParseInt(s, true)
		assert.NoError(t, err, s)
		_, err = ParseInt(s, false)
		assert.NoError(t, err, s)
	}
}

func TestParseIntRejected(t *testing.T) {
	for _, s := range []string{"-1", "-250", "1.0", "10.21", "-2.1", "Test", "La-Li-Lu-Le-Lo", ""} {
		_, err := ParseInt(s, true)
		assert.Equal(t, "Error: Please enter a positive whole number: ", messageOf(t, err), s)
		_, err = ParseInt(s, false)
		assert.Equal(t, "Error: Please enter a positive, non zero, whole number: ", messageOf(t, err), s)
	}
}

func TestParseIntZero(t *testing.T) {
	v, err := ParseInt("0", true)
	assert.NoError(t, err)
	assert.Equal(t, 0, v)

	_, err = ParseInt("0", false)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseFloatAccepted(t *testing.T) {
	for _, s := range []string{"1.0", "2.1", "1050.54321", "1", "250"} {
		_, err := ParseFloat(s, false)
		assert.NoError(t, err, s)
	}
	v, err := ParseFloat("2.5", true)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
}

func TestParseFloatRejected(t *testing.T) {
	for _, s := range []string{"-1.0", "-1050.54321", "-2", "Wall", "NaN", "Inf"} {
		_, err := ParseFloat(s, true)
		assert.Equal(t, "Error: Please enter a positive number: ", messageOf(t, err), s)
		_, err = ParseFloat(s, false)
		assert.Equal(t, "Error: Please enter a positive, non zero, number: ", messageOf(t, err), s)
	}
}

func TestParseFloatZero(t *testing.T) {
	_, err := ParseFloat("0", true)
	assert.NoError(t, err)
	_, err = ParseFloat("0", false)
	assert.Error(t, err)
}

func TestParseCoats(t *testing.T) {
	c, err := ParseCoats("3")
	require.NoError(t, err)
	assert.Equal(t, 3, c)

	_, err = ParseCoats("0")
	assert.Error(t, err)
}

func TestParseShape(t *testing.T) {
	kind, err := ParseShape("Trapezoid")
	require.NoError(t, err)
	assert.Equal(t, model.ShapeTrapezoid, kind)

	_, err = ParseShape("hexagon")
	assert.Contains(t, messageOf(t, err), "Square | Rectangle")
}

func TestParsePaint(t *testing.T) {
	catalog := model.DefaultCatalog()
	p, err := ParsePaint("white", catalog)
	require.NoError(t, err)
	assert.Equal(t, "White", p.Name)

	_, err = ParsePaint("red", catalog)
	assert.Contains(t, messageOf(t, err), "Emerald | Sapphire")
}

func TestParseDimensions(t *testing.T) {
	dims, err := ParseDimensions(model.ShapeTrapezoid, []string{"5", "2", "4"})
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 2, 4}, dims)

	_, err = ParseDimensions(model.ShapeTrapezoid, []string{"5", "2"})
	assert.Contains(t, messageOf(t, err), "base, height, top")

	_, err = ParseDimensions(model.ShapeCircle, []string{"0"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// Package input validates raw values typed or pasted by a user before they
// reach the calculator. Each parser returns either a clean value or an *Error
// whose Message is suitable for asking the user again.
package input

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/piwi3910/PaintCalc/internal/model"
)

// ErrInvalidInput is wrapped by every *Error.
var ErrInvalidInput = errors.New("invalid input")

// Error describes a rejected value and what the user should enter instead.
type Error struct {
	Value   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%q: %s", e.Value, e.Message)
}

func (e *Error) Unwrap() error { return ErrInvalidInput }

// Re-prompt messages shown to the user.
const (
	msgPositiveNumber        = "Error: Please enter a positive number: "
	msgPositiveNonZeroNumber = "Error: Please enter a positive, non zero, number: "
	msgWholeNumber           = "Error: Please enter a positive whole number: "
	msgNonZeroWholeNumber    = "Error: Please enter a positive, non zero, whole number: "
)

// ParseFloat parses a non-negative decimal such as a dimension in metres.
// Zero is accepted only when allowZero is set.
func ParseFloat(s string, allowZero bool) (float64, error) {
	msg := msgPositiveNonZeroNumber
	if allowZero {
		msg = msgPositiveNumber
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || (v == 0 && !allowZero) {
		return 0, &Error{Value: s, Message: msg}
	}
	return v, nil
}

// ParseInt parses a non-negative whole number such as a coat or wall count.
// Zero is accepted only when allowZero is set.
func ParseInt(s string, allowZero bool) (int, error) {
	msg := msgNonZeroWholeNumber
	if allowZero {
		msg = msgWholeNumber
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 || (v == 0 && !allowZero) {
		return 0, &Error{Value: s, Message: msg}
	}
	return v, nil
}

// ParseCoats parses a coat count, which must be at least one.
func ParseCoats(s string) (int, error) {
	return ParseInt(s, false)
}

// ParseShape parses a shape name case-insensitively.
func ParseShape(s string) (model.ShapeKind, error) {
	kind, err := model.ParseShapeKind(s)
	if err != nil {
		names := make([]string, len(model.ShapeKinds))
		for i, k := range model.ShapeKinds {
			names[i] = k.DisplayName()
		}
		return "", &Error{Value: s, Message: "Invalid Shape! Choose one of: " + strings.Join(names, " | ")}
	}
	return kind, nil
}

// ParsePaint looks a paint name up in the catalog.
func ParsePaint(s string, catalog model.Catalog) (model.PaintEntry, error) {
	p, err := catalog.Lookup(s)
	if err != nil {
		return model.PaintEntry{}, &Error{Value: s, Message: "Invalid colour! Choose one of: " + strings.Join(catalog.Names(), " | ")}
	}
	return p, nil
}

// ParseDimensions parses one value per shape parameter. Element dimensions
// must be greater than zero.
func ParseDimensions(kind model.ShapeKind, values []string) ([]float64, error) {
	params := kind.Params()
	if len(values) != len(params) {
		return nil, &Error{
			Value:   strings.Join(values, ", "),
			Message: fmt.Sprintf("Error: %s needs %d values (%s)", kind.DisplayName(), len(params), strings.Join(params, ", ")),
		}
	}
	dims := make([]float64, len(values))
	for i, v := range values {
		d, err := ParseFloat(v, false)
		if err != nil {
			return nil, err
		}
		dims[i] = d
	}
	return dims, nil
}

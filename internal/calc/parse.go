package calc

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// FieldState tags the outcome of parsing one raw input field.
type FieldState int

const (
	FieldEmpty FieldState = iota
	FieldInvalid
	FieldNumber
)

// Field is a parsed input value. Value is meaningful only when State is FieldNumber.
type Field struct {
	State FieldState
	Value float64
}

// Number returns a Field holding n.
func Number(n float64) Field {
	return Field{State: FieldNumber, Value: n}
}

// Plain decimal notation only: no hex floats, underscores, Inf or NaN.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseField converts raw text into a finite number. Surrounding whitespace is ignored.
func ParseField(raw string) Field {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Field{State: FieldEmpty}
	}
	if !decimalPattern.MatchString(s) {
		return Field{State: FieldInvalid}
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return Field{State: FieldInvalid}
	}
	return Number(n)
}

// parsePair runs the missing and non-numeric checks over a record's two fields,
// reporting the first field that fails. Missing is checked across both fields
// before numeric form.
func parsePair(item string, index int, names [2]string, raws [2]string) ([2]float64, *ValidationError) {
	var out [2]float64
	fields := [2]Field{ParseField(raws[0]), ParseField(raws[1])}
	for i, f := range fields {
		if f.State == FieldEmpty {
			return out, &ValidationError{Kind: KindMissingValue, Item: item, Index: index, Field: names[i]}
		}
	}
	for i, f := range fields {
		if f.State == FieldInvalid {
			return out, &ValidationError{Kind: KindNonNumeric, Item: item, Index: index, Field: names[i]}
		}
		out[i] = f.Value
	}
	return out, nil
}

// round2 rounds half away from zero to two decimal places. Negative zero becomes zero.
func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0
	}
	return r
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

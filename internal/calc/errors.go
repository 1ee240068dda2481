package calc

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies why a calculation was rejected.
type Kind string

const (
	KindNoRecords      Kind = "no_records"
	KindTooManyRecords Kind = "too_many_records"
	KindMissingValue   Kind = "missing_value"
	KindNonNumeric     Kind = "non_numeric"
	KindOutOfRange     Kind = "out_of_range"
	KindExceedsMaximum Kind = "exceeds_maximum" // percentage only
	KindDivisionByZero Kind = "division_by_zero"
	KindOverflow       Kind = "overflow"
)

// Sentinel errors for use with errors.Is.
var (
	ErrNoRecords      = errors.New("no records supplied")
	ErrTooManyRecords = errors.New("too many records")
	ErrMissingValue   = errors.New("missing value")
	ErrNonNumeric     = errors.New("non-numeric value")
	ErrOutOfRange     = errors.New("value out of range")
	ErrExceedsMaximum = errors.New("obtained marks exceed maximum")
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("numeric overflow")
)

var sentinels = map[Kind]error{
	KindNoRecords:      ErrNoRecords,
	KindTooManyRecords: ErrTooManyRecords,
	KindMissingValue:   ErrMissingValue,
	KindNonNumeric:     ErrNonNumeric,
	KindOutOfRange:     ErrOutOfRange,
	KindExceedsMaximum: ErrExceedsMaximum,
	KindDivisionByZero: ErrDivisionByZero,
	KindOverflow:       ErrOverflow,
}

// ValidationError is the single failure reported by an engine.
// Index is 1-based and zero when the failure is not tied to a record.
type ValidationError struct {
	Kind  Kind
	Item  string // "Subject" or "Semester"
	Index int
	Field string // field name as it appears in requests, e.g. "grade_point"
	Value float64

	// Set for KindExceedsMaximum.
	Obtained float64
	Maximum  float64

	// Set for KindTooManyRecords.
	Limit int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindNoRecords:
		return "calc: no records supplied"
	case KindTooManyRecords:
		return fmt.Sprintf("calc: too many records (limit %d)", e.Limit)
	case KindExceedsMaximum:
		return fmt.Sprintf("calc: record %d: obtained %g exceeds maximum %g", e.Index, e.Obtained, e.Maximum)
	case KindDivisionByZero, KindOverflow:
		return "calc: " + sentinels[e.Kind].Error()
	}
	return fmt.Sprintf("calc: record %d: %s: %s", e.Index, e.Field, sentinels[e.Kind])
}

// Unwrap returns the sentinel for the error's kind.
func (e *ValidationError) Unwrap() error {
	return sentinels[e.Kind]
}

// Internal reports whether the error signals a broken invariant rather than bad input.
func (e *ValidationError) Internal() bool {
	return e.Kind == KindDivisionByZero || e.Kind == KindOverflow
}

// Message returns text suitable for showing to the person who typed the input.
func (e *ValidationError) Message() string {
	label := fieldLabels[e.Field]
	switch e.Kind {
	case KindNoRecords:
		return fmt.Sprintf("Add at least one %s before calculating.", lower(e.Item))
	case KindTooManyRecords:
		return fmt.Sprintf("At most %d %ss can be calculated at once.", e.Limit, lower(e.Item))
	case KindMissingValue:
		return fmt.Sprintf("Enter the %s for %s %d.", label, e.Item, e.Index)
	case KindNonNumeric:
		return fmt.Sprintf("The %s for %s %d must be a number.", label, e.Item, e.Index)
	case KindOutOfRange:
		return fmt.Sprintf("The %s for %s %d must be %s.", label, e.Item, e.Index, fieldRanges[e.Field])
	case KindExceedsMaximum:
		return fmt.Sprintf("%s %d: marks obtained (%g) cannot exceed maximum marks (%g).", e.Item, e.Index, e.Obtained, e.Maximum)
	}
	return "Something went wrong while calculating. Please check your input and try again."
}

var fieldLabels = map[string]string{
	FieldObtained:   "marks obtained",
	FieldMaximum:    "maximum marks",
	FieldGradePoint: "grade point",
	FieldCredits:    "credits",
}

var fieldRanges = map[string]string{
	FieldObtained:   "zero or more",
	FieldMaximum:    "greater than zero",
	FieldGradePoint: fmt.Sprintf("between 0 and %g", MaxGradePoint),
	FieldCredits:    "greater than zero",
}

func lower(item string) string {
	if item == "" {
		return "record"
	}
	return strings.ToLower(item)
}

package calc

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

func subjects(pairs ...string) []SubjectRecord {
	records := make([]SubjectRecord, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		records = append(records, SubjectRecord{Obtained: pairs[i], Maximum: pairs[i+1]})
	}
	return records
}

func requireValidationError(t *testing.T, err error) *ValidationError {
	t.Helper()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	return verr
}

func TestComputePercentage_TwoSubjects(t *testing.T) {
	res, err := ComputePercentage(subjects("80", "100", "45", "50"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalObtained != 125 || res.TotalPossible != 150 {
		t.Errorf("expected totals 125/150, got %v/%v", res.TotalObtained, res.TotalPossible)
	}
	if res.Percentage != 83.33 {
		t.Errorf("expected 83.33, got %v", res.Percentage)
	}
	if res.Subjects != 2 {
		t.Errorf("expected 2 subjects, got %d", res.Subjects)
	}
}

func TestComputePercentage_ObtainedExceedsMaximum(t *testing.T) {
	_, err := ComputePercentage(subjects("60", "50"))
	verr := requireValidationError(t, err)

	if verr.Kind != KindExceedsMaximum {
		t.Fatalf("expected %s, got %s", KindExceedsMaximum, verr.Kind)
	}
	if verr.Index != 1 || verr.Obtained != 60 || verr.Maximum != 50 {
		t.Errorf("expected ExceedsMaximum(1,60,50), got (%d,%v,%v)", verr.Index, verr.Obtained, verr.Maximum)
	}
	if !errors.Is(err, ErrExceedsMaximum) {
		t.Error("expected errors.Is(err, ErrExceedsMaximum)")
	}
}

func TestComputePercentage_MissingObtained(t *testing.T) {
	_, err := ComputePercentage(subjects("", "100"))
	verr := requireValidationError(t, err)

	if verr.Kind != KindMissingValue || verr.Index != 1 || verr.Field != FieldObtained {
		t.Errorf("expected MissingValue(1) on obtained, got %s(%d) on %s", verr.Kind, verr.Index, verr.Field)
	}
	if got := verr.Message(); got != "Enter the marks obtained for Subject 1." {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestComputePercentage_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		records []SubjectRecord
		kind    Kind
		index   int
		field   string
	}{
		{"whitespace is missing", subjects("80", "100", "   ", "50"), KindMissingValue, 2, FieldObtained},
		{"missing beats non-numeric in same record", subjects("abc", ""), KindMissingValue, 1, FieldMaximum},
		{"non-numeric obtained", subjects("abc", "100"), KindNonNumeric, 1, FieldObtained},
		{"non-numeric maximum", subjects("10", "ten"), KindNonNumeric, 1, FieldMaximum},
		{"negative obtained", subjects("-1", "100"), KindOutOfRange, 1, FieldObtained},
		{"zero maximum", subjects("0", "0"), KindOutOfRange, 1, FieldMaximum},
		{"negative maximum", subjects("5", "-10"), KindOutOfRange, 1, FieldMaximum},
		{"range beats exceeds", subjects("-5", "-10"), KindOutOfRange, 1, FieldObtained},
		{"first invalid record wins", subjects("80", "100", "90", "50", "", "10"), KindExceedsMaximum, 2, FieldObtained},
		{"infinite text is non-numeric", subjects("Inf", "100"), KindNonNumeric, 1, FieldObtained},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputePercentage(tt.records)
			verr := requireValidationError(t, err)
			if verr.Kind != tt.kind || verr.Index != tt.index || verr.Field != tt.field {
				t.Errorf("expected %s(%d) on %s, got %s(%d) on %s",
					tt.kind, tt.index, tt.field, verr.Kind, verr.Index, verr.Field)
			}
			if verr.Item != ItemSubject {
				t.Errorf("expected item %q, got %q", ItemSubject, verr.Item)
			}
			if verr.Internal() {
				t.Error("input errors must not be internal")
			}
		})
	}
}

func TestComputePercentage_Boundaries(t *testing.T) {
	res, err := ComputePercentage(subjects("100", "100", "50", "50"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Percentage != 100 {
		t.Errorf("expected 100, got %v", res.Percentage)
	}

	res, err = ComputePercentage(subjects("0", "100"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Percentage != 0 {
		t.Errorf("expected 0, got %v", res.Percentage)
	}
}

func TestComputePercentage_RecordCount(t *testing.T) {
	_, err := ComputePercentage(nil)
	verr := requireValidationError(t, err)
	if verr.Kind != KindNoRecords {
		t.Errorf("expected %s, got %s", KindNoRecords, verr.Kind)
	}
	if !strings.Contains(verr.Message(), "subject") {
		t.Errorf("expected message to mention subject, got %q", verr.Message())
	}

	eng := NewPercentageEngine(2)
	_, err = eng.Compute(subjects("1", "2", "1", "2", "1", "2"))
	verr = requireValidationError(t, err)
	if verr.Kind != KindTooManyRecords || verr.Limit != 2 {
		t.Errorf("expected too_many_records with limit 2, got %s limit %d", verr.Kind, verr.Limit)
	}

	// Count is checked before record contents.
	_, err = eng.Compute(subjects("", "", "", "", "", ""))
	if !errors.Is(err, ErrTooManyRecords) {
		t.Errorf("expected ErrTooManyRecords, got %v", err)
	}
}

func TestNewPercentageEngine_DefaultLimit(t *testing.T) {
	if got := NewPercentageEngine(0).MaxRecords(); got != DefaultMaxSubjects {
		t.Errorf("expected default limit %d, got %d", DefaultMaxSubjects, got)
	}
	if got := NewPercentageEngine(-3).MaxRecords(); got != DefaultMaxSubjects {
		t.Errorf("expected default limit %d, got %d", DefaultMaxSubjects, got)
	}
	if got := NewPercentageEngine(4).MaxRecords(); got != 4 {
		t.Errorf("expected limit 4, got %d", got)
	}
}

func TestComputePercentage_PermutationInvariant(t *testing.T) {
	a, err := ComputePercentage(subjects("80", "100", "45", "50", "33", "40"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := ComputePercentage(subjects("33", "40", "80", "100", "45", "50"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Percentage != b.Percentage {
		t.Errorf("expected permutation to keep result, got %v and %v", a.Percentage, b.Percentage)
	}
	if a.Percentage != 83.16 {
		t.Errorf("expected 83.16, got %v", a.Percentage)
	}
}

func TestComputePercentage_DeterministicAndBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		n := 1 + rng.Intn(DefaultMaxSubjects)
		records := make([]SubjectRecord, n)
		for j := range records {
			maximum := 1 + rng.Float64()*200
			obtained := rng.Float64() * maximum
			records[j] = SubjectRecord{
				Obtained: strconv.FormatFloat(obtained, 'f', -1, 64),
				Maximum:  strconv.FormatFloat(maximum, 'f', -1, 64),
			}
		}

		first, err := ComputePercentage(records)
		if err != nil {
			t.Fatalf("iteration %d: unexpected error: %v", i, err)
		}
		second, err := ComputePercentage(records)
		if err != nil {
			t.Fatalf("iteration %d: unexpected error on rerun: %v", i, err)
		}
		if first != second {
			t.Fatalf("iteration %d: results differ: %+v vs %+v", i, first, second)
		}
		if first.Percentage < 0 || first.Percentage > 100 {
			t.Fatalf("iteration %d: percentage %v out of [0,100]", i, first.Percentage)
		}
	}
}

func TestComputePercentage_DoesNotMutateInput(t *testing.T) {
	records := subjects(" 80 ", "100")
	if _, err := ComputePercentage(records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records[0].Obtained != " 80 " {
		t.Errorf("input was modified: %q", records[0].Obtained)
	}
}

func TestAggregatePercentage_DivisionByZero(t *testing.T) {
	_, err := aggregatePercentage([]Subject{{Obtained: 0, Maximum: 0}})
	verr := requireValidationError(t, err)
	if verr.Kind != KindDivisionByZero {
		t.Fatalf("expected %s, got %s", KindDivisionByZero, verr.Kind)
	}
	if !verr.Internal() {
		t.Error("expected division by zero to be internal")
	}
	if !errors.Is(err, ErrDivisionByZero) {
		t.Error("expected errors.Is(err, ErrDivisionByZero)")
	}
	if strings.Contains(verr.Message(), "zero") {
		t.Errorf("internal message should be generic, got %q", verr.Message())
	}
}

func TestComputePercentage_Overflow(t *testing.T) {
	_, err := ComputePercentage(subjects("1e308", "1e308", "1e308", "1e308"))
	verr := requireValidationError(t, err)
	if verr.Kind != KindOverflow {
		t.Fatalf("expected %s, got %s", KindOverflow, verr.Kind)
	}
	if !verr.Internal() {
		t.Error("expected overflow to be internal")
	}
}

package calc

// SubjectRecord is one subject's raw marks as typed by the user.
type SubjectRecord struct {
	Obtained string
	Maximum  string
}

// Subject is a validated subject record.
type Subject struct {
	Obtained float64
	Maximum  float64
}

// PercentageResult is the outcome of a successful percentage calculation.
type PercentageResult struct {
	Percentage    float64 // rounded to 2 decimals, in [0, 100]
	TotalObtained float64
	TotalPossible float64
	Subjects      int
}

// PercentageEngine validates subject marks and aggregates them into an overall percentage.
// It holds no state besides its limit and is safe for concurrent use.
type PercentageEngine struct {
	maxRecords int
}

// NewPercentageEngine creates an engine accepting at most maxRecords subjects.
// A non-positive limit selects DefaultMaxSubjects.
func NewPercentageEngine(maxRecords int) *PercentageEngine {
	return &PercentageEngine{maxRecords: limitOrDefault(maxRecords, DefaultMaxSubjects)}
}

// MaxRecords returns the subject limit.
func (e *PercentageEngine) MaxRecords() int {
	return e.maxRecords
}

// Compute validates records in order and returns the overall percentage.
// The returned error is always a *ValidationError.
func (e *PercentageEngine) Compute(records []SubjectRecord) (PercentageResult, error) {
	subjects, verr := e.validate(records)
	if verr != nil {
		return PercentageResult{}, verr
	}
	return aggregatePercentage(subjects)
}

// validate parses and checks every record, stopping at the first failure.
func (e *PercentageEngine) validate(records []SubjectRecord) ([]Subject, *ValidationError) {
	if verr := checkCount(ItemSubject, len(records), e.maxRecords); verr != nil {
		return nil, verr
	}

	subjects := make([]Subject, 0, len(records))
	for i, r := range records {
		index := i + 1
		v, verr := parsePair(ItemSubject, index,
			[2]string{FieldObtained, FieldMaximum},
			[2]string{r.Obtained, r.Maximum})
		if verr != nil {
			return nil, verr
		}
		obtained, maximum := v[0], v[1]

		if obtained < 0 {
			return nil, &ValidationError{Kind: KindOutOfRange, Item: ItemSubject, Index: index, Field: FieldObtained, Value: obtained}
		}
		if maximum <= 0 {
			return nil, &ValidationError{Kind: KindOutOfRange, Item: ItemSubject, Index: index, Field: FieldMaximum, Value: maximum}
		}
		if obtained > maximum {
			return nil, &ValidationError{
				Kind:     KindExceedsMaximum,
				Item:     ItemSubject,
				Index:    index,
				Field:    FieldObtained,
				Value:    obtained,
				Obtained: obtained,
				Maximum:  maximum,
			}
		}
		subjects = append(subjects, Subject{Obtained: obtained, Maximum: maximum})
	}
	return subjects, nil
}

// aggregatePercentage assumes validated input. The zero and overflow guards
// only fire when validation was bypassed or totals exceed float64 range.
func aggregatePercentage(subjects []Subject) (PercentageResult, error) {
	var totalObtained, totalPossible float64
	for _, s := range subjects {
		totalObtained += s.Obtained
		totalPossible += s.Maximum
	}

	if totalPossible == 0 {
		return PercentageResult{}, &ValidationError{Kind: KindDivisionByZero, Item: ItemSubject}
	}
	if !finite(totalObtained) || !finite(totalPossible) {
		return PercentageResult{}, &ValidationError{Kind: KindOverflow, Item: ItemSubject}
	}

	return PercentageResult{
		Percentage:    round2(totalObtained / totalPossible * 100),
		TotalObtained: totalObtained,
		TotalPossible: totalPossible,
		Subjects:      len(subjects),
	}, nil
}

var defaultPercentageEngine = NewPercentageEngine(DefaultMaxSubjects)

// ComputePercentage runs the default percentage engine.
func ComputePercentage(records []SubjectRecord) (PercentageResult, error) {
	return defaultPercentageEngine.Compute(records)
}

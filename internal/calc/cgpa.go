package calc

// SemesterRecord is one semester's raw grade point and credits as typed by the user.
type SemesterRecord struct {
	GradePoint string
	Credits    string
}

// Semester is a validated semester record.
type Semester struct {
	GradePoint float64
	Credits    float64
}

// CGPAResult is the outcome of a successful CGPA calculation.
type CGPAResult struct {
	CGPA          float64 // rounded to 2 decimals, in [0, MaxGradePoint]
	TotalWeighted float64
	TotalCredits  float64
	Semesters     int
}

// CGPAEngine validates semester grade points and aggregates them into a
// credit-weighted average. Safe for concurrent use.
type CGPAEngine struct {
	maxRecords int
}

// NewCGPAEngine creates an engine accepting at most maxRecords semesters.
// A non-positive limit selects DefaultMaxSemesters.
func NewCGPAEngine(maxRecords int) *CGPAEngine {
	return &CGPAEngine{maxRecords: limitOrDefault(maxRecords, DefaultMaxSemesters)}
}

func (e *CGPAEngine) MaxRecords() int {
	return e.maxRecords
}

// Compute validates records in order and returns the CGPA.
// The returned error is always a *ValidationError.
func (e *CGPAEngine) Compute(records []SemesterRecord) (CGPAResult, error) {
	semesters, verr := e.validate(records)
	if verr != nil {
		return CGPAResult{}, verr
	}
	return aggregateCGPA(semesters)
}

func (e *CGPAEngine) validate(records []SemesterRecord) ([]Semester, *ValidationError) {
	if verr := checkCount(ItemSemester, len(records), e.maxRecords); verr != nil {
		return nil, verr
	}

	semesters := make([]Semester, 0, len(records))
	for i, r := range records {
		index := i + 1
		v, verr := parsePair(ItemSemester, index,
			[2]string{FieldGradePoint, FieldCredits},
			[2]string{r.GradePoint, r.Credits})
		if verr != nil {
			return nil, verr
		}
		gradePoint, credits := v[0], v[1]

		if gradePoint < 0 || gradePoint > MaxGradePoint {
			return nil, &ValidationError{Kind: KindOutOfRange, Item: ItemSemester, Index: index, Field: FieldGradePoint, Value: gradePoint}
		}
		if credits <= 0 {
			return nil, &ValidationError{Kind: KindOutOfRange, Item: ItemSemester, Index: index, Field: FieldCredits, Value: credits}
		}
		semesters = append(semesters, Semester{GradePoint: gradePoint, Credits: credits})
	}
	return semesters, nil
}

func aggregateCGPA(semesters []Semester) (CGPAResult, error) {
	var totalWeighted, totalCredits float64
	for _, s := range semesters {
		totalWeighted += s.GradePoint * s.Credits
		totalCredits += s.Credits
	}

	if totalCredits == 0 {
		return CGPAResult{}, &ValidationError{Kind: KindDivisionByZero, Item: ItemSemester}
	}
	if !finite(totalWeighted) || !finite(totalCredits) {
		return CGPAResult{}, &ValidationError{Kind: KindOverflow, Item: ItemSemester}
	}

	return CGPAResult{
		CGPA:          round2(totalWeighted / totalCredits),
		TotalWeighted: totalWeighted,
		TotalCredits:  totalCredits,
		Semesters:     len(semesters),
	}, nil
}

var defaultCGPAEngine = NewCGPAEngine(DefaultMaxSemesters)

// ComputeCGPA runs the default CGPA engine.
func ComputeCGPA(records []SemesterRecord) (CGPAResult, error) {
	return defaultCGPAEngine.Compute(records)
}

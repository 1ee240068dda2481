package calc

const (
	DefaultMaxSubjects  = 10
	DefaultMaxSemesters = 12

	// MaxGradePoint is the top of the grade point scale.
	MaxGradePoint = 10.0
)

// Field names as used in requests and error reports.
const (
	FieldObtained   = "obtained"
	FieldMaximum    = "maximum"
	FieldGradePoint = "grade_point"
	FieldCredits    = "credits"
)

const (
	ItemSubject  = "Subject"
	ItemSemester = "Semester"
)

// checkCount rejects empty lists and lists longer than limit.
func checkCount(item string, n, limit int) *ValidationError {
	if n == 0 {
		return &ValidationError{Kind: KindNoRecords, Item: item}
	}
	if n > limit {
		return &ValidationError{Kind: KindTooManyRecords, Item: item, Limit: limit}
	}
	return nil
}

func limitOrDefault(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return limit
}

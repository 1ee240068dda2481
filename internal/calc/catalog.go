package calc

// CalculatorID names one of the available calculators.
type CalculatorID string

const (
	CalculatorPercentage CalculatorID = "percentage"
	CalculatorCGPA       CalculatorID = "cgpa"
)

// CalculatorInfo describes a calculator for a menu or listing.
type CalculatorInfo struct {
	ID          CalculatorID
	Title       string
	Description string
	RecordLabel string
	Fields      []string
	MinRecords  int
	MaxRecords  int
}

// Catalog lists the calculators in display order.
func Catalog(maxSubjects, maxSemesters int) []CalculatorInfo {
	return []CalculatorInfo{
		{
			ID:          CalculatorPercentage,
			Title:       "Percentage Calculator",
			Description: "Overall percentage from marks obtained and maximum marks per subject",
			RecordLabel: ItemSubject,
			Fields:      []string{FieldObtained, FieldMaximum},
			MinRecords:  1,
			MaxRecords:  limitOrDefault(maxSubjects, DefaultMaxSubjects),
		},
		{
			ID:          CalculatorCGPA,
			Title:       "CGPA Calculator",
			Description: "Credit-weighted cumulative grade point average across semesters",
			RecordLabel: ItemSemester,
			Fields:      []string{FieldGradePoint, FieldCredits},
			MinRecords:  1,
			MaxRecords:  limitOrDefault(maxSemesters, DefaultMaxSemesters),
		},
	}
}

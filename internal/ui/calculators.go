package ui

import (
	"fmt"

	"github.com/epeers/gradecalc/internal/calc"
)

func percentageScreen(engine *calc.PercentageEngine) screenConfig {
	return screenConfig{
		title:        "Percentage",
		item:         calc.ItemSubject,
		placeholders: [2]string{"Marks obtained", "Maximum marks"},
		maxRecords:   engine.MaxRecords(),
		defaultCount: 2,
		prefKey:      "percentage.count",
		compute: func(rows [][2]string) (string, error) {
			records := make([]calc.SubjectRecord, len(rows))
			for i, r := range rows {
				records[i] = calc.SubjectRecord{Obtained: r[0], Maximum: r[1]}
			}
			res, err := engine.Compute(records)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%.2f%%\nYour overall percentage", res.Percentage), nil
		},
	}
}

func cgpaScreen(engine *calc.CGPAEngine) screenConfig {
	return screenConfig{
		title:        "CGPA",
		item:         calc.ItemSemester,
		placeholders: [2]string{"SGPA", "Credits"},
		maxRecords:   engine.MaxRecords(),
		defaultCount: 1,
		prefKey:      "cgpa.count",
		compute: func(rows [][2]string) (string, error) {
			records := make([]calc.SemesterRecord, len(rows))
			for i, r := range rows {
				records[i] = calc.SemesterRecord{GradePoint: r[0], Credits: r[1]}
			}
			res, err := engine.Compute(records)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Final CGPA: %.2f", res.CGPA), nil
		},
	}
}

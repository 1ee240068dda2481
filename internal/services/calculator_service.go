package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/epeers/gradecalc/internal/calc"
	"github.com/epeers/gradecalc/internal/models"
	log "github.com/sirupsen/logrus"
)

// CalculatorService runs the percentage and CGPA engines for API callers
type CalculatorService struct {
	percentage *calc.PercentageEngine
	cgpa       *calc.CGPAEngine
}

// NewCalculatorService creates a new CalculatorService with the given record limits.
// Non-positive limits fall back to the engine defaults.
func NewCalculatorService(maxSubjects, maxSemesters int) *CalculatorService {
	return &CalculatorService{
		percentage: calc.NewPercentageEngine(maxSubjects),
		cgpa:       calc.NewCGPAEngine(maxSemesters),
	}
}

// MaxSubjects returns the percentage calculator's record limit.
func (s *CalculatorService) MaxSubjects() int {
	return s.percentage.MaxRecords()
}

// MaxSemesters returns the CGPA calculator's record limit.
func (s *CalculatorService) MaxSemesters() int {
	return s.cgpa.MaxRecords()
}

// Calculators lists the available calculators with their record bounds
func (s *CalculatorService) Calculators() []models.CalculatorSummary {
	catalog := calc.Catalog(s.percentage.MaxRecords(), s.cgpa.MaxRecords())
	out := make([]models.CalculatorSummary, 0, len(catalog))
	for _, c := range catalog {
		out = append(out, models.CalculatorSummary{
			ID:          string(c.ID),
			Title:       c.Title,
			Description: c.Description,
			RecordLabel: c.RecordLabel,
			Fields:      c.Fields,
			MinRecords:  c.MinRecords,
			MaxRecords:  c.MaxRecords,
		})
	}
	return out
}

// CalculatePercentage validates the subjects and returns the overall percentage.
// Rejections are returned as *calc.ValidationError.
func (s *CalculatorService) CalculatePercentage(ctx context.Context, req *models.PercentageRequest) (*models.PercentageResponse, error) {
	defer TrackTime("CalculatePercentage", time.Now())

	records := make([]calc.SubjectRecord, len(req.Subjects))
	for i, in := range req.Subjects {
		records[i] = calc.SubjectRecord{Obtained: in.Obtained.String(), Maximum: in.Maximum.String()}
	}

	res, err := s.percentage.Compute(records)
	if err != nil {
		logRejection("percentage", err)
		return nil, err
	}

	for i, r := range records {
		if calc.ParseField(r.Obtained).Value == 0 {
			AddWarning(ctx, models.Warning{
				Code:    models.WarnZeroMarksObtained,
				Message: fmt.Sprintf("Subject %d has zero marks obtained", i+1),
				Index:   i + 1,
			})
		}
	}

	return &models.PercentageResponse{
		OK:            true,
		Value:         res.Percentage,
		TotalObtained: res.TotalObtained,
		TotalPossible: res.TotalPossible,
		Subjects:      res.Subjects,
	}, nil
}

// CalculateCGPA validates the semesters and returns the credit-weighted CGPA.
// Rejections are returned as *calc.ValidationError.
func (s *CalculatorService) CalculateCGPA(ctx context.Context, req *models.CGPARequest) (*models.CGPAResponse, error) {
	defer TrackTime("CalculateCGPA", time.Now())

	records := make([]calc.SemesterRecord, len(req.Semesters))
	for i, in := range req.Semesters {
		records[i] = calc.SemesterRecord{GradePoint: in.GradePoint.String(), Credits: in.Credits.String()}
	}

	res, err := s.cgpa.Compute(records)
	if err != nil {
		logRejection("cgpa", err)
		return nil, err
	}

	for i, r := range records {
		credits := calc.ParseField(r.Credits).Value
		if credits != math.Trunc(credits) {
			AddWarning(ctx, models.Warning{
				Code:    models.WarnFractionalCredits,
				Message: fmt.Sprintf("Semester %d has fractional credits (%g)", i+1, credits),
				Index:   i + 1,
			})
		}
	}

	return &models.CGPAResponse{
		OK:            true,
		Value:         res.CGPA,
		TotalWeighted: res.TotalWeighted,
		TotalCredits:  res.TotalCredits,
		Semesters:     res.Semesters,
	}, nil
}

// logRejection logs broken invariants loudly and ordinary input problems quietly.
func logRejection(calculator string, err error) {
	var verr *calc.ValidationError
	if errors.As(err, &verr) && verr.Internal() {
		log.WithFields(log.Fields{
			"calculator": calculator,
			"kind":       verr.Kind,
		}).Errorf("calculation invariant violated: %v", err)
		return
	}
	log.WithField("calculator", calculator).Debugf("input rejected: %v", err)
}

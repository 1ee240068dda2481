package models

import (
	"encoding/json"
	"fmt"
)

// SubjectInput is one subject row in a percentage request
type SubjectInput struct {
	Obtained FieldValue `json:"obtained" yaml:"obtained"`
	Maximum  FieldValue `json:"maximum" yaml:"maximum"`
}

// SemesterInput is one semester row in a CGPA request
type SemesterInput struct {
	GradePoint FieldValue `json:"grade_point" yaml:"grade_point"`
	Credits    FieldValue `json:"credits" yaml:"credits"`
}

// PercentageRequest represents the request body for the percentage calculator
type PercentageRequest struct {
	Subjects []SubjectInput `json:"subjects" yaml:"subjects"`
}

// CGPARequest represents the request body for the CGPA calculator
type CGPARequest struct {
	Semesters []SemesterInput `json:"semesters" yaml:"semesters"`
}

// PercentageResponse is a successful percentage calculation.
// Value is always rendered with two decimals.
type PercentageResponse struct {
	OK            bool      `json:"ok"`
	Value         float64   `json:"value"`
	TotalObtained float64   `json:"total_obtained"`
	TotalPossible float64   `json:"total_possible"`
	Subjects      int       `json:"subjects"`
	Warnings      []Warning `json:"warnings,omitempty"`
}

// CGPAResponse is a successful CGPA calculation.
type CGPAResponse struct {
	OK            bool      `json:"ok"`
	Value         float64   `json:"value"`
	TotalWeighted float64   `json:"total_weighted"`
	TotalCredits  float64   `json:"total_credits"`
	Semesters     int       `json:"semesters"`
	Warnings      []Warning `json:"warnings,omitempty"`
}

func (r PercentageResponse) MarshalJSON() ([]byte, error) {
	type plain PercentageResponse
	return json.Marshal(struct {
		plain
		Value json.RawMessage `json:"value"`
	}{
		plain: plain(r),
		Value: json.RawMessage(fmt.Sprintf("%.2f", r.Value)),
	})
}

func (r CGPAResponse) MarshalJSON() ([]byte, error) {
	type plain CGPAResponse
	return json.Marshal(struct {
		plain
		Value json.RawMessage `json:"value"`
	}{
		plain: plain(r),
		Value: json.RawMessage(fmt.Sprintf("%.2f", r.Value)),
	})
}

// ValidationErrorResponse is returned when the submitted records are rejected
type ValidationErrorResponse struct {
	OK       bool     `json:"ok"`
	Error    string   `json:"error"`
	Message  string   `json:"message"`
	Index    int      `json:"index,omitempty"`
	Field    string   `json:"field,omitempty"`
	Obtained *float64 `json:"obtained,omitempty"`
	Maximum  *float64 `json:"maximum,omitempty"`
	Limit    int      `json:"limit,omitempty"`
}

// CalculatorSummary describes one calculator in GET /calculators
type CalculatorSummary struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	RecordLabel string   `json:"record_label"`
	Fields      []string `json:"fields"`
	MinRecords  int      `json:"min_records"`
	MaxRecords  int      `json:"max_records"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

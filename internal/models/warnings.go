package models

// WarningCode categorizes warnings by subsystem.
// W3xxx = input validation.
type WarningCode string

const (
	WarnZeroMarksObtained WarningCode = "W3001" // a subject scored zero; often a field left at 0 by mistake
	WarnFractionalCredits WarningCode = "W3002" // a semester's credits are not a whole number
)

// Warning represents a non-fatal issue noticed while calculating.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
	Index   int         `json:"index,omitempty"`
}

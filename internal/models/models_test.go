package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFieldValue_UnmarshalJSON(t *testing.T) {
	body := `{"subjects":[
		{"obtained":"80","maximum":100},
		{"obtained":45.5,"maximum":" 50 "},
		{"obtained":null,"maximum":true},
		{"maximum":"10"}
	]}`

	var req PercentageRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(req.Subjects) != 4 {
		t.Fatalf("expected 4 subjects, got %d", len(req.Subjects))
	}

	want := []SubjectInput{
		{Obtained: "80", Maximum: "100"},
		{Obtained: "45.5", Maximum: " 50 "},
		{Obtained: "", Maximum: "true"},
		{Obtained: "", Maximum: "10"},
	}
	for i, w := range want {
		if req.Subjects[i] != w {
			t.Errorf("subject %d: expected %+v, got %+v", i+1, w, req.Subjects[i])
		}
	}
}

func TestPercentageResponse_MarshalTwoDecimals(t *testing.T) {
	b, err := json.Marshal(PercentageResponse{OK: true, Value: 80, TotalObtained: 80, TotalPossible: 100, Subjects: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, `"value":80.00`) {
		t.Errorf("expected value rendered with two decimals, got %s", s)
	}
	if strings.Count(s, `"value"`) != 1 {
		t.Errorf("expected a single value key, got %s", s)
	}
	if strings.Contains(s, "warnings") {
		t.Errorf("expected warnings to be omitted when empty, got %s", s)
	}
}

func TestCGPAResponse_MarshalTwoDecimals(t *testing.T) {
	b, err := json.Marshal(CGPAResponse{
		OK:       true,
		Value:    8.1,
		Warnings: []Warning{{Code: WarnFractionalCredits, Message: "m", Index: 2}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, `"value":8.10`) {
		t.Errorf("expected value rendered with two decimals, got %s", s)
	}
	if !strings.Contains(s, `"code":"W3002"`) {
		t.Errorf("expected warning code in output, got %s", s)
	}
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/epeers/gradecalc/internal/calc"
	json "github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
)

// Outcome is the printable result of one run. OK is false for rejected input.
type Outcome struct {
	Calculator Calculator `json:"calculator"`
	OK         bool       `json:"ok"`
	Value      float64    `json:"value"`
	Numerator  float64    `json:"numerator"`
	Weight     float64    `json:"weight"`
	Records    int        `json:"records"`

	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Index   int    `json:"index,omitempty"`
}

// Run gathers records from files then inline arguments and runs the calculator.
// Rejected input produces an Outcome with OK false; the error return is for
// unreadable input and broken invariants.
func Run(ctx context.Context, cfg RunnerConfig) (*Outcome, error) {
	rows, err := LoadFiles(ctx, cfg.Calculator, cfg.Files)
	if err != nil {
		return nil, err
	}
	for _, s := range cfg.Records {
		p, err := ParseInline(s)
		if err != nil {
			return nil, err
		}
		rows = append(rows, p)
	}

	log.WithFields(log.Fields{
		"calculator": cfg.Calculator,
		"records":    len(rows),
		"files":      len(cfg.Files),
	}).Debug("running calculation")

	return Calculate(cfg.Calculator, cfg.MaxRecords, rows)
}

// Calculate runs the engine for c over rows.
func Calculate(c Calculator, maxRecords int, rows []pair) (*Outcome, error) {
	out := &Outcome{Calculator: c, Records: len(rows)}

	var err error
	switch c {
	case Percentage:
		records := make([]calc.SubjectRecord, len(rows))
		for i, r := range rows {
			records[i] = calc.SubjectRecord{Obtained: r[0], Maximum: r[1]}
		}
		var res calc.PercentageResult
		res, err = calc.NewPercentageEngine(maxRecords).Compute(records)
		out.Value, out.Numerator, out.Weight = res.Percentage, res.TotalObtained, res.TotalPossible
	case CGPA:
		records := make([]calc.SemesterRecord, len(rows))
		for i, r := range rows {
			records[i] = calc.SemesterRecord{GradePoint: r[0], Credits: r[1]}
		}
		var res calc.CGPAResult
		res, err = calc.NewCGPAEngine(maxRecords).Compute(records)
		out.Value, out.Numerator, out.Weight = res.CGPA, res.TotalWeighted, res.TotalCredits
	default:
		return nil, fmt.Errorf("unknown calculator %q", c)
	}

	if err != nil {
		var verr *calc.ValidationError
		if !errors.As(err, &verr) || verr.Internal() {
			return nil, fmt.Errorf("calculation failed: %w", err)
		}
		return &Outcome{
			Calculator: c,
			Records:    len(rows),
			Error:      string(verr.Kind),
			Message:    verr.Message(),
			Index:      verr.Index,
		}, nil
	}

	out.OK = true
	return out, nil
}

// PrintOutcome writes the outcome as text or JSON.
func PrintOutcome(w io.Writer, o *Outcome, asJSON bool) error {
	if asJSON {
		b, err := json.MarshalIndent(o, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}

	if !o.OK {
		_, err := fmt.Fprintf(w, "Error: %s\n", o.Message)
		return err
	}

	switch o.Calculator {
	case Percentage:
		fmt.Fprintf(w, "Percentage: %.2f%%\n", o.Value)
		fmt.Fprintf(w, "Marks:      %g / %g across %d subject(s)\n", o.Numerator, o.Weight, o.Records)
	case CGPA:
		fmt.Fprintf(w, "CGPA:       %.2f\n", o.Value)
		fmt.Fprintf(w, "Credits:    %g across %d semester(s)\n", o.Weight, o.Records)
	}
	return nil
}

package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/epeers/gradecalc/internal/calc"
	"github.com/epeers/gradecalc/internal/models"
	json "github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// pair is one record's two raw fields in calculator order.
type pair [2]string

// columns returns the CSV header names for a calculator.
func columns(c Calculator) [2]string {
	if c == CGPA {
		return [2]string{calc.FieldGradePoint, calc.FieldCredits}
	}
	return [2]string{calc.FieldObtained, calc.FieldMaximum}
}

// ParseInline splits an "a/b" record. Either side may be empty; the engine reports that.
func ParseInline(s string) (pair, error) {
	a, b, ok := strings.Cut(s, "/")
	if !ok {
		return pair{}, fmt.Errorf("record %q must look like a/b", s)
	}
	return pair{a, b}, nil
}

// LoadFiles reads every path concurrently and returns their records in path order.
func LoadFiles(ctx context.Context, c Calculator, paths []string) ([]pair, error) {
	results := make([][]pair, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows, err := loadFile(c, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []pair
	for _, rows := range results {
		all = append(all, rows...)
	}
	return all, nil
}

func loadFile(c Calculator, path string) ([]pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ParseCSV(f, c)
	case ".json":
		return ParseJSON(f, c)
	case ".yaml", ".yml":
		return ParseYAML(f, c)
	default:
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}
}

// ParseCSV reads records from CSV with a header naming the calculator's two columns.
// Extra columns are ignored, blank rows are skipped, and short rows leave fields empty.
func ParseCSV(r io.Reader, c Calculator) ([]pair, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIdx := make(map[string]int)
	for i, col := range header {
		colIdx[strings.ToLower(strings.TrimSpace(col))] = i
	}

	cols := columns(c)
	for _, col := range cols {
		if _, ok := colIdx[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	cell := func(record []string, col string) string {
		idx := colIdx[col]
		if idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var rows []pair
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			return nil, fmt.Errorf("row %d: failed to read CSV record: %w", rowNum, err)
		}

		if strings.TrimSpace(strings.Join(record, "")) == "" {
			continue
		}
		rows = append(rows, pair{cell(record, cols[0]), cell(record, cols[1])})
	}
	return rows, nil
}

// ParseJSON accepts either a bare array of records or the API request shape.
func ParseJSON(r io.Reader, c Calculator) ([]pair, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	wrapped := bytes.HasPrefix(bytes.TrimSpace(data), []byte("{"))

	if c == CGPA {
		var req models.CGPARequest
		if wrapped {
			err = json.Unmarshal(data, &req)
		} else {
			err = json.Unmarshal(data, &req.Semesters)
		}
		if err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return semesterPairs(req.Semesters), nil
	}

	var req models.PercentageRequest
	if wrapped {
		err = json.Unmarshal(data, &req)
	} else {
		err = json.Unmarshal(data, &req.Subjects)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return subjectPairs(req.Subjects), nil
}

// ParseYAML accepts the same shapes as ParseJSON.
func ParseYAML(r io.Reader, c Calculator) ([]pair, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	wrapped := root.Kind == yaml.MappingNode

	if c == CGPA {
		var req models.CGPARequest
		var err error
		if wrapped {
			err = root.Decode(&req)
		} else {
			err = root.Decode(&req.Semesters)
		}
		if err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		return semesterPairs(req.Semesters), nil
	}

	var req models.PercentageRequest
	var err error
	if wrapped {
		err = root.Decode(&req)
	} else {
		err = root.Decode(&req.Subjects)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return subjectPairs(req.Subjects), nil
}

func subjectPairs(in []models.SubjectInput) []pair {
	out := make([]pair, len(in))
	for i, s := range in {
		out[i] = pair{s.Obtained.String(), s.Maximum.String()}
	}
	return out
}

func semesterPairs(in []models.SemesterInput) []pair {
	out := make([]pair, len(in))
	for i, s := range in {
		out[i] = pair{s.GradePoint.String(), s.Credits.String()}
	}
	return out
}

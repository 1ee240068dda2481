package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseInline(t *testing.T) {
	p, err := ParseInline("80/100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != (pair{"80", "100"}) {
		t.Errorf("got %v, want [80 100]", p)
	}

	p, err = ParseInline("/100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p[0] != "" {
		t.Errorf("expected empty first field, got %q", p[0])
	}

	if _, err := ParseInline("80"); err == nil {
		t.Error("expected error for record without separator")
	}
}

func TestParseCSV_HappyPath(t *testing.T) {
	csv := "subject,obtained,maximum\nMaths,80,100\n\n,,\nPhysics, 45 ,50\n"
	rows, err := ParseCSV(strings.NewReader(csv), Percentage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0] != (pair{"80", "100"}) || rows[1] != (pair{"45", "50"}) {
		t.Errorf("unexpected rows: %v", rows)
	}
}

func TestParseCSV_MissingColumn(t *testing.T) {
	csv := "grade_point,something_else\n8,20\n"
	_, err := ParseCSV(strings.NewReader(csv), CGPA)
	if err == nil {
		t.Fatal("expected error for missing column")
	}
	if !strings.Contains(err.Error(), "credits") {
		t.Errorf("expected error to mention missing column, got: %s", err.Error())
	}
}

func TestParseCSV_ShortRow(t *testing.T) {
	csv := "grade_point,credits\n8\n"
	rows, err := ParseCSV(strings.NewReader(csv), CGPA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0] != (pair{"8", ""}) {
		t.Errorf("expected short row with empty credits, got %v", rows)
	}
}

func TestParseJSON_Shapes(t *testing.T) {
	bare := `[{"grade_point": 8.4, "credits": "24"}, {"grade_point": null, "credits": 22}]`
	rows, err := ParseJSON(strings.NewReader(bare), CGPA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 || rows[0] != (pair{"8.4", "24"}) || rows[1] != (pair{"", "22"}) {
		t.Errorf("unexpected rows: %v", rows)
	}

	wrapped := `{"subjects": [{"obtained": "80", "maximum": 100}]}`
	rows, err = ParseJSON(strings.NewReader(wrapped), Percentage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0] != (pair{"80", "100"}) {
		t.Errorf("unexpected rows: %v", rows)
	}

	if _, err := ParseJSON(strings.NewReader(`[{"obtained": `), Percentage); err == nil {
		t.Error("expected error for truncated JSON")
	}
}

func TestParseYAML_Shapes(t *testing.T) {
	bare := "- obtained: 80\n  maximum: 100\n- obtained: \"45\"\n  maximum: 50\n"
	rows, err := ParseYAML(strings.NewReader(bare), Percentage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 || rows[0] != (pair{"80", "100"}) || rows[1] != (pair{"45", "50"}) {
		t.Errorf("unexpected rows: %v", rows)
	}

	wrapped := "semesters:\n  - grade_point: 8.40\n    credits: 24\n  - grade_point: ~\n    credits: 22\n"
	rows, err = ParseYAML(strings.NewReader(wrapped), CGPA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 || rows[0] != (pair{"8.40", "24"}) || rows[1] != (pair{"", "22"}) {
		t.Errorf("unexpected rows: %v", rows)
	}
}

func TestLoadFiles_KeepsPathOrder(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.csv":  "grade_point,credits\n8,20\n",
		"b.json": `[{"grade_point": 9, "credits": 22}]`,
		"c.yaml": "- grade_point: 7\n  credits: 18\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	paths := []string{filepath.Join(dir, "c.yaml"), filepath.Join(dir, "a.csv"), filepath.Join(dir, "b.json")}
	rows, err := LoadFiles(context.Background(), CGPA, paths)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []pair{{"7", "18"}, {"8", "20"}, {"9", "22"}}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d: got %v, want %v", i, rows[i], want[i])
		}
	}
}

func TestLoadFiles_Errors(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "marks.txt")
	if err := os.WriteFile(txt, []byte("80/100"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := LoadFiles(context.Background(), Percentage, []string{txt})
	if err == nil || !strings.Contains(err.Error(), "unsupported file type") {
		t.Errorf("expected unsupported file type error, got %v", err)
	}

	_, err = LoadFiles(context.Background(), Percentage, []string{filepath.Join(dir, "missing.csv")})
	if err == nil || !strings.Contains(err.Error(), "missing.csv") {
		t.Errorf("expected error naming the missing file, got %v", err)
	}
}

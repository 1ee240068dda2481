package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// Calculator selects which engine a run uses.
type Calculator string

const (
	Percentage Calculator = "percentage"
	CGPA       Calculator = "cgpa"
)

// Limits are the default record limits, usually taken from config.
type Limits struct {
	MaxSubjects  int
	MaxSemesters int
}

// RunnerConfig holds all CLI options for one calculation.
type RunnerConfig struct {
	Calculator Calculator
	Records    []string // inline "a/b" records
	Files      []string
	MaxRecords int

	// Output
	JSON    bool
	Verbose bool
}

// stringList collects a repeated flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// ParseArgs parses the arguments after the program name.
// It returns a nil config with nil error when help was requested; usage is written to stderr.
func ParseArgs(args []string, limits Limits, stderr io.Writer) (*RunnerConfig, error) {
	if len(args) == 0 {
		PrintUsage(stderr)
		return nil, fmt.Errorf("missing calculator")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		PrintUsage(stderr)
		return nil, nil
	}

	cfg := &RunnerConfig{Calculator: Calculator(strings.ToLower(args[0]))}
	switch cfg.Calculator {
	case Percentage:
		cfg.MaxRecords = limits.MaxSubjects
	case CGPA:
		cfg.MaxRecords = limits.MaxSemesters
	default:
		fmt.Fprintf(stderr, "Error: unknown calculator %q\n\n", args[0])
		PrintUsage(stderr)
		return nil, fmt.Errorf("unknown calculator %q", args[0])
	}

	var records, files stringList
	fs := flag.NewFlagSet("gradecalc "+string(cfg.Calculator), flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Var(&records, "r", "Inline record a/b (repeatable)")
	fs.Var(&records, "record", "Inline record a/b (repeatable)")
	fs.Var(&files, "f", "Input file: .csv, .json, .yaml (repeatable)")
	fs.Var(&files, "file", "Input file: .csv, .json, .yaml (repeatable)")
	fs.IntVar(&cfg.MaxRecords, "max", cfg.MaxRecords, "Maximum number of records")
	fs.BoolVar(&cfg.JSON, "json", false, "Print result as JSON")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.Usage = func() { PrintUsage(stderr) }

	if err := fs.Parse(normalizeArgs(fs, args[1:])); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil
		}
		return nil, err
	}

	cfg.Records = records
	cfg.Files = files

	if len(cfg.Records) == 0 && len(cfg.Files) == 0 {
		fmt.Fprintf(stderr, "Error: provide records with -r or input files with -f\n\n")
		PrintUsage(stderr)
		return nil, fmt.Errorf("no input")
	}

	return cfg, nil
}

// normalizeArgs rewrites bare records as -r flags so records and flags may be
// mixed in any order and keep their command-line order. Tokens that start with
// a minus followed by a digit or dot are records ("-5/100"); everything after
// "--" is a record.
func normalizeArgs(fs *flag.FlagSet, args []string) []string {
	out := make([]string, 0, len(args)*2)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			for _, rec := range args[i+1:] {
				out = append(out, "-r", rec)
			}
			return out
		case isFlag(arg):
			out = append(out, arg)
			if takesValue(fs, arg) && i+1 < len(args) {
				i++
				out = append(out, args[i])
			}
		default:
			out = append(out, "-r", arg)
		}
	}
	return out
}

func isFlag(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	c := arg[1]
	return !(c >= '0' && c <= '9') && c != '.'
}

// takesValue reports whether arg names a non-boolean flag given without "=value".
func takesValue(fs *flag.FlagSet, arg string) bool {
	name := strings.TrimLeft(arg, "-")
	if strings.Contains(name, "=") {
		return false
	}
	f := fs.Lookup(name)
	if f == nil {
		return false
	}
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return false
	}
	return true
}

// PrintUsage prints the help message.
func PrintUsage(w io.Writer) {
	fmt.Fprint(w, `Grade calculator

Usage: gradecalc <percentage|cgpa> [flags] [a/b ...]
       gradecalc help    (show this message)

CALCULATORS:
  percentage               records are obtained/maximum marks per subject
  cgpa                     records are grade_point/credits per semester

INPUT:
  -r, -record <a/b>        Inline record (repeatable)
  -f, -file <path>         Input file (repeatable). Formats by extension:
                             .csv          header: obtained,maximum or grade_point,credits
                             .json         array of records or {"subjects": [...]}
                             .yaml, .yml   same shape as JSON
  -max <n>                 Maximum number of records (default: MAX_SUBJECTS / MAX_SEMESTERS)
  --                       Treat every following argument as a record

OUTPUT:
  -json                    Print result as JSON
  -v, -verbose             Verbose output

EXAMPLES:
  gradecalc percentage 80/100 45/50
  gradecalc cgpa -r 8.4/24 -r 7.9/22
  gradecalc cgpa -f semesters.yaml -json
  gradecalc percentage 80/100 -5/100 -json    (records and flags in any order)

`)
}

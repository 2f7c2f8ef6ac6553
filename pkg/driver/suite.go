package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"imp/interpreter-go/pkg/interpreter"
	"imp/interpreter-go/pkg/lexer"
	"imp/interpreter-go/pkg/parser"
)

// Fault names a suite entry may expect instead of a final environment.
const (
	FaultLex            = "lex"
	FaultParse          = "parse"
	FaultUnboundVar     = "unbound-variable"
	FaultDivisionByZero = "division-by-zero"
)

// Suite is a YAML-described list of IMP programs with expected outcomes.
type Suite struct {
	Name     string     `yaml:"name"`
	Programs []*Program `yaml:"programs"`
}

// Program is one suite entry: inline source or a file path, plus either
// the expected final bindings or the name of the expected fault.
type Program struct {
	Name   string           `yaml:"name"`
	Source string           `yaml:"source"`
	File   string           `yaml:"file"`
	Want   map[string]int64 `yaml:"want"`
	Fault  string           `yaml:"fault"`
}

// Result reports one program's outcome; an empty Problems slice means the
// program behaved as its suite entry expects.
type Result struct {
	Name     string
	Problems []string
}

// ValidationError aggregates suite validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "suite: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("suite validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadSuite parses a suite file from disk, returning a validated suite.
func LoadSuite(path string) (*Suite, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("suite: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var suite Suite
	if err := decoder.Decode(&suite); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("suite: %s is empty", path)
		}
		return nil, fmt.Errorf("suite: parse %s: %w", path, err)
	}
	if err := suite.validate(); err != nil {
		return nil, err
	}
	return &suite, nil
}

func (s *Suite) validate() error {
	var errs ValidationError
	if s.Name == "" {
		errs.Issues = append(errs.Issues, "name must be provided")
	}
	if len(s.Programs) == 0 {
		errs.Issues = append(errs.Issues, "programs must not be empty")
	}
	for i, program := range s.Programs {
		where := fmt.Sprintf("programs[%d]", i)
		if program == nil {
			errs.Issues = append(errs.Issues, where+" must be a mapping")
			continue
		}
		if program.Name == "" {
			errs.Issues = append(errs.Issues, where+": name must be provided")
		}
		if (program.Source == "") == (program.File == "") {
			errs.Issues = append(errs.Issues, where+": exactly one of source and file must be set")
		}
		switch program.Fault {
		case "", FaultLex, FaultParse, FaultUnboundVar, FaultDivisionByZero:
		default:
			errs.Issues = append(errs.Issues, fmt.Sprintf("%s: unknown fault %q", where, program.Fault))
		}
		if program.Fault != "" && len(program.Want) > 0 {
			errs.Issues = append(errs.Issues, where+": want and fault are mutually exclusive")
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// Run executes every program in the suite. File entries resolve relative
// to baseDir.
func (s *Suite) Run(baseDir string) ([]Result, error) {
	results := make([]Result, 0, len(s.Programs))
	for _, program := range s.Programs {
		result := Result{Name: program.Name}
		source := program.Source
		if program.File != "" {
			data, err := os.ReadFile(filepath.Join(baseDir, program.File))
			if err != nil {
				return nil, fmt.Errorf("suite: read %s: %w", program.File, err)
			}
			source = string(data)
		}
		env, err := RunSource(source)
		if program.Fault != "" {
			if got := classifyFault(err); got != program.Fault {
				result.Problems = append(result.Problems, fmt.Sprintf("expected %s fault, got %v", program.Fault, err))
			}
			results = append(results, result)
			continue
		}
		if err != nil {
			result.Problems = append(result.Problems, err.Error())
			results = append(results, result)
			continue
		}
		for name, want := range program.Want {
			got, ok := env[name]
			if !ok {
				result.Problems = append(result.Problems, fmt.Sprintf("variable %s is unbound, want %d", name, want))
				continue
			}
			if got != want {
				result.Problems = append(result.Problems, fmt.Sprintf("variable %s = %d, want %d", name, got, want))
			}
		}
		for name := range env {
			if _, ok := program.Want[name]; !ok {
				result.Problems = append(result.Problems, fmt.Sprintf("unexpected variable %s = %d", name, env[name]))
			}
		}
		results = append(results, result)
	}
	return results, nil
}

// classifyFault maps a run error to the fault name a suite entry uses.
func classifyFault(err error) string {
	var lexErr *lexer.IllegalCharacterError
	var unbound *interpreter.UnboundVariableError
	var divZero *interpreter.DivisionByZeroError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &lexErr):
		return FaultLex
	case errors.Is(err, parser.ErrNoParse):
		return FaultParse
	case errors.As(err, &unbound):
		return FaultUnboundVar
	case errors.As(err, &divZero):
		return FaultDivisionByZero
	default:
		return ""
	}
}

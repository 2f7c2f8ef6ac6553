// Package driver wires the lexer, parser, and interpreter into
// whole-program entry points: run one source file, or run a YAML-described
// suite of programs against expected results.
package driver

import (
	"fmt"
	"os"

	"imp/interpreter-go/pkg/interpreter"
	"imp/interpreter-go/pkg/lexer"
	"imp/interpreter-go/pkg/parser"
)

// RunSource lexes, parses, and evaluates IMP source text, returning the
// final variable bindings.
func RunSource(source string) (map[string]int64, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	program, err := parser.ParseProgram(tokens)
	if err != nil {
		return nil, err
	}
	interp := interpreter.New()
	if err := interp.Run(program); err != nil {
		return nil, err
	}
	return interp.Environment().Snapshot(), nil
}

// RunFile reads and runs one IMP program from disk.
func RunFile(path string) (map[string]int64, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("driver: read %s: %w", path, err)
	}
	return RunSource(string(source))
}

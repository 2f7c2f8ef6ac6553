package interpreter

import "fmt"

// Evaluation faults are fatal to the run in progress: the interpreter
// unwinds immediately with no partial-result recovery. Callers separate
// them from other errors with errors.As.

// UnboundVariableError reports a read of a variable that was never
// assigned. Reads never default to zero.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("undefined variable '%s'", e.Name)
}

// DivisionByZeroError reports a division whose right operand evaluated
// to zero.
type DivisionByZeroError struct {
	Dividend int64
}

func (e *DivisionByZeroError) Error() string {
	return "division by zero"
}

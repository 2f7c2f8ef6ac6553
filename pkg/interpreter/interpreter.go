// Package interpreter walks an IMP syntax tree, mutating a single
// variable environment. Evaluation is synchronous and single-threaded;
// a non-terminating while loop blocks the caller by design.
package interpreter

import (
	"fmt"

	"imp/interpreter-go/pkg/ast"
	"imp/interpreter-go/pkg/runtime"
)

// Interpreter drives evaluation of IMP AST nodes against one environment.
type Interpreter struct {
	env *runtime.Environment
}

// New returns an interpreter with an empty environment.
func New() *Interpreter {
	return &Interpreter{env: runtime.NewEnvironment()}
}

// Environment returns the interpreter's environment.
func (i *Interpreter) Environment() *runtime.Environment {
	return i.env
}

// Run executes a whole program. On an evaluation fault the environment
// retains every assignment completed before the fault.
func (i *Interpreter) Run(program ast.Statement) error {
	return i.evaluateStatement(program)
}

func (i *Interpreter) evaluateStatement(node ast.Statement) error {
	switch n := node.(type) {
	case *ast.Assign:
		value, err := i.evaluateAexp(n.Value)
		if err != nil {
			return err
		}
		i.env.Define(n.Name, value)
		return nil
	case *ast.Sequence:
		if err := i.evaluateStatement(n.First); err != nil {
			return err
		}
		return i.evaluateStatement(n.Second)
	case *ast.If:
		condition, err := i.evaluateBexp(n.Condition)
		if err != nil {
			return err
		}
		if condition {
			return i.evaluateStatement(n.Then)
		}
		if n.Else != nil {
			return i.evaluateStatement(n.Else)
		}
		return nil
	case *ast.While:
		for {
			condition, err := i.evaluateBexp(n.Condition)
			if err != nil {
				return err
			}
			if !condition {
				return nil
			}
			if err := i.evaluateStatement(n.Body); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unsupported statement type: %T", node)
	}
}

// evaluateAexp reduces an arithmetic expression to an integer, evaluating
// operands left to right. Division truncates toward zero.
func (i *Interpreter) evaluateAexp(node ast.Aexp) (int64, error) {
	switch n := node.(type) {
	case *ast.IntLiteral:
		return n.Value, nil
	case *ast.Variable:
		value, ok := i.env.Get(n.Name)
		if !ok {
			return 0, &UnboundVariableError{Name: n.Name}
		}
		return value, nil
	case *ast.BinaryOp:
		left, err := i.evaluateAexp(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := i.evaluateAexp(n.Right)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case "+":
			return left + right, nil
		case "-":
			return left - right, nil
		case "*":
			return left * right, nil
		case "/":
			if right == 0 {
				return 0, &DivisionByZeroError{Dividend: left}
			}
			return left / right, nil
		default:
			return 0, fmt.Errorf("unknown arithmetic operator: %s", n.Op)
		}
	default:
		return 0, fmt.Errorf("unsupported arithmetic expression type: %T", node)
	}
}

// evaluateBexp reduces a boolean expression to a bool. And and Or
// short-circuit; relation operands evaluate left to right.
func (i *Interpreter) evaluateBexp(node ast.Bexp) (bool, error) {
	switch n := node.(type) {
	case *ast.Relation:
		left, err := i.evaluateAexp(n.Left)
		if err != nil {
			return false, err
		}
		right, err := i.evaluateAexp(n.Right)
		if err != nil {
			return false, err
		}
		switch n.Op {
		case "<":
			return left < right, nil
		case "<=":
			return left <= right, nil
		case ">":
			return left > right, nil
		case ">=":
			return left >= right, nil
		case "=":
			return left == right, nil
		case "!=":
			return left != right, nil
		default:
			return false, fmt.Errorf("unknown relational operator: %s", n.Op)
		}
	case *ast.And:
		left, err := i.evaluateBexp(n.Left)
		if err != nil || !left {
			return false, err
		}
		return i.evaluateBexp(n.Right)
	case *ast.Or:
		left, err := i.evaluateBexp(n.Left)
		if err != nil || left {
			return left, err
		}
		return i.evaluateBexp(n.Right)
	case *ast.Not:
		inner, err := i.evaluateBexp(n.Inner)
		if err != nil {
			return false, err
		}
		return !inner, nil
	default:
		return false, fmt.Errorf("unsupported boolean expression type: %T", node)
	}
}

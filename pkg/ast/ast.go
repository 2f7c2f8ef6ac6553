// Package ast defines the IMP syntax tree: arithmetic expressions,
// boolean expressions, and statements as three closed variant sets.
// Nodes are immutable once built.
package ast

import "fmt"

// Aexp is an arithmetic expression node.
type Aexp interface {
	fmt.Stringer
	aexpNode()
}

// Bexp is a boolean expression node. Aexp and Bexp are disjoint, so a
// chained relation like "x < 10 and 30" fails at parse time rather than
// at evaluation.
type Bexp interface {
	fmt.Stringer
	bexpNode()
}

// Statement is an IMP statement node.
type Statement interface {
	fmt.Stringer
	statementNode()
}

// IntLiteral is a literal integer.
type IntLiteral struct {
	Value int64
}

// Variable is a reference to a named variable.
type Variable struct {
	Name string
}

// BinaryOp applies an arithmetic operator (+ - * /) to two operands.
type BinaryOp struct {
	Op    string
	Left  Aexp
	Right Aexp
}

// Relation compares two arithmetic expressions (< <= > >= = !=).
type Relation struct {
	Op    string
	Left  Aexp
	Right Aexp
}

// And is the short-circuiting boolean conjunction.
type And struct {
	Left  Bexp
	Right Bexp
}

// Or is the short-circuiting boolean disjunction.
type Or struct {
	Left  Bexp
	Right Bexp
}

// Not negates a boolean expression.
type Not struct {
	Inner Bexp
}

// Assign binds the value of an arithmetic expression to a variable.
type Assign struct {
	Name  string
	Value Aexp
}

// Sequence runs First to completion, then Second.
type Sequence struct {
	First  Statement
	Second Statement
}

// If evaluates its condition once and runs exactly one branch. Else is
// nil when the program has no else branch, in which case a false
// condition is a no-op.
type If struct {
	Condition Bexp
	Then      Statement
	Else      Statement
}

// While re-evaluates its condition before each iteration of Body.
type While struct {
	Condition Bexp
	Body      Statement
}

func (*IntLiteral) aexpNode() {}
func (*Variable) aexpNode()   {}
func (*BinaryOp) aexpNode()   {}

func (*Relation) bexpNode() {}
func (*And) bexpNode()      {}
func (*Or) bexpNode()       {}
func (*Not) bexpNode()      {}

func (*Assign) statementNode()   {}
func (*Sequence) statementNode() {}
func (*If) statementNode()       {}
func (*While) statementNode()    {}

func (n *IntLiteral) String() string {
	return fmt.Sprintf("%d", n.Value)
}

func (n *Variable) String() string {
	return n.Name
}

func (n *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left, n.Op, n.Right)
}

func (n *Relation) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left, n.Op, n.Right)
}

func (n *And) String() string {
	return fmt.Sprintf("(%s and %s)", n.Left, n.Right)
}

func (n *Or) String() string {
	return fmt.Sprintf("(%s or %s)", n.Left, n.Right)
}

func (n *Not) String() string {
	return fmt.Sprintf("(not %s)", n.Inner)
}

func (n *Assign) String() string {
	return fmt.Sprintf("%s := %s", n.Name, n.Value)
}

func (n *Sequence) String() string {
	return fmt.Sprintf("%s; %s", n.First, n.Second)
}

func (n *If) String() string {
	if n.Else != nil {
		return fmt.Sprintf("if %s then %s else %s end", n.Condition, n.Then, n.Else)
	}
	return fmt.Sprintf("if %s then %s end", n.Condition, n.Then)
}

func (n *While) String() string {
	return fmt.Sprintf("while %s do %s end", n.Condition, n.Body)
}

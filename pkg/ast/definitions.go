package ast

// Constructor helpers keep grammar actions and tests terse.

func NewIntLiteral(value int64) *IntLiteral {
	return &IntLiteral{Value: value}
}

func NewVariable(name string) *Variable {
	return &Variable{Name: name}
}

func NewBinaryOp(op string, left, right Aexp) *BinaryOp {
	return &BinaryOp{Op: op, Left: left, Right: right}
}

func NewRelation(op string, left, right Aexp) *Relation {
	return &Relation{Op: op, Left: left, Right: right}
}

func NewAnd(left, right Bexp) *And {
	return &And{Left: left, Right: right}
}

func NewOr(left, right Bexp) *Or {
	return &Or{Left: left, Right: right}
}

func NewNot(inner Bexp) *Not {
	return &Not{Inner: inner}
}

func NewAssign(name string, value Aexp) *Assign {
	return &Assign{Name: name, Value: value}
}

func NewSequence(first, second Statement) *Sequence {
	return &Sequence{First: first, Second: second}
}

// NewIf builds an if statement; elseBranch may be nil when the program
// has no else branch.
func NewIf(condition Bexp, thenBranch, elseBranch Statement) *If {
	return &If{Condition: condition, Then: thenBranch, Else: elseBranch}
}

func NewWhile(condition Bexp, body Statement) *While {
	return &While{Condition: condition, Body: body}
}

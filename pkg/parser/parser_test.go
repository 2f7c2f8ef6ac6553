package parser

import (
	"errors"
	"reflect"
	"testing"

	"imp/interpreter-go/pkg/ast"
	"imp/interpreter-go/pkg/combinator"
	"imp/interpreter-go/pkg/lexer"
	"imp/interpreter-go/pkg/token"
)

func tokensOf(t *testing.T, source string) []token.Token {
	t.Helper()
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		t.Fatalf("tokenize %q: %v", source, err)
	}
	return tokens
}

func parseAexp(t *testing.T, source string) ast.Aexp {
	t.Helper()
	res := combinator.Phrase(Aexp())(tokensOf(t, source), 0)
	if !res.OK {
		t.Fatalf("aexp %q did not parse", source)
	}
	return res.Value
}

func parseBexp(t *testing.T, source string) ast.Bexp {
	t.Helper()
	res := combinator.Phrase(Bexp())(tokensOf(t, source), 0)
	if !res.OK {
		t.Fatalf("bexp %q did not parse", source)
	}
	return res.Value
}

func parseStatement(t *testing.T, source string) ast.Statement {
	t.Helper()
	program, err := ParseProgram(tokensOf(t, source))
	if err != nil {
		t.Fatalf("program %q did not parse: %v", source, err)
	}
	return program
}

func TestAexpValues(t *testing.T) {
	if got := parseAexp(t, "12"); !reflect.DeepEqual(got, ast.NewIntLiteral(12)) {
		t.Fatalf("unexpected AST %#v", got)
	}
	if got := parseAexp(t, "x"); !reflect.DeepEqual(got, ast.NewVariable("x")) {
		t.Fatalf("unexpected AST %#v", got)
	}
}

func TestAexpGroupingIsTransparent(t *testing.T) {
	if got := parseAexp(t, "(12)"); !reflect.DeepEqual(got, ast.NewIntLiteral(12)) {
		t.Fatalf("unexpected AST %#v", got)
	}
	if got := parseAexp(t, "((x))"); !reflect.DeepEqual(got, ast.NewVariable("x")) {
		t.Fatalf("unexpected AST %#v", got)
	}
}

func TestAexpPrecedence(t *testing.T) {
	want := ast.NewBinaryOp("+",
		ast.NewIntLiteral(2),
		ast.NewBinaryOp("*", ast.NewIntLiteral(3), ast.NewIntLiteral(4)))
	if got := parseAexp(t, "2 + 3 * 4"); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected AST %v", got)
	}

	want = ast.NewBinaryOp("+",
		ast.NewBinaryOp("*", ast.NewIntLiteral(2), ast.NewIntLiteral(3)),
		ast.NewIntLiteral(4))
	if got := parseAexp(t, "2 * 3 + 4"); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected AST %v", got)
	}
}

func TestAexpLeftAssociativity(t *testing.T) {
	want := ast.NewBinaryOp("-",
		ast.NewBinaryOp("-", ast.NewIntLiteral(1), ast.NewIntLiteral(2)),
		ast.NewIntLiteral(3))
	if got := parseAexp(t, "1 - 2 - 3"); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected AST %v", got)
	}
}

func TestAexpGroupingOverridesPrecedence(t *testing.T) {
	want := ast.NewBinaryOp("*",
		ast.NewBinaryOp("+", ast.NewIntLiteral(1), ast.NewIntLiteral(2)),
		ast.NewIntLiteral(3))
	if got := parseAexp(t, "(1 + 2) * 3"); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected AST %v", got)
	}
}

func TestBexpRelation(t *testing.T) {
	want := ast.NewRelation("<", ast.NewVariable("x"), ast.NewIntLiteral(10))
	if got := parseBexp(t, "x < 10"); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected AST %v", got)
	}
}

func TestBexpRelationsDoNotChain(t *testing.T) {
	res := combinator.Phrase(Bexp())(tokensOf(t, "a < b < c"), 0)
	if res.OK {
		t.Fatalf("chained relation parsed: %v", res.Value)
	}
}

func TestBexpRejectsBareAexpOperand(t *testing.T) {
	// "30" is not a Bexp, so nothing valid can follow "and".
	res := combinator.Phrase(Bexp())(tokensOf(t, "x < 10 and 30"), 0)
	if res.OK {
		t.Fatalf("bare arithmetic operand parsed as Bexp: %v", res.Value)
	}
}

func TestBexpPrecedence(t *testing.T) {
	// and binds tighter than or.
	want := ast.NewOr(
		ast.NewAnd(
			ast.NewRelation("<", ast.NewVariable("a"), ast.NewIntLiteral(1)),
			ast.NewRelation("<", ast.NewVariable("b"), ast.NewIntLiteral(2))),
		ast.NewRelation("<", ast.NewVariable("c"), ast.NewIntLiteral(3)))
	if got := parseBexp(t, "a < 1 and b < 2 or c < 3"); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected AST %v", got)
	}
}

func TestBexpNotBindsToTerm(t *testing.T) {
	want := ast.NewAnd(
		ast.NewNot(ast.NewRelation("=", ast.NewVariable("x"), ast.NewIntLiteral(1))),
		ast.NewRelation("=", ast.NewVariable("y"), ast.NewIntLiteral(2)))
	if got := parseBexp(t, "not x = 1 and y = 2"); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected AST %v", got)
	}
}

func TestBexpGroupedOr(t *testing.T) {
	want := ast.NewAnd(
		ast.NewRelation("<", ast.NewVariable("a"), ast.NewIntLiteral(1)),
		ast.NewOr(
			ast.NewRelation("<", ast.NewVariable("b"), ast.NewIntLiteral(2)),
			ast.NewRelation("<", ast.NewVariable("c"), ast.NewIntLiteral(3))))
	if got := parseBexp(t, "a < 1 and (b < 2 or c < 3)"); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected AST %v", got)
	}
}

func TestAssignStatement(t *testing.T) {
	want := ast.NewAssign("x", ast.NewBinaryOp("+", ast.NewVariable("x"), ast.NewIntLiteral(1)))
	if got := parseStatement(t, "x := x + 1"); !reflect.DeepEqual(got, ast.Statement(want)) {
		t.Fatalf("unexpected AST %v", got)
	}
}

func TestStatementSequence(t *testing.T) {
	want := ast.NewSequence(
		ast.NewAssign("x", ast.NewIntLiteral(1)),
		ast.NewAssign("y", ast.NewIntLiteral(2)))
	if got := parseStatement(t, "x := 1; y := 2"); !reflect.DeepEqual(got, ast.Statement(want)) {
		t.Fatalf("unexpected AST %v", got)
	}
}

func TestStatementSequenceFoldsLeft(t *testing.T) {
	want := ast.NewSequence(
		ast.NewSequence(
			ast.NewAssign("a", ast.NewIntLiteral(1)),
			ast.NewAssign("b", ast.NewIntLiteral(2))),
		ast.NewAssign("c", ast.NewIntLiteral(3)))
	if got := parseStatement(t, "a := 1; b := 2; c := 3"); !reflect.DeepEqual(got, ast.Statement(want)) {
		t.Fatalf("unexpected AST %v", got)
	}
}

func TestIfStatement(t *testing.T) {
	want := ast.NewIf(
		ast.NewRelation("<", ast.NewVariable("x"), ast.NewIntLiteral(10)),
		ast.NewAssign("y", ast.NewIntLiteral(1)),
		ast.NewAssign("y", ast.NewIntLiteral(2)))
	got := parseStatement(t, "if x < 10 then y := 1 else y := 2 end")
	if !reflect.DeepEqual(got, ast.Statement(want)) {
		t.Fatalf("unexpected AST %v", got)
	}
}

func TestIfStatementWithoutElse(t *testing.T) {
	got := parseStatement(t, "if x < 10 then y := 1 end")
	stmt, ok := got.(*ast.If)
	if !ok {
		t.Fatalf("unexpected AST %#v", got)
	}
	if stmt.Else != nil {
		t.Fatalf("expected absent else branch, got %v", stmt.Else)
	}
}

func TestWhileStatement(t *testing.T) {
	want := ast.NewWhile(
		ast.NewRelation("<", ast.NewVariable("x"), ast.NewIntLiteral(3)),
		ast.NewAssign("x", ast.NewBinaryOp("+", ast.NewVariable("x"), ast.NewIntLiteral(1))))
	got := parseStatement(t, "while x < 3 do x := x + 1 end")
	if !reflect.DeepEqual(got, ast.Statement(want)) {
		t.Fatalf("unexpected AST %v", got)
	}
}

func TestNestedStatements(t *testing.T) {
	source := "while x < 10 do if x < 5 then x := x + 1 else x := x + 2 end end"
	got := parseStatement(t, source)
	loop, ok := got.(*ast.While)
	if !ok {
		t.Fatalf("unexpected AST %#v", got)
	}
	if _, ok := loop.Body.(*ast.If); !ok {
		t.Fatalf("unexpected loop body %#v", loop.Body)
	}
}

func TestParseProgramRejectsTrailingTokens(t *testing.T) {
	_, err := ParseProgram(tokensOf(t, "x := 1 y"))
	if !errors.Is(err, ErrNoParse) {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestParseProgramRejectsEmptyInput(t *testing.T) {
	if _, err := ParseProgram(nil); !errors.Is(err, ErrNoParse) {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestParseProgramRejectsDanglingSemicolon(t *testing.T) {
	if _, err := ParseProgram(tokensOf(t, "x := 1;")); !errors.Is(err, ErrNoParse) {
		t.Fatalf("unexpected error %v", err)
	}
}

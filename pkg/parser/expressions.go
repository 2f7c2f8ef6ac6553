package parser

import (
	"strconv"

	"imp/interpreter-go/pkg/ast"
	"imp/interpreter-go/pkg/combinator"
	"imp/interpreter-go/pkg/token"
)

var (
	identifier = combinator.TagParser(token.Identifier)

	// number converts an integer token to its value. The lexer only tags
	// digit runs as integers, so the remaining failure mode is overflow,
	// which ParseInt clamps to the int64 limits.
	number = combinator.Map(combinator.TagParser(token.Integer), func(text string) int64 {
		value, _ := strconv.ParseInt(text, 10, 64)
		return value
	})

	aexpLevels = [][]string{
		{"*", "/"},
		{"+", "-"},
	}

	relationOps = []string{"<", "<=", ">", ">=", "=", "!="}

	bexpLevels = [][]string{
		{"and"},
		{"or"},
	}
)

// Grammar rules are zero-argument factories rather than package-level
// parser values: groups reference the top-level expression rules, and a
// factory plus combinator.Lazy lets those forward references resolve
// without infinite recursion at definition time.

func aexpValue() combinator.Parser[ast.Aexp] {
	literal := combinator.Map(number, func(value int64) ast.Aexp {
		return ast.NewIntLiteral(value)
	})
	variable := combinator.Map(identifier, func(name string) ast.Aexp {
		return ast.NewVariable(name)
	})
	return combinator.Alternate(literal, variable)
}

func aexpTerm() combinator.Parser[ast.Aexp] {
	return combinator.Alternate(aexpValue(), group(Aexp))
}

// Aexp returns the arithmetic expression parser: terms folded through the
// arithmetic precedence levels, so * and / bind tighter than + and -.
func Aexp() combinator.Parser[ast.Aexp] {
	return precedence(aexpTerm(), aexpLevels, func(op string) func(ast.Aexp, ast.Aexp) ast.Aexp {
		return func(left, right ast.Aexp) ast.Aexp {
			return ast.NewBinaryOp(op, left, right)
		}
	})
}

// bexpRelation parses a single comparison between two arithmetic
// expressions. Relations deliberately bypass the precedence machinery:
// the result is a Bexp, not an Aexp, so chained relations such as
// "a < b < c" cannot parse.
func bexpRelation() combinator.Parser[ast.Bexp] {
	relation := combinator.Concat(combinator.Concat(Aexp(), anyOperator(relationOps)), Aexp())
	return combinator.Map(relation, func(p combinator.Pair[combinator.Pair[ast.Aexp, string], ast.Aexp]) ast.Bexp {
		return ast.NewRelation(p.First.Second, p.First.First, p.Second)
	})
}

func bexpNot() combinator.Parser[ast.Bexp] {
	negated := combinator.Concat(keyword("not"), combinator.Lazy(bexpTerm))
	return combinator.Map(negated, func(p combinator.Pair[string, ast.Bexp]) ast.Bexp {
		return ast.NewNot(p.Second)
	})
}

func bexpTerm() combinator.Parser[ast.Bexp] {
	return combinator.Alternate(combinator.Alternate(bexpNot(), bexpRelation()), group(Bexp))
}

// Bexp returns the boolean expression parser; "and" binds tighter than
// "or".
func Bexp() combinator.Parser[ast.Bexp] {
	return precedence(bexpTerm(), bexpLevels, func(op string) func(ast.Bexp, ast.Bexp) ast.Bexp {
		return func(left, right ast.Bexp) ast.Bexp {
			if op == "and" {
				return ast.NewAnd(left, right)
			}
			return ast.NewOr(left, right)
		}
	})
}

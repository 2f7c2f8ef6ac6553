// Package parser assembles the IMP grammar from the combinator engine and
// turns token streams into syntax trees.
package parser

import (
	"errors"

	"imp/interpreter-go/pkg/ast"
	"imp/interpreter-go/pkg/combinator"
	"imp/interpreter-go/pkg/token"
)

// ErrNoParse reports that a token stream is not a valid IMP program.
// Parse failure carries no location: combinators signal failure by
// short-circuiting, not by raising diagnostics.
var ErrNoParse = errors.New("parser: program did not parse")

// keyword matches one reserved word or operator token.
func keyword(kw string) combinator.Parser[string] {
	return combinator.Reserved(kw, token.Reserved)
}

// anyOperator matches any one of the given reserved operator texts.
func anyOperator(ops []string) combinator.Parser[string] {
	parser := keyword(ops[0])
	for _, op := range ops[1:] {
		parser = combinator.Alternate(parser, keyword(op))
	}
	return parser
}

// precedence folds an element parser through ordered operator levels,
// tightest binding first. Each level becomes one Fold over an Alternate
// of that level's operators, so every level associates left to right and
// earlier levels group before later ones. Right associativity is not
// supported; IMP has no right-associative operators.
func precedence[T any](element combinator.Parser[T], levels [][]string, combine func(op string) func(T, T) T) combinator.Parser[T] {
	level := func(ops []string) combinator.Parser[func(T, T) T] {
		return combinator.Map(anyOperator(ops), combine)
	}
	parser := combinator.Fold(element, level(levels[0]))
	for _, ops := range levels[1:] {
		parser = combinator.Fold(parser, level(ops))
	}
	return parser
}

// group parses '(' inner ')' and yields the inner value; the inner rule
// is built lazily because groups and the top-level expression rules are
// mutually recursive.
func group[T any](inner func() combinator.Parser[T]) combinator.Parser[T] {
	parens := combinator.Concat(combinator.Concat(keyword("("), combinator.Lazy(inner)), keyword(")"))
	return combinator.Map(parens, func(p combinator.Pair[combinator.Pair[string, T], string]) T {
		return p.First.Second
	})
}

// Program returns the whole-program parser: a statement list that must
// consume every token.
func Program() combinator.Parser[ast.Statement] {
	return combinator.Phrase(StatementList())
}

// ParseProgram parses a complete token stream into a statement tree.
func ParseProgram(tokens []token.Token) (ast.Statement, error) {
	result := Program()(tokens, 0)
	if !result.OK {
		return nil, ErrNoParse
	}
	return result.Value, nil
}

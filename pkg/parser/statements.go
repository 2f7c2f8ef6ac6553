package parser

import (
	"imp/interpreter-go/pkg/ast"
	"imp/interpreter-go/pkg/combinator"
)

func assignStatement() combinator.Parser[ast.Statement] {
	assign := combinator.Concat(combinator.Concat(identifier, keyword(":=")), Aexp())
	return combinator.Map(assign, func(p combinator.Pair[combinator.Pair[string, string], ast.Aexp]) ast.Statement {
		return ast.NewAssign(p.First.First, p.Second)
	})
}

func ifStatement() combinator.Parser[ast.Statement] {
	elseClause := combinator.Optional(combinator.Concat(keyword("else"), combinator.Lazy(StatementList)))
	form := combinator.Concat(
		combinator.Concat(
			combinator.Concat(
				combinator.Concat(
					combinator.Concat(keyword("if"), Bexp()),
					keyword("then")),
				combinator.Lazy(StatementList)),
			elseClause),
		keyword("end"))
	return combinator.Map(form, func(p combinator.Pair[combinator.Pair[combinator.Pair[combinator.Pair[combinator.Pair[string, ast.Bexp], string], ast.Statement], combinator.Maybe[combinator.Pair[string, ast.Statement]]], string]) ast.Statement {
		condition := p.First.First.First.First.Second
		thenBranch := p.First.First.Second
		var elseBranch ast.Statement
		if p.First.Second.Present {
			elseBranch = p.First.Second.Value.Second
		}
		return ast.NewIf(condition, thenBranch, elseBranch)
	})
}

func whileStatement() combinator.Parser[ast.Statement] {
	form := combinator.Concat(
		combinator.Concat(
			combinator.Concat(
				combinator.Concat(keyword("while"), Bexp()),
				keyword("do")),
			combinator.Lazy(StatementList)),
		keyword("end"))
	return combinator.Map(form, func(p combinator.Pair[combinator.Pair[combinator.Pair[combinator.Pair[string, ast.Bexp], string], ast.Statement], string]) ast.Statement {
		return ast.NewWhile(p.First.First.First.Second, p.First.Second)
	})
}

func statement() combinator.Parser[ast.Statement] {
	return combinator.Alternate(combinator.Alternate(assignStatement(), ifStatement()), whileStatement())
}

// StatementList parses one or more statements separated by ';', folding
// them left to right into nested Sequence nodes in source order.
func StatementList() combinator.Parser[ast.Statement] {
	separator := combinator.Map(keyword(";"), func(string) func(ast.Statement, ast.Statement) ast.Statement {
		return func(first, second ast.Statement) ast.Statement {
			return ast.NewSequence(first, second)
		}
	})
	return combinator.Fold(statement(), separator)
}

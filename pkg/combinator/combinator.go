// Package combinator implements a generic backtracking parser-combinator
// engine over token streams.
//
// A Parser is a pure function from a token slice and a start position to a
// Result. Parsers never mutate the token slice, hold no state between
// invocations, and may be stored and reused. Failed branches leave no
// trace: Alternate retries its second parser at the original position.
// Backtracking is unbounded and unmemoized, which can go exponential on
// pathological grammars; the grammars built here stay small enough for
// that not to matter.
package combinator

import "imp/interpreter-go/pkg/token"

// Result is the outcome of applying a parser: either a value plus the
// position of the next unconsumed token, or failure. Failure carries no
// payload; OK is the sole success signal so falsy values like zero remain
// legitimate results.
type Result[T any] struct {
	Value T
	Pos   int
	OK    bool
}

// Success builds a successful result at the given next position.
func Success[T any](value T, pos int) Result[T] {
	return Result[T]{Value: value, Pos: pos, OK: true}
}

// Failure builds a failed result.
func Failure[T any]() Result[T] {
	return Result[T]{}
}

// Parser consumes tokens starting at pos. On success the returned
// position is always >= pos.
type Parser[T any] func(tokens []token.Token, pos int) Result[T]

// Pair carries the two values produced by Concat.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Maybe is the explicit present/absent value produced by Optional.
type Maybe[T any] struct {
	Value   T
	Present bool
}

// Reserved matches a single token whose text and tag both equal the given
// values, yielding the token text.
func Reserved(text string, tag token.Tag) Parser[string] {
	return func(tokens []token.Token, pos int) Result[string] {
		if pos < len(tokens) && tokens[pos].Text == text && tokens[pos].Tag == tag {
			return Success(tokens[pos].Text, pos+1)
		}
		return Failure[string]()
	}
}

// TagParser matches a single token with the given tag, yielding its text.
func TagParser(tag token.Tag) Parser[string] {
	return func(tokens []token.Token, pos int) Result[string] {
		if pos < len(tokens) && tokens[pos].Tag == tag {
			return Success(tokens[pos].Text, pos+1)
		}
		return Failure[string]()
	}
}

// Concat runs left, then right at the position left reached, yielding both
// values as a Pair. Either failure fails the whole parser with nothing
// committed.
func Concat[A, B any](left Parser[A], right Parser[B]) Parser[Pair[A, B]] {
	return func(tokens []token.Token, pos int) Result[Pair[A, B]] {
		lr := left(tokens, pos)
		if !lr.OK {
			return Failure[Pair[A, B]]()
		}
		rr := right(tokens, lr.Pos)
		if !rr.OK {
			return Failure[Pair[A, B]]()
		}
		return Success(Pair[A, B]{First: lr.Value, Second: rr.Value}, rr.Pos)
	}
}

// Alternate tries left; on failure it retries right at the original
// position, so a failed left branch consumes nothing.
func Alternate[T any](left, right Parser[T]) Parser[T] {
	return func(tokens []token.Token, pos int) Result[T] {
		if res := left(tokens, pos); res.OK {
			return res
		}
		return right(tokens, pos)
	}
}

// Optional never fails: when p fails it succeeds with an absent Maybe at
// the original position.
func Optional[T any](p Parser[T]) Parser[Maybe[T]] {
	return func(tokens []token.Token, pos int) Result[Maybe[T]] {
		if res := p(tokens, pos); res.OK {
			return Success(Maybe[T]{Value: res.Value, Present: true}, res.Pos)
		}
		return Success(Maybe[T]{}, pos)
	}
}

// Fold parses one element, then repeatedly a separator followed by a
// further element, combining left to right with the function the separator
// parser produced. The loop stops at the first failing separator or
// element, so Fold succeeds whenever the first element does and always
// consumes at least that element's tokens.
func Fold[T any](element Parser[T], separator Parser[func(T, T) T]) Parser[T] {
	return func(tokens []token.Token, pos int) Result[T] {
		first := element(tokens, pos)
		if !first.OK {
			return first
		}
		acc, next := first.Value, first.Pos
		for {
			sep := separator(tokens, next)
			if !sep.OK {
				break
			}
			elem := element(tokens, sep.Pos)
			if !elem.OK {
				break
			}
			acc = sep.Value(acc, elem.Value)
			next = elem.Pos
		}
		return Success(acc, next)
	}
}

// Map transforms a parser's value with f; position and failure pass
// through unchanged.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(tokens []token.Token, pos int) Result[B] {
		res := p(tokens, pos)
		if !res.OK {
			return Failure[B]()
		}
		return Success(f(res.Value), res.Pos)
	}
}

// Lazy defers construction of a parser until its first invocation, so
// mutually recursive grammar rules can reference rules defined later.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	var cached Parser[T]
	return func(tokens []token.Token, pos int) Result[T] {
		if cached == nil {
			cached = build()
		}
		return cached(tokens, pos)
	}
}

// Phrase succeeds only when p succeeds and has consumed every token.
func Phrase[T any](p Parser[T]) Parser[T] {
	return func(tokens []token.Token, pos int) Result[T] {
		res := p(tokens, pos)
		if res.OK && res.Pos == len(tokens) {
			return res
		}
		return Failure[T]()
	}
}

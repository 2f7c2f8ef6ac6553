// Package lexer converts IMP source text into a token stream.
//
// The lexer is table driven: an ordered list of regular expressions is
// tried at the current offset, the first match wins, and matches from
// rules without a tag (whitespace, comments) are discarded.
package lexer

import (
	"fmt"
	"regexp"

	"imp/interpreter-go/pkg/token"
)

// Rule pairs an anchored regular expression with the tag applied to the
// text it matches. Skip rules discard their match instead of emitting a
// token.
type Rule struct {
	pattern *regexp.Regexp
	tag     token.Tag
	skip    bool
}

// NewRule compiles pattern into a rule emitting tokens with the given tag.
// The pattern is anchored at the current scan position.
func NewRule(pattern string, tag token.Tag) Rule {
	return Rule{pattern: regexp.MustCompile(`\A(?:` + pattern + `)`), tag: tag}
}

// NewSkipRule compiles pattern into a rule whose matches are discarded.
func NewSkipRule(pattern string) Rule {
	return Rule{pattern: regexp.MustCompile(`\A(?:` + pattern + `)`), skip: true}
}

// IllegalCharacterError reports source text no lexer rule matches.
type IllegalCharacterError struct {
	Offset int
	Char   byte
}

func (e *IllegalCharacterError) Error() string {
	return fmt.Sprintf("lexer: illegal character %q at offset %d", e.Char, e.Offset)
}

// Lex scans source with the given rules and returns the token stream.
// Rules are tried in order; an offset no rule matches yields an
// IllegalCharacterError.
func Lex(source string, rules []Rule) ([]token.Token, error) {
	var tokens []token.Token
	pos := 0
	for pos < len(source) {
		matched := false
		for _, rule := range rules {
			loc := rule.pattern.FindStringIndex(source[pos:])
			if loc == nil || loc[1] == 0 {
				continue
			}
			if !rule.skip {
				tokens = append(tokens, token.Token{Text: source[pos : pos+loc[1]], Tag: rule.tag})
			}
			pos += loc[1]
			matched = true
			break
		}
		if !matched {
			return nil, &IllegalCharacterError{Offset: pos, Char: source[pos]}
		}
	}
	return tokens, nil
}

// impRules is the IMP token table. Multi-character operators precede their
// single-character prefixes, and word keywords carry a trailing boundary so
// identifiers like "android" do not shed an "and" prefix.
var impRules = []Rule{
	NewSkipRule(`[ \n\t]+`),
	NewSkipRule(`#[^\n]*`),
	NewRule(`:=`, token.Reserved),
	NewRule(`\(`, token.Reserved),
	NewRule(`\)`, token.Reserved),
	NewRule(`;`, token.Reserved),
	NewRule(`\+`, token.Reserved),
	NewRule(`-`, token.Reserved),
	NewRule(`\*`, token.Reserved),
	NewRule(`/`, token.Reserved),
	NewRule(`<=`, token.Reserved),
	NewRule(`<`, token.Reserved),
	NewRule(`>=`, token.Reserved),
	NewRule(`>`, token.Reserved),
	NewRule(`!=`, token.Reserved),
	NewRule(`=`, token.Reserved),
	NewRule(`and\b`, token.Reserved),
	NewRule(`or\b`, token.Reserved),
	NewRule(`not\b`, token.Reserved),
	NewRule(`if\b`, token.Reserved),
	NewRule(`then\b`, token.Reserved),
	NewRule(`else\b`, token.Reserved),
	NewRule(`while\b`, token.Reserved),
	NewRule(`do\b`, token.Reserved),
	NewRule(`end\b`, token.Reserved),
	NewRule(`[0-9]+`, token.Integer),
	NewRule(`[A-Za-z][A-Za-z0-9_]*`, token.Identifier),
}

// Tokenize scans IMP source text with the IMP token table.
func Tokenize(source string) ([]token.Token, error) {
	return Lex(source, impRules)
}

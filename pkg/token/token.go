package token

// Tag classifies a lexical token.
type Tag int

const (
	// Reserved marks keywords and operators.
	Reserved Tag = iota
	// Integer marks literal integers.
	Integer
	// Identifier marks variable names.
	Identifier
)

func (t Tag) String() string {
	switch t {
	case Reserved:
		return "reserved"
	case Integer:
		return "integer"
	case Identifier:
		return "identifier"
	default:
		return "unknown"
	}
}

// Token is one lexical unit: the matched source text and its tag.
// Tokens are produced by the lexer and never mutated afterwards.
type Token struct {
	Text string
	Tag  Tag
}

// Package token defines the tokens produced by the lexer.
package token

// Token is a contiguous run of source text.  Parentheses are always tokens
// of their own.
type Token struct {
	Type Type
	Text string
}

// Type is the kind of a Token.
type Type uint

// Type constants used for the lexer/parser.
const (
	INVALID Type = iota
	EOF

	// Delimiters
	PAREN_L
	PAREN_R

	// ATOM is any other run of non-whitespace characters.  The parser
	// decides whether an atom is a number or a symbol.
	ATOM

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID: "invalid",
		EOF:     "EOF",
		PAREN_L: "(",
		PAREN_R: ")",
		ATOM:    "atom",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// Classify returns the Type of the token text.
func Classify(text string) Type {
	switch text {
	case "":
		return INVALID
	case "(":
		return PAREN_L
	case ")":
		return PAREN_R
	default:
		return ATOM
	}
}

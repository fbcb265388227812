// Package lexer splits source text into tokens.  Every "(" and ")" is a
// token and every other maximal run of non-whitespace characters is an atom.
// There are no string literals and no comments.
package lexer

import (
	"strings"

	"github.com/bmatsuo/lispy/parser/token"
)

var parenSpacer = strings.NewReplacer("(", " ( ", ")", " ) ")

// Tokenize returns the text of every token in text, in order.  Tokenize
// never returns empty strings.
func Tokenize(text string) []string {
	return strings.Fields(parenSpacer.Replace(text))
}

// Lexer produces a stream of tokens from source text.
type Lexer struct {
	words []string
	pos   int
}

// New returns a Lexer for text.
func New(text string) *Lexer {
	return &Lexer{words: Tokenize(text)}
}

// NextToken returns the next token.  Once the input is exhausted NextToken
// returns EOF tokens indefinitely.
func (lex *Lexer) NextToken() *token.Token {
	if lex.pos >= len(lex.words) {
		return &token.Token{Type: token.EOF}
	}
	text := lex.words[lex.pos]
	lex.pos++
	return &token.Token{Type: token.Classify(text), Text: text}
}

// Remaining returns the number of tokens not yet returned by NextToken.
func (lex *Lexer) Remaining() int {
	return len(lex.words) - lex.pos
}

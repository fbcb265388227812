// Package rdparser implements a recursive-descent reader for lisp source
// text.
package rdparser

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/bmatsuo/lispy/lisp"
	"github.com/bmatsuo/lispy/parser/lexer"
	"github.com/bmatsuo/lispy/parser/token"
)

// ErrIncomplete is wrapped by the error returned when source text ends
// inside an unclosed list.
var ErrIncomplete = errors.New("unexpected end of input")

// IsIncomplete returns true if err was caused by source text that ended
// before every list was closed.  More input could make such text valid.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrIncomplete)
}

type reader struct {
}

// NewReader returns a lisp.Reader to use in a lisp.Runtime.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.
func (*reader) Read(name string, r io.Reader) ([]*lisp.LVal, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return ParseProgram(string(b))
}

// Parse reads exactly one expression from text.
func Parse(text string) (*lisp.LVal, error) {
	p := New(lexer.New(text))
	if p.PeekType() == token.EOF {
		return nil, lisp.Errorf(lisp.SyntaxError, "empty input")
	}
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if p.PeekType() != token.EOF {
		return nil, lisp.Errorf(lisp.SyntaxError, "unexpected trailing input: %s", p.Peek().Text)
	}
	return expr, nil
}

// ParseProgram reads every top-level expression in text.  Text containing
// only whitespace is an empty program.
func ParseProgram(text string) ([]*lisp.LVal, error) {
	return New(lexer.New(text)).ParseProgram()
}

// Parser is a lisp parser.
type Parser struct {
	lex  *lexer.Lexer
	curr *token.Token
	peek *token.Token
}

// New initializes and returns a new Parser that reads tokens from lex.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{
		lex: lex,
	}
	// Setup the peek token so the parser is in the proper state when the
	// first parse function is called.
	p.ReadToken()
	return p
}

// ParseProgram parses expressions until the input is exhausted.
func (p *Parser) ParseProgram() ([]*lisp.LVal, error) {
	var exprs []*lisp.LVal
	for !p.expect(token.EOF) {
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// ParseExpression parses a single list or atom.
func (p *Parser) ParseExpression() (*lisp.LVal, error) {
	switch p.PeekType() {
	case token.PAREN_L:
		return p.ParseList()
	case token.ATOM:
		p.ReadToken()
		return Atom(p.Token().Text), nil
	case token.PAREN_R:
		p.ReadToken()
		return nil, lisp.Errorf(lisp.SyntaxError, "unmatched close")
	case token.EOF:
		return nil, lisp.Errorf(lisp.SyntaxError, "%w", ErrIncomplete)
	default:
		p.ReadToken()
		return nil, lisp.Errorf(lisp.SyntaxError, "unexpected %s", p.Token().Type)
	}
}

// ParseList parses a parenthesized list of expressions.
func (p *Parser) ParseList() (*lisp.LVal, error) {
	if !p.expect(token.PAREN_L) {
		return nil, lisp.Errorf(lisp.SyntaxError, "expected %s (got %s)", token.PAREN_L, p.PeekType())
	}
	expr := lisp.List()
	for !p.expect(token.PAREN_R) {
		x, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		expr.Cells = append(expr.Cells, x)
	}
	return expr, nil
}

// decimal matches signed decimal literals with an optional exponent.
// Words such as inf or nan are not numbers.
var decimal = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Atom converts the text of an atom token into a number if it is a decimal
// literal and a symbol otherwise.  Numbers too large for a float64 become
// infinities.
func Atom(text string) *lisp.LVal {
	if !decimal.MatchString(text) {
		return lisp.Symbol(text)
	}
	x, err := strconv.ParseFloat(text, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return lisp.Number(x)
	}
	return lisp.Symbol(text)
}

// ReadToken advances the parser one token.
func (p *Parser) ReadToken() *token.Token {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
	return p.curr
}

// Token returns the token most recently read.
func (p *Parser) Token() *token.Token {
	return p.curr
}

// Peek returns the next token without reading it.
func (p *Parser) Peek() *token.Token {
	return p.peek
}

// PeekType returns the type of the next token.
func (p *Parser) PeekType() token.Type {
	return p.peek.Type
}

func (p *Parser) expect(typ ...token.Type) bool {
	peekType := p.peek.Type
	for _, typ := range typ {
		if typ == peekType {
			p.ReadToken()
			return true
		}
	}
	return false
}

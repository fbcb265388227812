/*
Package parser provides lisp readers.

The reference reader is the recursive-descent parser in package rdparser.
This package re-exports it and provides a second reader generated from a
goparsec grammar:

	expr := '(' <expr>* ')' | <atom>
	atom := /[^\s()]+/

where \s is any character unicode.IsSpace reports as white space, matching
the token boundaries of package lexer.

Both readers produce identical expressions for well-formed input.  An atom
which is a decimal literal is a number, any other atom is a symbol.
*/
package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/bmatsuo/lispy/lisp"
	"github.com/bmatsuo/lispy/parser/lexer"
	"github.com/bmatsuo/lispy/parser/rdparser"
	parsec "github.com/prataprc/goparsec"
)

// Parse reads exactly one expression from text.
func Parse(text string) (*lisp.LVal, error) {
	return rdparser.Parse(text)
}

// Tokenize splits text into tokens.
func Tokenize(text string) []string {
	return lexer.Tokenize(text)
}

// NewReader returns the default lisp.Reader.
func NewReader() lisp.Reader {
	return rdparser.NewReader()
}

// IsIncomplete returns true if err was caused by unclosed lists.
func IsIncomplete(err error) bool {
	return rdparser.IsIncomplete(err)
}

type parsecReader struct {
}

// NewParsecReader returns a lisp.Reader that parses with a goparsec grammar.
func NewParsecReader() lisp.Reader {
	return &parsecReader{}
}

// Read implements lisp.Reader.
func (*parsecReader) Read(name string, r io.Reader) ([]*lisp.LVal, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return ParseProgram(b)
}

// ParseProgram parses every expression in text using the goparsec grammar.
func ParseProgram(text []byte) ([]*lisp.LVal, error) {
	var exprs []*lisp.LVal
	s := parsec.NewScanner(text).SetWSPattern(wsPattern)
	expr := newParsecParser()
	root, s := expr(s)
	for root != nil {
		v, err := getLVal(root)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, v)
		root, s = expr(s)
	}
	rest := strings.TrimSpace(string(text[s.GetCursor():]))
	if rest != "" {
		return nil, unparsed(rest)
	}
	return exprs, nil
}

// unparsed explains why the grammar stopped matching at rest.  The grammar
// accepts every balanced token sequence so rest either begins with an
// unmatched close or contains a list which is never closed.
func unparsed(rest string) error {
	if strings.HasPrefix(rest, ")") {
		return lisp.Errorf(lisp.SyntaxError, "unmatched close")
	}
	return lisp.Errorf(lisp.SyntaxError, "%w", rdparser.ErrIncomplete)
}

// The white space class of unicode.IsSpace.
const (
	wsClass   = `\t\n\v\f\r\x{85}\p{Z}`
	wsPattern = `^[` + wsClass + `]+`
)

func newParsecParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	atom := parsec.Token(`[^()`+wsClass+`]+`, "ATOM")
	var expr parsec.Parser // forward declaration allows for recursive parsing
	exprList := parsec.Kleene(nil, &expr)
	list := parsec.And(listNode, openP, exprList, closeP)
	expr = parsec.OrdChoice(exprNode, atom, list)
	return expr
}

// exprNode converts the single node matched by an expression into an LVal.
func exprNode(nodes []parsec.ParsecNode) parsec.ParsecNode {
	nodes = cleanParsecNodeList(nodes)
	if len(nodes) == 0 {
		return nil
	}
	switch node := nodes[0].(type) {
	case *parsec.Terminal:
		return rdparser.Atom(node.Value)
	default:
		return node
	}
}

func listNode(nodes []parsec.ParsecNode) parsec.ParsecNode {
	lval := lisp.List()
	// We don't want terminal parsec nodes '(' and ')'
	for _, c := range cleanParsecNodeList(nodes) {
		if v, ok := c.(*lisp.LVal); ok {
			lval.Cells = append(lval.Cells, v)
		}
	}
	return lval
}

func cleanParsecNodeList(lis []parsec.ParsecNode) []parsec.ParsecNode {
	var nodes []parsec.ParsecNode
	for _, n := range lis {
		switch node := n.(type) {
		case []parsec.ParsecNode:
			nodes = append(nodes, cleanParsecNodeList(node)...)
		default:
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func getLVal(root parsec.ParsecNode) (*lisp.LVal, error) {
	nodes := cleanParsecNodeList([]parsec.ParsecNode{root})
	if len(nodes) == 0 {
		return nil, lisp.Errorf(lisp.SyntaxError, "empty parse tree")
	}
	lval, ok := nodes[0].(*lisp.LVal)
	if !ok {
		return nil, lisp.Errorf(lisp.SyntaxError, "unexpected parse node: %T", nodes[0])
	}
	return lval, nil
}

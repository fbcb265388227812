package lisp

import "github.com/bmatsuo/lispy/symbol"

// Special form keywords.  A list whose first element is one of these symbols
// is never treated as a procedure call, even when the symbol is bound.
const (
	KeywordQuote  = "quote"
	KeywordIf     = "if"
	KeywordDefine = "define"
	KeywordLambda = "lambda"
)

var (
	symQuote  = symbol.Intern(KeywordQuote)
	symIf     = symbol.Intern(KeywordIf)
	symDefine = symbol.Intern(KeywordDefine)
	symLambda = symbol.Intern(KeywordLambda)
)

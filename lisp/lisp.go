package lisp

import (
	"github.com/bmatsuo/lispy/symbol"
)

// LType is the type of an LVal
type LType uint

// Possible LType values
const (
	LInvalid LType = iota
	LNumber
	LSymbol
	LBool
	LList
	LPrimitive
	LClosure
	LUnspecified
)

var ltypeStrings = []string{
	LInvalid:     "INVALID",
	LNumber:      "number",
	LSymbol:      "symbol",
	LBool:        "boolean",
	LList:        "list",
	LPrimitive:   "primitive",
	LClosure:     "procedure",
	LUnspecified: "unspecified",
}

func (t LType) String() string {
	if int(t) >= len(ltypeStrings) {
		return ltypeStrings[LInvalid]
	}
	return ltypeStrings[t]
}

// LVal is a lisp value.  The same type is used for parsed expressions and
// for the values they evaluate to, which lets quote return its argument
// unchanged.  Which fields are meaningful depends on Type.
type LVal struct {
	Type LType

	// Num is the value of an LNumber.  For LBool, 1 is true and 0 is false.
	Num float64

	// Str and ID hold the name of an LSymbol and its interned handle.
	Str string
	ID  symbol.ID

	// Cells holds the elements of an LList.
	Cells []*LVal

	// Builtin is the host implementation of an LPrimitive.
	Builtin LBuiltinDef

	// Variables needed for closures
	Env     *LEnv
	Formals []*LVal
	Body    *LVal
}

// Number returns an LVal representing the number x.
func Number(x float64) *LVal {
	return &LVal{
		Type: LNumber,
		Num:  x,
	}
}

// Symbol returns an LVal representing the symbol s.  The symbol is interned
// in symbol.DefaultGlobalTable.
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
		ID:   symbol.Intern(s),
	}
}

// Bool returns an LBool with the truth value of ok.
func Bool(ok bool) *LVal {
	if ok {
		return True()
	}
	return False()
}

// True returns a true LBool value.
func True() *LVal {
	return &LVal{
		Type: LBool,
		Num:  1,
	}
}

// False returns a false LBool value.
func False() *LVal {
	return &LVal{
		Type: LBool,
	}
}

// List returns an LList containing cells.  List does not copy cells.
func List(cells ...*LVal) *LVal {
	return &LVal{
		Type:  LList,
		Cells: cells,
	}
}

// Unspecified returns the value of expressions, like define, that have no
// useful value.
func Unspecified() *LVal {
	return &LVal{
		Type: LUnspecified,
	}
}

// Primitive returns an LVal that invokes fn when called.
func Primitive(fn LBuiltinDef) *LVal {
	return &LVal{
		Type:    LPrimitive,
		Builtin: fn,
	}
}

// Lambda returns a closure with the given formal parameters and body which
// captures env.  Lambda does not validate formals; the lambda special form
// does that before calling it.
func Lambda(formals []*LVal, body *LVal, env *LEnv) *LVal {
	return &LVal{
		Type:    LClosure,
		Env:     env,
		Formals: formals,
		Body:    body,
	}
}

// IsCallable returns true if v can be invoked as a procedure.
func (v *LVal) IsCallable() bool {
	return v != nil && (v.Type == LPrimitive || v.Type == LClosure)
}

// IsTrue returns false only for the boolean false.  Zero and the empty list
// are true.
func (v *LVal) IsTrue() bool {
	return !(v.Type == LBool && v.Num == 0)
}

// IsNil returns true if v is the empty list.
func (v *LVal) IsNil() bool {
	return v.Type == LList && len(v.Cells) == 0
}

// Len returns the number of cells in an LList.
func (v *LVal) Len() int {
	return len(v.Cells)
}

// Equal returns true if v1 and v2 are structurally equal.  Procedures are
// only equal to themselves.
func Equal(v1, v2 *LVal) bool {
	if v1 == v2 {
		return true
	}
	if v1 == nil || v2 == nil || v1.Type != v2.Type {
		return false
	}
	switch v1.Type {
	case LNumber, LBool:
		return v1.Num == v2.Num
	case LSymbol:
		return v1.ID == v2.ID
	case LList:
		if len(v1.Cells) != len(v2.Cells) {
			return false
		}
		for i := range v1.Cells {
			if !Equal(v1.Cells[i], v2.Cells[i]) {
				return false
			}
		}
		return true
	case LUnspecified:
		return true
	default:
		return false
	}
}

package lisp

import (
	"github.com/bmatsuo/lispy/symbol"
)

// Bindings is a set of variable bindings (e.g. function arguments).
type Bindings interface {
	// Len returns the number of variables bound
	Len() int
	// Get returns the value bound to the given symbol.
	Get(symbol.ID) (*LVal, bool)
	// Put creates or updates a binding for the given symbol with the given
	// value.
	Put(symbol.ID, *LVal)
	// Range calls fn for each binding in the order bindings were created
	// until fn returns false.
	Range(fn func(symbol.ID, *LVal) bool)
}

// NewBindings creates and initializes a new set of variable bindings that has
// initial capacity to hold n values.
func NewBindings(n int) Bindings {
	return newBindings(n)
}

// ZipBindings binds each symbol in params to the value at the same position
// in args.  ZipBindings returns an ArityError if params and args have
// different lengths and a TypeError if a parameter is not a symbol.
func ZipBindings(params, args []*LVal) (Bindings, error) {
	if len(params) != len(args) {
		return nil, Errorf(ArityError, "expected %s (got %d)", Exactly(len(params)).Arguments(), len(args))
	}
	b := newBindings(len(params))
	for i, p := range params {
		if p.Type != LSymbol {
			return nil, Errorf(TypeError, "parameter is not a symbol: %v", p.Type)
		}
		b.Put(p.ID, args[i])
	}
	return b, nil
}

type bindingPair struct {
	name  symbol.ID
	value *LVal
}

// bindings keeps the order in which variables were bound so that frames
// can be listed deterministically.
type bindings struct {
	pairs []bindingPair
	index map[symbol.ID]int
}

var _ Bindings = (*bindings)(nil)

func newBindings(n int) *bindings {
	return &bindings{
		pairs: make([]bindingPair, 0, n),
		index: make(map[symbol.ID]int, n),
	}
}

// Len returns the number of symbols bound.
func (s *bindings) Len() int {
	return len(s.pairs)
}

// Get returns the value bound to variable.
func (s *bindings) Get(variable symbol.ID) (*LVal, bool) {
	i, ok := s.index[variable]
	if !ok {
		return nil, false
	}
	return s.pairs[i].value, true
}

// Put binds variable to v.  If variable was previously bound its entry will be
// updated.  Otherwise Put creates a new variable binding.
func (s *bindings) Put(variable symbol.ID, v *LVal) {
	i, ok := s.index[variable]
	if ok {
		s.pairs[i].value = v
		return
	}
	s.index[variable] = len(s.pairs)
	s.pairs = append(s.pairs, bindingPair{variable, v})
}

// Range implements Bindings.
func (s *bindings) Range(fn func(symbol.ID, *LVal) bool) {
	for _, p := range s.pairs {
		if !fn(p.name, p.value) {
			return
		}
	}
}

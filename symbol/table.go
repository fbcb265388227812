package symbol

import (
	"fmt"
	"sync"
)

// DefaultGlobalTable is the symbol table shared by every environment in the
// process.  Interning is append-only so sharing the table does not couple
// the state of otherwise independent environments.
var DefaultGlobalTable = NewTable()

// Intern uses DefaultGlobalTable to intern s and returns its ID.
func Intern(s string) ID {
	return DefaultGlobalTable.Intern(s)
}

// Table maps symbol IDs to strings.  Table implementations are safe for
// concurrent use.
type Table interface {
	// Len returns the number of symbols interned in the table.
	Len() int
	// Intern inserts the given symbol into the table if it is not present and
	// returns its ID.
	Intern(symbol string) ID
	// Symbol returns the symbol associated with id.
	Symbol(id ID) (string, bool)
}

// ResolveUnknown returns a Table that returns diagnostic strings when the
// method Symbol is passed an unknown symbol ID.  The Symbol method on the
// returned Table will always return true and will use fmt.Sprintf to create a
// string representing any symbols unknown to t.  All other methods on the
// returned Table proxy the corresponding methods on t.
func ResolveUnknown(format string, t Table) Table {
	return newUnknownResolver(format, t)
}

const defaultUnknownResolverFormat = "#<SYMBOL %#x>"

type unknownResolver struct {
	format string
	Table
}

func newUnknownResolver(format string, t Table) *unknownResolver {
	if format == "" {
		format = defaultUnknownResolverFormat
	}
	return &unknownResolver{format, t}
}

// Symbol overrides t.Table.Symbol and use the t.format to describe unknown
// strings.  Symbol always returns true.
func (t *unknownResolver) Symbol(id ID) (string, bool) {
	s, ok := t.Table.Symbol(id)
	if ok {
		return s, true
	}
	return fmt.Sprintf(t.format, uint64(id)), true
}

// NewTable returns an empty Table.
func NewTable() Table {
	return newTable()
}

type table struct {
	sync sync.RWMutex
	g    IDGen
	i    map[ID]string
	s    map[string]ID
}

var _ Table = (*table)(nil)

func newTable() *table {
	return &table{
		g: NewIDGen(0),
		i: make(map[ID]string),
		s: make(map[string]ID),
	}
}

// Len implements the Table interface
func (t *table) Len() int {
	t.sync.RLock()
	defer t.sync.RUnlock()
	return len(t.s)
}

// Intern implements the Table interface
func (t *table) Intern(s string) ID {
	t.sync.RLock()
	id, ok := t.s[s]
	t.sync.RUnlock()
	if ok {
		return id
	}
	t.sync.Lock()
	defer t.sync.Unlock()
	return t.intern(s)
}

func (t *table) intern(s string) ID {
	if id, ok := t.s[s]; ok {
		return id
	}
	id := t.g.NewID()
	t.s[s] = id
	t.i[id] = s
	return id
}

// Symbol implements the Table interface
func (t *table) Symbol(id ID) (string, bool) {
	t.sync.RLock()
	defer t.sync.RUnlock()
	s, ok := t.i[id]
	return s, ok
}

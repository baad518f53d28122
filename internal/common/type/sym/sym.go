// Released under an MIT license. See LICENSE.

// Package sym provides luna's symbol type.
//
// Symbols are interned in a single process-wide table, so two symbols
// with the same name are the same cell and eq? is pointer comparison.
package sym

import (
	"sync"

	"github.com/severen/luna/internal/common"
	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/interface/literal"
	"github.com/severen/luna/internal/common/interface/truth"
)

const name = "symbol"

// T (sym) wraps Go's string type.
type T string

type sym = T

//nolint:gochecknoglobals
var (
	cache  = map[string]*sym{}
	cachel = &sync.RWMutex{}
)

// New creates a sym cell, reusing the interned cell if one exists.
func New(v string) cell.I {
	return symnew(v)
}

// Bool returns the boolean value of the sym s. All symbols are true.
func (s *sym) Bool() bool {
	return true
}

// Equal returns true if c is a sym and wraps the same string.
// Because symbols are interned this is the same as identity.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && s == To(c)
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	return string(*s)
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return string(*s)
}

// Is returns true if c is a sym.
func Is(c cell.I) bool {
	_, ok := c.(*sym)

	return ok
}

// To returns a sym if c is a sym; Otherwise it panics.
func To(c cell.I) *sym {
	if t, ok := c.(*sym); ok {
		return t
	}

	panic(c.Name() + " cannot be used in a symbol context")
}

func symnew(v string) *sym {
	cachel.RLock()
	p, ok := cache[v]
	cachel.RUnlock()

	if ok {
		return p
	}

	cachel.Lock()
	defer cachel.Unlock()

	if p, ok = cache[v]; ok {
		return p
	}

	s := sym(v)
	p = &s
	cache[v] = p

	return p
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)

	// The sym type has a truth value.
	_ = truth.I(&t)
}

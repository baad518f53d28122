// Released under an MIT license. See LICENSE.

// Package scope defines the interface for luna's lexical environments.
package scope

import (
	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/interface/reference"
)

// I (scope) is the interface for luna's lexical environments.
//
// Define always creates or overwrites a binding in the receiving frame.
// Lookup walks outward through enclosing frames and returns nil if the
// name is bound nowhere in the chain. Mutating the returned reference
// therefore updates the innermost frame holding the binding, which is
// exactly what set! requires. Nothing ever removes a binding.
type I interface {
	cell.I

	Define(k string, v cell.I)
	Enclosing() I
	Lookup(k string) reference.I
}

type scope = I

// Is returns true if c is a scope.
func Is(c cell.I) bool {
	_, ok := c.(scope)

	return ok
}

// To returns a scope if c is a scope; Otherwise it panics.
func To(c cell.I) scope {
	if t, ok := c.(scope); ok {
		return t
	}

	panic(c.Name() + " cannot be used in an environment context")
}

// Released under an MIT license. See LICENSE.

// Package closure provides luna's user-defined procedure type.
package closure

import (
	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/interface/literal"
	"github.com/severen/luna/internal/common/interface/scope"
	"github.com/severen/luna/internal/common/interface/truth"
)

const name = "procedure"

// T (closure) is a procedure created by lambda. It pairs a parameter
// list and body with the scope captured where the lambda was evaluated.
type T struct {
	Body   cell.I  // Sequence of body expressions.
	Label  string  // Optional name, recorded by define.
	Params cell.I  // Formals: a symbol, a proper list, or a dotted list.
	Scope  scope.I // Captured lexical scope.
}

type closure = T

// New creates a new closure.
func New(params, body cell.I, s scope.I) *T {
	return &closure{Body: body, Params: params, Scope: s}
}

// Bool returns the boolean value of the closure c. All closures are true.
func (c *closure) Bool() bool {
	return true
}

// Equal returns true if v is the same closure as c.
func (c *closure) Equal(v cell.I) bool {
	return Is(v) && c == To(v)
}

// Literal returns the literal representation of the closure c.
func (c *closure) Literal() string {
	return c.String()
}

// Name returns the type name for the closure c.
func (c *closure) Name() string {
	return name
}

// String returns a text representation of the closure c.
func (c *closure) String() string {
	if c.Label == "" {
		return "#<procedure>"
	}

	return "#<procedure " + c.Label + ">"
}

// Is returns true if v is a closure.
func Is(v cell.I) bool {
	_, ok := v.(*closure)

	return ok
}

// To returns a closure if v is a closure; Otherwise it panics.
func To(v cell.I) *closure {
	if t, ok := v.(*closure); ok {
		return t
	}

	panic(v.Name() + " cannot be used in a procedure context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t closure

	// The closure type is a cell.
	_ = cell.I(&t)

	// The closure type has a literal representation.
	_ = literal.I(&t)

	// The closure type has a truth value.
	_ = truth.I(&t)
}

// Released under an MIT license. See LICENSE.

// Package env provides luna's environment type.
//
// An env is one frame in a chain of lexical scopes. A frame is shared by
// reference between a closure and every invocation created from it, so a
// binding mutated in one place is immediately visible everywhere else the
// frame is held.
package env

import (
	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/interface/reference"
	"github.com/severen/luna/internal/common/interface/scope"
	"github.com/severen/luna/internal/common/struct/hash"
)

const name = "environment"

// T (env) maps names to values and links to an enclosing environment.
type T struct {
	previous scope.I
	bindings *hash.T
}

type env = T

// New creates a new env enclosed by previous. The global environment
// has a nil previous.
func New(previous scope.I) scope.I {
	return &env{
		previous: previous,
		bindings: hash.New(),
	}
}

// Define associates the name k with the cell v in the env e itself,
// creating or overwriting the binding in this frame only.
func (e *env) Define(k string, v cell.I) {
	e.bindings.Set(k, v)
}

// Enclosing returns the enclosing environment.
func (e *env) Enclosing() scope.I {
	return e.previous
}

// Equal returns true if c is the same env as e.
func (e *env) Equal(c cell.I) bool {
	return Is(c) && e == To(c)
}

// Lookup retrieves the reference associated with the name k, walking
// outward through enclosing frames. It returns nil if k is unbound.
func (e *env) Lookup(k string) reference.I {
	if e == nil {
		return nil
	}

	v := e.bindings.Get(k)

	if v == nil && e.previous != nil {
		v = e.previous.Lookup(k)
	}

	return v
}

// Name returns the type name for the env e.
func (e *env) Name() string {
	return name
}

// Is returns true if c is an env.
func Is(c cell.I) bool {
	_, ok := c.(*env)

	return ok
}

// To returns an env if c is an env; Otherwise it panics.
func To(c cell.I) *env {
	if t, ok := c.(*env); ok {
		return t
	}

	panic(c.Name() + " cannot be used in an environment context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a cell.
	_ = cell.I(&t)

	// The env type is a scope.
	_ = scope.I(&t)
}

// Released under an MIT license. See LICENSE.

// Package builtin provides luna's primitive procedure type.
package builtin

import (
	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/interface/literal"
	"github.com/severen/luna/internal/common/interface/truth"
)

const name = "builtin"

// Func is the signature shared by all primitive procedures. A Func
// signals an error by panicking with a fault.
type Func func(args []cell.I) cell.I

// T (builtin) is a procedure implemented in Go.
type T struct {
	f     Func
	label string
}

type builtin = T

// New creates a new builtin.
func New(label string, f Func) *T {
	return &builtin{f: f, label: label}
}

// Apply invokes the builtin b with args.
func (b *builtin) Apply(args []cell.I) cell.I {
	return b.f(args)
}

// Bool returns the boolean value of the builtin b. All builtins are true.
func (b *builtin) Bool() bool {
	return true
}

// Equal returns true if v is the same builtin as b.
func (b *builtin) Equal(v cell.I) bool {
	return Is(v) && b == To(v)
}

// Label returns the name the builtin b was defined with.
func (b *builtin) Label() string {
	return b.label
}

// Literal returns the literal representation of the builtin b.
func (b *builtin) Literal() string {
	return b.String()
}

// Name returns the type name for the builtin b.
func (b *builtin) Name() string {
	return name
}

// String returns a text representation of the builtin b.
func (b *builtin) String() string {
	return "#<builtin " + b.label + ">"
}

// Is returns true if v is a builtin.
func Is(v cell.I) bool {
	_, ok := v.(*builtin)

	return ok
}

// To returns a builtin if v is a builtin; Otherwise it panics.
func To(v cell.I) *builtin {
	if t, ok := v.(*builtin); ok {
		return t
	}

	panic(v.Name() + " cannot be used in a procedure context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t builtin

	// The builtin type is a cell.
	_ = cell.I(&t)

	// The builtin type has a literal representation.
	_ = literal.I(&t)

	// The builtin type has a truth value.
	_ = truth.I(&t)
}

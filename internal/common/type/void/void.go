// Released under an MIT license. See LICENSE.

// Package void provides luna's unspecified value.
//
// Side-effecting forms (define, set!, one-armed if with a false test)
// have no useful value; they return the single unspecified cell.
package void

import (
	"github.com/severen/luna/internal/common"
	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/interface/literal"
)

const name = "unspecified"

// T (void) has exactly one value, Unspecified.
type T struct{}

type void = T

// Unspecified is the value of forms evaluated for effect.
//nolint:gochecknoglobals
var Unspecified cell.I = &void{}

// Equal returns true if c is the unspecified value.
func (v *void) Equal(c cell.I) bool {
	return Is(c)
}

// Literal returns the literal representation of the unspecified value.
func (v *void) Literal() string {
	return "#<unspecified>"
}

// Name returns the type name for the void v.
func (v *void) Name() string {
	return name
}

// String returns the display representation of the unspecified value.
func (v *void) String() string {
	return "#<unspecified>"
}

// Is returns true if c is the unspecified value.
func Is(c cell.I) bool {
	_, ok := c.(*void)

	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t void

	// The void type is a cell.
	_ = cell.I(&t)

	// The void type has a literal representation.
	_ = literal.I(&t)

	// The void type is a stringer.
	_ = common.Stringer(&t)
}

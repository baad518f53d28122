// Released under an MIT license. See LICENSE.

// Package vector provides luna's vector type.
package vector

import (
	"strings"

	"github.com/severen/luna/internal/common"
	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/interface/literal"
	"github.com/severen/luna/internal/common/interface/truth"
)

const name = "vector"

// T (vector) is a fixed-length, mutable, indexed sequence of cells.
type T struct {
	cells []cell.I
}

type vector = T

// New creates a vector holding the cells in elements.
func New(elements []cell.I) cell.I {
	return &vector{cells: elements}
}

// Make creates a vector of length n with every slot holding fill.
func Make(n int, fill cell.I) cell.I {
	cells := make([]cell.I, n)
	for i := range cells {
		cells[i] = fill
	}

	return &vector{cells: cells}
}

// At returns the cell at index i in the vector v.
func (v *vector) At(i int) cell.I {
	if i < 0 || i >= len(v.cells) {
		panic("vector index out of range")
	}

	return v.cells[i]
}

// Bool returns the boolean value of the vector v. All vectors are true.
func (v *vector) Bool() bool {
	return true
}

// Equal returns true if c is a vector of equal elements.
func (v *vector) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	o := To(c)
	if len(v.cells) != len(o.cells) {
		return false
	}

	for i, e := range v.cells {
		if !e.Equal(o.cells[i]) {
			return false
		}
	}

	return true
}

// Fill replaces every slot in the vector v with fill.
func (v *vector) Fill(fill cell.I) {
	for i := range v.cells {
		v.cells[i] = fill
	}
}

// Len returns the number of slots in the vector v.
func (v *vector) Len() int {
	return len(v.cells)
}

// Literal returns the literal representation of the vector v.
func (v *vector) Literal() string {
	return v.text(literal.String)
}

// Name returns the type name for the vector v.
func (v *vector) Name() string {
	return name
}

// Set replaces the cell at index i in the vector v.
func (v *vector) Set(i int, c cell.I) {
	if i < 0 || i >= len(v.cells) {
		panic("vector index out of range")
	}

	v.cells[i] = c
}

// Slice returns the vector v's backing slice.
func (v *vector) Slice() []cell.I {
	return v.cells
}

// String returns the display representation of the vector v.
func (v *vector) String() string {
	return v.text(common.String)
}

func (v *vector) text(repr func(cell.I) string) string {
	var b strings.Builder

	b.WriteString("#(")

	for i, e := range v.cells {
		if i > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(repr(e))
	}

	b.WriteByte(')')

	return b.String()
}

// Is returns true if c is a vector.
func Is(c cell.I) bool {
	_, ok := c.(*vector)

	return ok
}

// To returns a vector if c is a vector; Otherwise it panics.
func To(c cell.I) *vector {
	if t, ok := c.(*vector); ok {
		return t
	}

	panic(c.Name() + " cannot be used in a vector context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t vector

	// The vector type is a cell.
	_ = cell.I(&t)

	// The vector type has a literal representation.
	_ = literal.I(&t)

	// The vector type is a stringer.
	_ = common.Stringer(&t)

	// The vector type has a truth value.
	_ = truth.I(&t)
}

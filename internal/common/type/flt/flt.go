// Released under an MIT license. See LICENSE.

// Package flt provides luna's inexact number type.
//
// Inexact numbers are IEEE 754 double-precision floats. Any literal with
// a decimal point or exponent is inexact, and any arithmetic involving
// an inexact operand produces an inexact result.
package flt

import (
	"math"
	"strconv"
	"strings"

	"github.com/severen/luna/internal/common"
	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/interface/literal"
	"github.com/severen/luna/internal/common/interface/truth"
)

const name = "number"

// T (flt) wraps Go's float64 type.
type T float64

type flt = T

// New creates a new flt cell from a string.
func New(s string) cell.I {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic("'" + s + "' is not a valid number")
	}

	return Float(v)
}

// Float wraps the float64 f as a flt.
func Float(f float64) cell.I {
	v := flt(f)

	return &v
}

// Bool returns the boolean value of the flt f. All numbers are true.
func (f *flt) Bool() bool {
	return true
}

// Equal returns true if c is a flt with the same value as f.
func (f *flt) Equal(c cell.I) bool {
	return Is(c) && f.Float() == To(c).Float()
}

// Float returns the value of the flt f as a float64.
func (f *flt) Float() float64 {
	return float64(*f)
}

// Literal returns the literal representation of the flt f.
func (f *flt) Literal() string {
	return f.String()
}

// Name returns the type name for the flt f.
func (f *flt) Name() string {
	return name
}

// String returns the text of the flt f. A decimal point is always
// present so that the text reads back as an inexact number.
func (f *flt) String() string {
	v := float64(*f)

	switch {
	case math.IsInf(v, 1):
		return "+inf.0"
	case math.IsInf(v, -1):
		return "-inf.0"
	case math.IsNaN(v):
		return "+nan.0"
	}

	s := strconv.FormatFloat(v, 'g', -1, 64)

	if !strings.ContainsAny(s, ".eE") {
		s += "."
	}

	return s
}

// Is returns true if c is a flt.
func Is(c cell.I) bool {
	_, ok := c.(*flt)

	return ok
}

// To returns a flt if c is a flt; Otherwise it panics.
func To(c cell.I) *flt {
	if t, ok := c.(*flt); ok {
		return t
	}

	panic(c.Name() + " cannot be used in a numeric context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t flt

	// The flt type is a cell.
	_ = cell.I(&t)

	// The flt type has a literal representation.
	_ = literal.I(&t)

	// The flt type is a stringer.
	_ = common.Stringer(&t)

	// The flt type has a truth value.
	_ = truth.I(&t)
}

// Released under an MIT license. See LICENSE.

// Package num provides luna's exact number type.
//
// Exact numbers are arbitrary-precision rationals. Integer literals,
// ratio literals (1/3), and radix-prefixed literals (#x, #o, #b, #d)
// all produce a num; literals with a decimal point or exponent produce
// the inexact flt type instead.
package num

import (
	"math/big"

	"github.com/severen/luna/internal/common"
	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/interface/literal"
	"github.com/severen/luna/internal/common/interface/rational"
	"github.com/severen/luna/internal/common/interface/truth"
)

const name = "number"

// T (num) wraps Go's big.Rat type.
type T big.Rat

type num = T

// New creates a new num cell from a string.
func New(s string) cell.I {
	base := 10

	if len(s) >= 2 && s[0] == '#' {
		switch s[1] {
		case 'b':
			base = 2
		case 'o':
			base = 8
		case 'd':
			base = 10
		case 'x':
			base = 16
		default:
			panic("'" + s + "' is not a valid number")
		}

		s = s[2:]
	}

	v := &big.Rat{}

	if base == 10 {
		if _, ok := v.SetString(s); !ok {
			panic("'" + s + "' is not a valid number")
		}

		return Rat(v)
	}

	i := &big.Int{}
	if _, ok := i.SetString(s, base); !ok {
		panic("'" + s + "' is not a valid number")
	}

	return Rat(v.SetInt(i))
}

// Int creates a num from the integer i.
func Int(i int) cell.I {
	return Rat(big.NewRat(int64(i), 1))
}

// Rat wraps the *big.Rat r as a num.
func Rat(r *big.Rat) cell.I {
	return (*num)(r)
}

// Bool returns the boolean value of the num n. All numbers are true.
func (n *num) Bool() bool {
	return true
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.Rat().Cmp(To(c).Rat()) == 0
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// Rat returns the value of the num n as a *big.Rat.
func (n *num) Rat() *big.Rat {
	return (*big.Rat)(n)
}

// String returns the text of the num n.
func (n *num) String() string {
	return n.Rat().RatString()
}

// Is returns true if c is a num.
func Is(c cell.I) bool {
	_, ok := c.(*num)

	return ok
}

// To returns a num if c is a num; Otherwise it panics.
func To(c cell.I) *num {
	if t, ok := c.(*num); ok {
		return t
	}

	panic(c.Name() + " cannot be used in a numeric context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a rational.
	_ = rational.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)

	// The num type has a truth value.
	_ = truth.I(&t)
}

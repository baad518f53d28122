// Released under an MIT license. See LICENSE.

// Package chr provides luna's character type.
package chr

import (
	"unicode/utf8"

	"github.com/severen/luna/internal/common"
	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/interface/literal"
	"github.com/severen/luna/internal/common/interface/truth"
)

const name = "character"

// T (chr) wraps Go's rune type.
type T rune

type chr = T

// Named characters, as written after #\ in a literal.
//nolint:gochecknoglobals
var names = map[string]rune{
	"newline": '\n',
	"space":   ' ',
	"tab":     '\t',
	"return":  '\r',
	"null":    0,
	"delete":  0x7f,
}

// New creates a chr cell from the text following #\ in a literal.
func New(s string) cell.I {
	if r, ok := names[s]; ok {
		return Rune(r)
	}

	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError {
		panic("#\\" + s + " is not a valid character")
	}

	return Rune(r)
}

// Rune wraps the rune r as a chr.
func Rune(r rune) cell.I {
	v := chr(r)

	return &v
}

// Bool returns the boolean value of the chr c. All characters are true.
func (r *chr) Bool() bool {
	return true
}

// Equal returns true if c is a chr with the same value as r.
func (r *chr) Equal(c cell.I) bool {
	return Is(c) && r.Rune() == To(c).Rune()
}

// Literal returns the literal representation of the chr r.
func (r *chr) Literal() string {
	for n, v := range names {
		if v == r.Rune() {
			return "#\\" + n
		}
	}

	return "#\\" + string(r.Rune())
}

// Name returns the type name for the chr r.
func (r *chr) Name() string {
	return name
}

// Rune returns the value of the chr r as a rune.
func (r *chr) Rune() rune {
	return rune(*r)
}

// String returns the display text of the chr r: the character itself.
func (r *chr) String() string {
	return string(r.Rune())
}

// Is returns true if c is a chr.
func Is(c cell.I) bool {
	_, ok := c.(*chr)

	return ok
}

// To returns a chr if c is a chr; Otherwise it panics.
func To(c cell.I) *chr {
	if t, ok := c.(*chr); ok {
		return t
	}

	panic(c.Name() + " cannot be used in a character context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t chr

	// The chr type is a cell.
	_ = cell.I(&t)

	// The chr type has a literal representation.
	_ = literal.I(&t)

	// The chr type is a stringer.
	_ = common.Stringer(&t)

	// The chr type has a truth value.
	_ = truth.I(&t)
}

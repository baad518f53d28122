// Released under an MIT license. See LICENSE.

// Package str provides luna's string type.
//
// Strings are mutable and shared by reference: string-set! through one
// binding is visible through every other binding to the same string.
package str

import (
	"strings"

	"github.com/severen/luna/internal/common"
	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/interface/literal"
	"github.com/severen/luna/internal/common/interface/truth"
)

const name = "string"

// T (str) is a mutable sequence of runes.
type T struct {
	runes []rune
}

type str = T

// New creates a new str cell.
func New(v string) cell.I {
	return &str{runes: []rune(v)}
}

// Make creates a str of length n filled with the rune fill.
func Make(n int, fill rune) cell.I {
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = fill
	}

	return &str{runes: runes}
}

// At returns the rune at index i in the str s.
func (s *str) At(i int) rune {
	if i < 0 || i >= len(s.runes) {
		panic("string index out of range")
	}

	return s.runes[i]
}

// Bool returns the boolean value of the str s. All strings are true.
func (s *str) Bool() bool {
	return true
}

// Equal returns true if the cell c holds the same text.
func (s *str) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Len returns the number of runes in the str s.
func (s *str) Len() int {
	return len(s.runes)
}

// Literal returns the literal representation of the str s.
func (s *str) Literal() string {
	var b strings.Builder

	b.WriteByte('"')

	for _, r := range s.runes {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}

	b.WriteByte('"')

	return b.String()
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// SetAt replaces the rune at index i in the str s.
func (s *str) SetAt(i int, r rune) {
	if i < 0 || i >= len(s.runes) {
		panic("string index out of range")
	}

	s.runes[i] = r
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(s.runes)
}

// Is returns true if c is a str.
func Is(c cell.I) bool {
	_, ok := c.(*str)

	return ok
}

// To returns a str if c is a str; Otherwise it panics.
func To(c cell.I) *str {
	if t, ok := c.(*str); ok {
		return t
	}

	panic(c.Name() + " cannot be used in a string context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)

	// The str type is a stringer.
	_ = common.Stringer(&t)

	// The str type has a truth value.
	_ = truth.I(&t)
}

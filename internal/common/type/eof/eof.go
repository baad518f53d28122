// Released under an MIT license. See LICENSE.

// Package eof provides luna's end-of-file object.
package eof

import (
	"github.com/severen/luna/internal/common"
	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/interface/literal"
)

const name = "eof-object"

// T (eof) has exactly one value, Object.
type T struct{}

type eof = T

// Object is the value read returns when input is exhausted.
//nolint:gochecknoglobals
var Object cell.I = &eof{}

// Equal returns true if c is the end-of-file object.
func (e *eof) Equal(c cell.I) bool {
	return Is(c)
}

// Literal returns the literal representation of the end-of-file object.
func (e *eof) Literal() string {
	return "#<eof>"
}

// Name returns the type name for the eof e.
func (e *eof) Name() string {
	return name
}

// String returns the display representation of the end-of-file object.
func (e *eof) String() string {
	return "#<eof>"
}

// Is returns true if c is the end-of-file object.
func Is(c cell.I) bool {
	_, ok := c.(*eof)

	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t eof

	// The eof type is a cell.
	_ = cell.I(&t)

	// The eof type has a literal representation.
	_ = literal.I(&t)

	// The eof type is a stringer.
	_ = common.Stringer(&t)
}

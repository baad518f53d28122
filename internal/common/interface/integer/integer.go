// Released under an MIT license. See LICENSE.

// Package integer converts a luna cell to an int value, if possible.
package integer

import (
	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/interface/rational"
)

// Value returns the int value for a cell, if possible.
func Value(c cell.I) int {
	r, ok := c.(rational.I)
	if !ok {
		panic(c.Name() + " cannot be converted to an integer value")
	}

	br := r.Rat()
	if br.IsInt() {
		bi := br.Num()
		if bi.IsInt64() {
			return int(bi.Int64())
		}
	}

	panic(c.Name() + " does not have an integer value")
}

// Released under an MIT license. See LICENSE.

// Package commands provides luna's primitive procedures.
//
// Every command has the signature func([]cell.I) cell.I and signals an
// error by panicking with a fault. The engine recovers faults at its
// boundary and returns them as Go errors.
package commands

import (
	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/type/chr"
	"github.com/severen/luna/internal/common/type/flt"
	"github.com/severen/luna/internal/common/type/num"
)

// Functions returns the full table of primitive procedures, keyed by
// the name each is bound to in the global environment.
func Functions() map[string]func([]cell.I) cell.I {
	m := map[string]func([]cell.I) cell.I{}

	for _, table := range []map[string]func([]cell.I) cell.I{
		charCommands(),
		ioCommands(),
		listCommands(),
		numberCommands(),
		pairCommands(),
		predicateCommands(),
		stringCommands(),
		vectorCommands(),
	} {
		for k, v := range table {
			m[k] = v
		}
	}

	return m
}

// Eq reports whether a and b are the same cell. Symbols are interned
// and booleans and the empty list are singletons, so identity is the
// right comparison for all of them.
func Eq(a, b cell.I) bool {
	return a == b
}

// Eqv is Eq extended to compare numbers and characters by value.
// Numbers that differ in exactness are not eqv.
func Eqv(a, b cell.I) bool {
	if a == b {
		return true
	}

	switch {
	case num.Is(a) && num.Is(b):
		return a.Equal(b)
	case flt.Is(a) && flt.Is(b):
		return a.Equal(b)
	case chr.Is(a) && chr.Is(b):
		return a.Equal(b)
	}

	return false
}

// Equal is the structural comparison used by equal?: pairs, vectors,
// and strings compare by content, everything else by Eqv.
func Equal(a, b cell.I) bool {
	return a.Equal(b)
}

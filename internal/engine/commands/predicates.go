// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/interface/truth"
	"github.com/severen/luna/internal/common/type/boolean"
	"github.com/severen/luna/internal/common/type/builtin"
	"github.com/severen/luna/internal/common/type/chr"
	"github.com/severen/luna/internal/common/type/closure"
	"github.com/severen/luna/internal/common/type/pair"
	"github.com/severen/luna/internal/common/type/str"
	"github.com/severen/luna/internal/common/type/sym"
	"github.com/severen/luna/internal/common/type/vector"
	"github.com/severen/luna/internal/common/validate"
)

func predicateCommands() map[string]func([]cell.I) cell.I {
	return map[string]func([]cell.I) cell.I{
		"boolean?":   is("boolean?", boolean.Is),
		"char?":      is("char?", chr.Is),
		"eq?":        same("eq?", Eq),
		"equal?":     same("equal?", Equal),
		"eqv?":       same("eqv?", Eqv),
		"not":        not,
		"pair?":      isPair,
		"procedure?": isProcedure,
		"string?":    is("string?", str.Is),
		"symbol?":    is("symbol?", sym.Is),
		"vector?":    is("vector?", vector.Is),
	}
}

func is(name string, f func(cell.I) bool) func([]cell.I) cell.I {
	return func(args []cell.I) cell.I {
		return boolean.Bool(f(validate.Args(name, args, 1, 1)[0]))
	}
}

// isPair excludes the empty list, which is a pair internally but not
// to programs.
func isPair(args []cell.I) cell.I {
	v := validate.Args("pair?", args, 1, 1)[0]

	return boolean.Bool(pair.Is(v) && v != pair.Null)
}

func isProcedure(args []cell.I) cell.I {
	v := validate.Args("procedure?", args, 1, 1)[0]

	return boolean.Bool(builtin.Is(v) || closure.Is(v))
}

func not(args []cell.I) cell.I {
	return boolean.Bool(!truth.Value(validate.Args("not", args, 1, 1)[0]))
}

func same(name string, f func(a, b cell.I) bool) func([]cell.I) cell.I {
	return func(args []cell.I) cell.I {
		v := validate.Args(name, args, 2, 2)

		return boolean.Bool(f(v[0], v[1]))
	}
}

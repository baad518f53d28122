// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/struct/fault"
	"github.com/severen/luna/internal/common/type/pair"
	"github.com/severen/luna/internal/common/type/void"
	"github.com/severen/luna/internal/common/validate"
)

func pairCommands() map[string]func([]cell.I) cell.I {
	return map[string]func([]cell.I) cell.I{
		"caar":     compose("caar", "aa"),
		"caddr":    compose("caddr", "add"),
		"cadr":     compose("cadr", "ad"),
		"car":      car,
		"cdar":     compose("cdar", "da"),
		"cddr":     compose("cddr", "dd"),
		"cdr":      cdr,
		"cons":     cons,
		"set-car!": setCar,
		"set-cdr!": setCdr,
	}
}

// properPair faults unless c is a pair other than the empty list.
// The empty list is represented as a pair internally but car and cdr
// of it are errors.
func properPair(name string, c cell.I) cell.I {
	if c == pair.Null {
		panic(fault.Typef("()", "pair"))
	}

	if !pair.Is(c) {
		panic(fault.Typef(c.Name(), "pair"))
	}

	return c
}

func car(args []cell.I) cell.I {
	v := validate.Args("car", args, 1, 1)[0]

	return pair.Car(properPair("car", v))
}

func cdr(args []cell.I) cell.I {
	v := validate.Args("cdr", args, 1, 1)[0]

	return pair.Cdr(properPair("cdr", v))
}

// compose builds a c[ad]+r accessor. The ops letters are applied from
// right to left, so "ad" is (car (cdr x)).
func compose(name, ops string) func([]cell.I) cell.I {
	return func(args []cell.I) cell.I {
		v := validate.Args(name, args, 1, 1)[0]

		for i := len(ops) - 1; i >= 0; i-- {
			if ops[i] == 'a' {
				v = pair.Car(properPair(name, v))
			} else {
				v = pair.Cdr(properPair(name, v))
			}
		}

		return v
	}
}

func cons(args []cell.I) cell.I {
	v := validate.Args("cons", args, 2, 2)

	return pair.Cons(v[0], v[1])
}

func setCar(args []cell.I) cell.I {
	v := validate.Args("set-car!", args, 2, 2)

	pair.SetCar(properPair("set-car!", v[0]), v[1])

	return void.Unspecified
}

func setCdr(args []cell.I) cell.I {
	v := validate.Args("set-cdr!", args, 2, 2)

	pair.SetCdr(properPair("set-cdr!", v[0]), v[1])

	return void.Unspecified
}

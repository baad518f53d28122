// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/interface/integer"
	"github.com/severen/luna/internal/common/struct/fault"
	"github.com/severen/luna/internal/common/type/boolean"
	"github.com/severen/luna/internal/common/type/list"
	"github.com/severen/luna/internal/common/type/num"
	"github.com/severen/luna/internal/common/type/pair"
	"github.com/severen/luna/internal/common/validate"
)

func listCommands() map[string]func([]cell.I) cell.I {
	return map[string]func([]cell.I) cell.I{
		"append":    appendLists,
		"assoc":     assoc("assoc", Equal),
		"assq":      assoc("assq", Eq),
		"assv":      assoc("assv", Eqv),
		"length":    length,
		"list":      listOf,
		"list-ref":  listRef,
		"list-tail": listTail,
		"list?":     isList,
		"member":    member("member", Equal),
		"memq":      member("memq", Eq),
		"memv":      member("memv", Eqv),
		"null?":     isNull,
		"reverse":   reverse,
	}
}

// proper faults unless c is a proper list.
func proper(name string, c cell.I) cell.I {
	if !list.Proper(c) {
		panic(fault.Typef(c.Name(), "proper list"))
	}

	return c
}

func appendLists(args []cell.I) cell.I {
	if len(args) == 0 {
		return pair.Null
	}

	for _, c := range args[:len(args)-1] {
		proper("append", c)
	}

	return list.Join(args...)
}

func assoc(name string, same func(a, b cell.I) bool) func([]cell.I) cell.I {
	return func(args []cell.I) cell.I {
		v := validate.Args(name, args, 2, 2)

		for c := proper(name, v[1]); c != pair.Null; c = pair.Cdr(c) {
			entry := pair.Car(c)
			if pair.Is(entry) && entry != pair.Null && same(v[0], pair.Car(entry)) {
				return entry
			}
		}

		return boolean.False
	}
}

func isList(args []cell.I) cell.I {
	v := validate.Args("list?", args, 1, 1)[0]

	return boolean.Bool(list.Proper(v))
}

func isNull(args []cell.I) cell.I {
	v := validate.Args("null?", args, 1, 1)[0]

	return boolean.Bool(v == pair.Null)
}

func length(args []cell.I) cell.I {
	v := validate.Args("length", args, 1, 1)[0]

	return num.Int(list.Length(proper("length", v)))
}

func listOf(args []cell.I) cell.I {
	return list.New(args...)
}

func listRef(args []cell.I) cell.I {
	v := validate.Args("list-ref", args, 2, 2)

	return pair.Car(properPair("list-ref", nth("list-ref", v[0], v[1])))
}

func listTail(args []cell.I) cell.I {
	v := validate.Args("list-tail", args, 2, 2)

	return nth("list-tail", v[0], v[1])
}

func member(name string, same func(a, b cell.I) bool) func([]cell.I) cell.I {
	return func(args []cell.I) cell.I {
		v := validate.Args(name, args, 2, 2)

		for c := proper(name, v[1]); c != pair.Null; c = pair.Cdr(c) {
			if same(v[0], pair.Car(c)) {
				return c
			}
		}

		return boolean.False
	}
}

// nth walks k links into a list.
func nth(name string, c, k cell.I) cell.I {
	n := integer.Value(k)
	if n < 0 {
		panic(fault.Typef(name, "non-negative index"))
	}

	for ; n > 0; n-- {
		c = pair.Cdr(properPair(name, c))
	}

	return c
}

func reverse(args []cell.I) cell.I {
	v := validate.Args("reverse", args, 1, 1)[0]

	return list.Reverse(proper("reverse", v))
}

// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/interface/integer"
	"github.com/severen/luna/internal/common/struct/fault"
	"github.com/severen/luna/internal/common/type/boolean"
	"github.com/severen/luna/internal/common/type/chr"
	"github.com/severen/luna/internal/common/type/list"
	"github.com/severen/luna/internal/common/type/num"
	"github.com/severen/luna/internal/common/type/pair"
	"github.com/severen/luna/internal/common/type/str"
	"github.com/severen/luna/internal/common/type/sym"
	"github.com/severen/luna/internal/common/type/void"
	"github.com/severen/luna/internal/common/validate"
)

func stringCommands() map[string]func([]cell.I) cell.I {
	return map[string]func([]cell.I) cell.I{
		"list->string":   listToString,
		"make-string":    makeString,
		"string":         makeStringOf,
		"string->list":   stringToList,
		"string->symbol": stringToSymbol,
		"string-append":  stringAppend,
		"string-copy":    stringCopy,
		"string-length":  stringLength,
		"string-ref":     stringRef,
		"string-set!":    stringSet,
		"string<=?":      stringCompare("string<=?", func(c int) bool { return c <= 0 }),
		"string<?":       stringCompare("string<?", func(c int) bool { return c < 0 }),
		"string=?":       stringCompare("string=?", func(c int) bool { return c == 0 }),
		"string>=?":      stringCompare("string>=?", func(c int) bool { return c >= 0 }),
		"string>?":       stringCompare("string>?", func(c int) bool { return c > 0 }),
		"substring":      substring,
		"symbol->string": symbolToString,
	}
}

// asString faults unless c is a string.
func asString(name string, c cell.I) *str.T {
	if !str.Is(c) {
		panic(fault.Typef(c.Name(), "string"))
	}

	return str.To(c)
}

func listToString(args []cell.I) cell.I {
	v := validate.Args("list->string", args, 1, 1)[0]

	runes := []rune{}
	for c := proper("list->string", v); c != pair.Null; c = pair.Cdr(c) {
		el := pair.Car(c)
		if !chr.Is(el) {
			panic(fault.Typef(el.Name(), "character"))
		}

		runes = append(runes, chr.To(el).Rune())
	}

	return str.New(string(runes))
}

func makeString(args []cell.I) cell.I {
	v := validate.Args("make-string", args, 1, 2)

	fill := ' '
	if len(v) == 2 {
		if !chr.Is(v[1]) {
			panic(fault.Typef(v[1].Name(), "character"))
		}

		fill = chr.To(v[1]).Rune()
	}

	n := integer.Value(v[0])
	if n < 0 {
		panic(fault.Typef("make-string", "non-negative length"))
	}

	return str.Make(n, fill)
}

func makeStringOf(args []cell.I) cell.I {
	runes := make([]rune, 0, len(args))

	for _, c := range args {
		if !chr.Is(c) {
			panic(fault.Typef(c.Name(), "character"))
		}

		runes = append(runes, chr.To(c).Rune())
	}

	return str.New(string(runes))
}

func stringAppend(args []cell.I) cell.I {
	text := ""
	for _, c := range args {
		text += asString("string-append", c).String()
	}

	return str.New(text)
}

func stringCompare(name string, ok func(int) bool) func([]cell.I) cell.I {
	return func(args []cell.I) cell.I {
		if len(args) < 2 {
			panic(fault.Arityf(name, 2, len(args), true))
		}

		for i := 1; i < len(args); i++ {
			a := asString(name, args[i-1]).String()
			b := asString(name, args[i]).String()

			c := 0
			switch {
			case a < b:
				c = -1
			case a > b:
				c = 1
			}

			if !ok(c) {
				return boolean.False
			}
		}

		return boolean.True
	}
}

func stringCopy(args []cell.I) cell.I {
	v := validate.Args("string-copy", args, 1, 1)[0]

	return str.New(asString("string-copy", v).String())
}

func stringLength(args []cell.I) cell.I {
	v := validate.Args("string-length", args, 1, 1)[0]

	return num.Int(asString("string-length", v).Len())
}

func stringRef(args []cell.I) cell.I {
	v := validate.Args("string-ref", args, 2, 2)

	return chr.Rune(asString("string-ref", v[0]).At(integer.Value(v[1])))
}

func stringSet(args []cell.I) cell.I {
	v := validate.Args("string-set!", args, 3, 3)

	if !chr.Is(v[2]) {
		panic(fault.Typef(v[2].Name(), "character"))
	}

	asString("string-set!", v[0]).SetAt(integer.Value(v[1]), chr.To(v[2]).Rune())

	return void.Unspecified
}

func stringToList(args []cell.I) cell.I {
	v := validate.Args("string->list", args, 1, 1)[0]

	s := asString("string->list", v)

	elements := make([]cell.I, 0, s.Len())
	for _, r := range s.String() {
		elements = append(elements, chr.Rune(r))
	}

	return list.New(elements...)
}

func stringToSymbol(args []cell.I) cell.I {
	v := validate.Args("string->symbol", args, 1, 1)[0]

	return sym.New(asString("string->symbol", v).String())
}

func substring(args []cell.I) cell.I {
	v := validate.Args("substring", args, 3, 3)

	s := asString("substring", v[0])

	start, end := integer.Value(v[1]), integer.Value(v[2])
	if start < 0 || end < start || end > s.Len() {
		panic(fault.Typef("substring", "valid range"))
	}

	runes := make([]rune, 0, end-start)
	for i := start; i < end; i++ {
		runes = append(runes, s.At(i))
	}

	return str.New(string(runes))
}

func symbolToString(args []cell.I) cell.I {
	v := validate.Args("symbol->string", args, 1, 1)[0]

	if !sym.Is(v) {
		panic(fault.Typef(v.Name(), "symbol"))
	}

	return str.New(sym.To(v).String())
}

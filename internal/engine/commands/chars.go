// Released under an MIT license. See LICENSE.

package commands

import (
	"unicode"

	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/interface/integer"
	"github.com/severen/luna/internal/common/struct/fault"
	"github.com/severen/luna/internal/common/type/boolean"
	"github.com/severen/luna/internal/common/type/chr"
	"github.com/severen/luna/internal/common/type/num"
	"github.com/severen/luna/internal/common/validate"
)

func charCommands() map[string]func([]cell.I) cell.I {
	return map[string]func([]cell.I) cell.I{
		"char->integer":    charToInteger,
		"char-alphabetic?": charClass("char-alphabetic?", unicode.IsLetter),
		"char-downcase":    charCase("char-downcase", unicode.ToLower),
		"char-numeric?":    charClass("char-numeric?", unicode.IsDigit),
		"char-upcase":      charCase("char-upcase", unicode.ToUpper),
		"char-whitespace?": charClass("char-whitespace?", unicode.IsSpace),
		"char<=?":          charCompare("char<=?", func(c int) bool { return c <= 0 }),
		"char<?":           charCompare("char<?", func(c int) bool { return c < 0 }),
		"char=?":           charCompare("char=?", func(c int) bool { return c == 0 }),
		"char>=?":          charCompare("char>=?", func(c int) bool { return c >= 0 }),
		"char>?":           charCompare("char>?", func(c int) bool { return c > 0 }),
		"integer->char":    integerToChar,
	}
}

// asChar faults unless c is a character.
func asChar(name string, c cell.I) rune {
	if !chr.Is(c) {
		panic(fault.Typef(c.Name(), "character"))
	}

	return chr.To(c).Rune()
}

func charCase(name string, f func(rune) rune) func([]cell.I) cell.I {
	return func(args []cell.I) cell.I {
		v := validate.Args(name, args, 1, 1)[0]

		return chr.Rune(f(asChar(name, v)))
	}
}

func charClass(name string, f func(rune) bool) func([]cell.I) cell.I {
	return func(args []cell.I) cell.I {
		v := validate.Args(name, args, 1, 1)[0]

		return boolean.Bool(f(asChar(name, v)))
	}
}

func charCompare(name string, ok func(int) bool) func([]cell.I) cell.I {
	return func(args []cell.I) cell.I {
		if len(args) < 2 {
			panic(fault.Arityf(name, 2, len(args), true))
		}

		for i := 1; i < len(args); i++ {
			a := asChar(name, args[i-1])
			b := asChar(name, args[i])

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

func charToInteger(args []cell.I) cell.I {
	v := validate.Args("char->integer", args, 1, 1)[0]

	return num.Int(int(asChar("char->integer", v)))
}

func integerToChar(args []cell.I) cell.I {
	v := validate.Args("integer->char", args, 1, 1)[0]

	return chr.Rune(rune(integer.Value(v)))
}

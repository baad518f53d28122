// Released under an MIT license. See LICENSE.

package commands

import (
	"math"
	"math/big"
	"strings"

	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/interface/literal"
	"github.com/severen/luna/internal/common/interface/rational"
	"github.com/severen/luna/internal/common/struct/fault"
	"github.com/severen/luna/internal/common/type/boolean"
	"github.com/severen/luna/internal/common/type/flt"
	"github.com/severen/luna/internal/common/type/num"
	"github.com/severen/luna/internal/common/type/str"
	"github.com/severen/luna/internal/common/validate"
)

func numberCommands() map[string]func([]cell.I) cell.I {
	return map[string]func([]cell.I) cell.I{
		"*":               mul,
		"+":               add,
		"-":               sub,
		"/":               div,
		"<":               compare("<", func(c int) bool { return c < 0 }),
		"<=":              compare("<=", func(c int) bool { return c <= 0 }),
		"=":               compare("=", func(c int) bool { return c == 0 }),
		">":               compare(">", func(c int) bool { return c > 0 }),
		">=":              compare(">=", func(c int) bool { return c >= 0 }),
		"abs":             abs,
		"ceiling":         rounder("ceiling", ratCeiling, math.Ceil),
		"even?":           parity("even?", 0),
		"exact":           toExact("exact"),
		"exact->inexact":  toInexact("exact->inexact"),
		"exact?":          isExact,
		"expt":            expt,
		"floor":           rounder("floor", ratFloor, math.Floor),
		"gcd":             gcd,
		"inexact":         toInexact("inexact"),
		"inexact?":        isInexact,
		"inexact->exact":  toExact("inexact->exact"),
		"integer?":        isInteger,
		"lcm":             lcm,
		"max":             extremum("max", func(c int) bool { return c > 0 }),
		"min":             extremum("min", func(c int) bool { return c < 0 }),
		"modulo":          modulo,
		"negative?":       sign("negative?", func(c int) bool { return c < 0 }),
		"number?":         isNumber,
		"number->string":  numberToString,
		"odd?":            parity("odd?", 1),
		"positive?":       sign("positive?", func(c int) bool { return c > 0 }),
		"quotient":        quotient,
		"rational?":       isNumber,
		"remainder":       remainder,
		"round":           rounder("round", ratRound, math.RoundToEven),
		"sqrt":            sqrt,
		"string->number":  stringToNumber,
		"truncate":        rounder("truncate", ratTruncate, math.Trunc),
		"zero?":           sign("zero?", func(c int) bool { return c == 0 }),
	}
}

// asFloat converts any number to a float64.
func asFloat(name string, c cell.I) float64 {
	if flt.Is(c) {
		return flt.To(c).Float()
	}

	if num.Is(c) {
		f, _ := num.To(c).Rat().Float64()

		return f
	}

	panic(fault.Typef(c.Name(), "number"))
}

// asInt converts an exact integer to a *big.Int.
func asInt(name string, c cell.I) *big.Int {
	if !num.Is(c) {
		panic(fault.Typef(c.Name(), "exact integer"))
	}

	r := num.To(c).Rat()
	if !r.IsInt() {
		panic(fault.Typef(c.Name(), "exact integer"))
	}

	return r.Num()
}

// asRat converts an exact number to a *big.Rat.
func asRat(name string, c cell.I) *big.Rat {
	if !num.Is(c) {
		panic(fault.Typef(c.Name(), "number"))
	}

	return rational.Number(c)
}

// exactArgs reports whether every argument is exact. A non-number
// argument is a type fault.
func exactArgs(name string, args []cell.I) bool {
	exact := true

	for _, c := range args {
		switch {
		case num.Is(c):
		case flt.Is(c):
			exact = false
		default:
			panic(fault.Typef(c.Name(), "number"))
		}
	}

	return exact
}

func abs(args []cell.I) cell.I {
	v := validate.Args("abs", args, 1, 1)[0]

	if flt.Is(v) {
		return flt.Float(math.Abs(flt.To(v).Float()))
	}

	return num.Rat(new(big.Rat).Abs(asRat("abs", v)))
}

func add(args []cell.I) cell.I {
	if exactArgs("+", args) {
		sum := new(big.Rat)
		for _, c := range args {
			sum.Add(sum, asRat("+", c))
		}

		return num.Rat(sum)
	}

	sum := 0.0
	for _, c := range args {
		sum += asFloat("+", c)
	}

	return flt.Float(sum)
}

// compare builds a chained comparison like (< 1 2 3).
func compare(name string, ok func(int) bool) func([]cell.I) cell.I {
	return func(args []cell.I) cell.I {
		if len(args) < 2 {
			panic(fault.Arityf(name, 2, len(args), true))
		}

		exact := exactArgs(name, args)

		for i := 1; i < len(args); i++ {
			var c int

			if exact {
				c = asRat(name, args[i-1]).Cmp(asRat(name, args[i]))
			} else {
				a, b := asFloat(name, args[i-1]), asFloat(name, args[i])
				switch {
				case a < b:
					c = -1
				case a > b:
					c = 1
				}
			}

			if !ok(c) {
				return boolean.False
			}
		}

		return boolean.True
	}
}

func div(args []cell.I) cell.I {
	if len(args) < 1 {
		panic(fault.Arityf("/", 1, 0, true))
	}

	if exactArgs("/", args) {
		if len(args) == 1 {
			return num.Rat(new(big.Rat).Quo(
				big.NewRat(1, 1), reciprocalSafe(asRat("/", args[0])),
			))
		}

		q := new(big.Rat).Set(asRat("/", args[0]))
		for _, c := range args[1:] {
			q.Quo(q, reciprocalSafe(asRat("/", c)))
		}

		return num.Rat(q)
	}

	q := asFloat("/", args[0])
	if len(args) == 1 {
		q = 1 / q
	}

	for _, c := range args[1:] {
		q /= asFloat("/", c)
	}

	return flt.Float(q)
}

func expt(args []cell.I) cell.I {
	v := validate.Args("expt", args, 2, 2)

	base, power := v[0], v[1]

	if num.Is(base) && num.Is(power) && num.To(power).Rat().IsInt() {
		e := num.To(power).Rat().Num()
		if e.IsInt64() {
			return num.Rat(ratExpt(num.To(base).Rat(), e.Int64()))
		}
	}

	return flt.Float(math.Pow(asFloat("expt", base), asFloat("expt", power)))
}

func extremum(name string, better func(int) bool) func([]cell.I) cell.I {
	return func(args []cell.I) cell.I {
		if len(args) < 1 {
			panic(fault.Arityf(name, 1, 0, true))
		}

		exact := exactArgs(name, args)

		best := args[0]
		for _, c := range args[1:] {
			var cmp int

			if num.Is(c) && num.Is(best) {
				cmp = asRat(name, c).Cmp(asRat(name, best))
			} else {
				// Compare in float64. Infinities order correctly here,
				// where big.Rat cannot represent them at all.
				a, b := asFloat(name, c), asFloat(name, best)
				switch {
				case a < b:
					cmp = -1
				case a > b:
					cmp = 1
				}
			}

			if better(cmp) {
				best = c
			}
		}

		if !exact && num.Is(best) {
			f, _ := num.To(best).Rat().Float64()

			return flt.Float(f)
		}

		return best
	}
}

func gcd(args []cell.I) cell.I {
	acc := big.NewInt(0)
	for _, c := range args {
		acc.GCD(nil, nil, acc, new(big.Int).Abs(asInt("gcd", c)))
	}

	return num.Rat(new(big.Rat).SetInt(acc))
}

func isExact(args []cell.I) cell.I {
	v := validate.Args("exact?", args, 1, 1)[0]

	if !num.Is(v) && !flt.Is(v) {
		panic(fault.Typef(v.Name(), "number"))
	}

	return boolean.Bool(num.Is(v))
}

func isInexact(args []cell.I) cell.I {
	v := validate.Args("inexact?", args, 1, 1)[0]

	if !num.Is(v) && !flt.Is(v) {
		panic(fault.Typef(v.Name(), "number"))
	}

	return boolean.Bool(flt.Is(v))
}

func isInteger(args []cell.I) cell.I {
	v := validate.Args("integer?", args, 1, 1)[0]

	switch {
	case num.Is(v):
		return boolean.Bool(num.To(v).Rat().IsInt())
	case flt.Is(v):
		f := flt.To(v).Float()

		return boolean.Bool(f == math.Trunc(f) && !math.IsInf(f, 0))
	}

	return boolean.False
}

func isNumber(args []cell.I) cell.I {
	v := validate.Args("number?", args, 1, 1)[0]

	return boolean.Bool(num.Is(v) || flt.Is(v))
}

func lcm(args []cell.I) cell.I {
	acc := big.NewInt(1)
	for _, c := range args {
		i := new(big.Int).Abs(asInt("lcm", c))
		if i.Sign() == 0 {
			return num.Int(0)
		}

		g := new(big.Int).GCD(nil, nil, acc, i)
		acc.Div(acc.Mul(acc, i), g)
	}

	return num.Rat(new(big.Rat).SetInt(acc))
}

func modulo(args []cell.I) cell.I {
	v := validate.Args("modulo", args, 2, 2)

	a, b := asInt("modulo", v[0]), asInt("modulo", v[1])
	if b.Sign() == 0 {
		panic(fault.New(fault.DivisionByZero, "division by zero in modulo"))
	}

	r := new(big.Int).Rem(a, b)
	if r.Sign() != 0 && r.Sign() != b.Sign() {
		r.Add(r, b)
	}

	return num.Rat(new(big.Rat).SetInt(r))
}

func mul(args []cell.I) cell.I {
	if exactArgs("*", args) {
		product := big.NewRat(1, 1)
		for _, c := range args {
			product.Mul(product, asRat("*", c))
		}

		return num.Rat(product)
	}

	product := 1.0
	for _, c := range args {
		product *= asFloat("*", c)
	}

	return flt.Float(product)
}

func numberToString(args []cell.I) cell.I {
	v := validate.Args("number->string", args, 1, 2)

	if len(v) == 2 {
		radix := asInt("number->string", v[1])
		i := asInt("number->string", v[0])

		switch radix.Int64() {
		case 2, 8, 10, 16:
			return str.New(i.Text(int(radix.Int64())))
		}

		panic(fault.Typef(radix.String(), "radix of 2, 8, 10, or 16"))
	}

	if !num.Is(v[0]) && !flt.Is(v[0]) {
		panic(fault.Typef(v[0].Name(), "number"))
	}

	return str.New(literal.String(v[0]))
}

func parity(name string, rem int64) func([]cell.I) cell.I {
	return func(args []cell.I) cell.I {
		v := validate.Args(name, args, 1, 1)[0]

		i := asInt(name, v)

		r := new(big.Int).Mod(i, big.NewInt(2))

		return boolean.Bool(r.Int64() == rem)
	}
}

func quotient(args []cell.I) cell.I {
	v := validate.Args("quotient", args, 2, 2)

	a, b := asInt("quotient", v[0]), asInt("quotient", v[1])
	if b.Sign() == 0 {
		panic(fault.New(fault.DivisionByZero, "division by zero in quotient"))
	}

	return num.Rat(new(big.Rat).SetInt(new(big.Int).Quo(a, b)))
}

func remainder(args []cell.I) cell.I {
	v := validate.Args("remainder", args, 2, 2)

	a, b := asInt("remainder", v[0]), asInt("remainder", v[1])
	if b.Sign() == 0 {
		panic(fault.New(fault.DivisionByZero, "division by zero in remainder"))
	}

	return num.Rat(new(big.Rat).SetInt(new(big.Int).Rem(a, b)))
}

func rounder(name string, exact func(*big.Rat) *big.Int, inexact func(float64) float64) func([]cell.I) cell.I {
	return func(args []cell.I) cell.I {
		v := validate.Args(name, args, 1, 1)[0]

		if flt.Is(v) {
			return flt.Float(inexact(flt.To(v).Float()))
		}

		return num.Rat(new(big.Rat).SetInt(exact(asRat(name, v))))
	}
}

func sign(name string, ok func(int) bool) func([]cell.I) cell.I {
	return func(args []cell.I) cell.I {
		v := validate.Args(name, args, 1, 1)[0]

		if flt.Is(v) {
			f := flt.To(v).Float()

			switch {
			case f < 0:
				return boolean.Bool(ok(-1))
			case f > 0:
				return boolean.Bool(ok(1))
			}

			return boolean.Bool(ok(0))
		}

		return boolean.Bool(ok(asRat(name, v).Sign()))
	}
}

func sqrt(args []cell.I) cell.I {
	v := validate.Args("sqrt", args, 1, 1)[0]

	return flt.Float(math.Sqrt(asFloat("sqrt", v)))
}

func stringToNumber(args []cell.I) (c cell.I) {
	v := validate.Args("string->number", args, 1, 1)[0]

	text := str.To(v).String()

	defer func() {
		if recover() != nil {
			c = boolean.False
		}
	}()

	return parseNumber(text)
}

func sub(args []cell.I) cell.I {
	if len(args) < 1 {
		panic(fault.Arityf("-", 1, 0, true))
	}

	if exactArgs("-", args) {
		difference := new(big.Rat).Set(asRat("-", args[0]))
		if len(args) == 1 {
			return num.Rat(difference.Neg(difference))
		}

		for _, c := range args[1:] {
			difference.Sub(difference, asRat("-", c))
		}

		return num.Rat(difference)
	}

	difference := asFloat("-", args[0])
	if len(args) == 1 {
		return flt.Float(-difference)
	}

	for _, c := range args[1:] {
		difference -= asFloat("-", c)
	}

	return flt.Float(difference)
}

func toExact(name string) func([]cell.I) cell.I {
	return func(args []cell.I) cell.I {
		v := validate.Args(name, args, 1, 1)[0]

		if num.Is(v) {
			return v
		}

		f := flt.To(v).Float()

		r := new(big.Rat).SetFloat64(f)
		if r == nil {
			panic(fault.Typef(v.Name(), "finite number"))
		}

		return num.Rat(r)
	}
}

func toInexact(name string) func([]cell.I) cell.I {
	return func(args []cell.I) cell.I {
		v := validate.Args(name, args, 1, 1)[0]

		if flt.Is(v) {
			return v
		}

		f, _ := asRat(name, v).Float64()

		return flt.Float(f)
	}
}

func ratCeiling(r *big.Rat) *big.Int {
	i := ratFloor(r)
	if !r.IsInt() {
		i.Add(i, big.NewInt(1))
	}

	return i
}

// ratExpt raises base to an integer power with exact arithmetic.
func ratExpt(base *big.Rat, power int64) *big.Rat {
	invert := power < 0
	if invert {
		power = -power
	}

	e := big.NewInt(power)

	r := new(big.Rat).SetFrac(
		new(big.Int).Exp(base.Num(), e, nil),
		new(big.Int).Exp(base.Denom(), e, nil),
	)

	if invert {
		r.Inv(new(big.Rat).Set(reciprocalSafe(r)))
	}

	return r
}

// ratFloor rounds toward negative infinity. The denominator of a
// big.Rat is always positive, so Euclidean division is floor division.
func ratFloor(r *big.Rat) *big.Int {
	return new(big.Int).Div(r.Num(), r.Denom())
}

// ratRound rounds to the nearest integer, ties to even.
func ratRound(r *big.Rat) *big.Int {
	f := ratFloor(r)

	frac := new(big.Rat).Sub(r, new(big.Rat).SetInt(f))

	switch frac.Cmp(big.NewRat(1, 2)) {
	case -1:
		return f
	case 1:
		return f.Add(f, big.NewInt(1))
	}

	if f.Bit(0) == 1 {
		f.Add(f, big.NewInt(1))
	}

	return f
}

func ratTruncate(r *big.Rat) *big.Int {
	return new(big.Int).Quo(r.Num(), r.Denom())
}

// parseNumber parses text with the same rules the reader uses for
// numeric atoms. It panics if text is not a number.
func parseNumber(text string) cell.I {
	if text == "" {
		panic("'' is not a valid number")
	}

	if text[0] == '#' {
		return num.New(text)
	}

	rest := text
	if rest[0] == '+' || rest[0] == '-' {
		rest = rest[1:]
	}

	if rest == "" || (rest[0] != '.' && (rest[0] < '0' || rest[0] > '9')) {
		panic("'" + text + "' is not a valid number")
	}

	if strings.ContainsAny(rest, ".eE") {
		return flt.New(text)
	}

	return num.New(text)
}

// reciprocalSafe faults on an exact zero divisor.
func reciprocalSafe(r *big.Rat) *big.Rat {
	if r.Sign() == 0 {
		panic(fault.New(fault.DivisionByZero, "division by zero"))
	}

	return r
}

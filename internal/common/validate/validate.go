// Released under an MIT license. See LICENSE.

package validate

import (
	"strconv"

	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/struct/fault"
	"github.com/severen/luna/internal/common/type/list"
	"github.com/severen/luna/internal/common/type/pair"
)

// Args checks that a builtin received between min and max arguments
// and returns them unchanged. A max of -1 means no upper bound.
func Args(name string, args []cell.I, min, max int) []cell.I {
	if len(args) >= min && (max < 0 || len(args) <= max) {
		return args
	}

	expected := min
	if max >= 0 && len(args) > max {
		expected = max
	}

	panic(fault.Arityf(name, expected, len(args), min != max))
}

// Variadic unpacks between min and max leading expressions from the
// special form body actual, returning them and whatever remains. Too
// few expressions is a malformed form naming the special form.
func Variadic(name string, actual cell.I, min, max int) ([]cell.I, cell.I) {
	expected := make([]cell.I, 0, max)

	for i := 0; i < max; i++ {
		if actual == pair.Null {
			if i < min {
				panic(fault.Malformed(
					name, "expected at least "+expressions(min)+
						", given "+strconv.Itoa(i),
				))
			}

			break
		}

		expected = append(expected, pair.Car(actual))

		actual = pair.Cdr(actual)
	}

	return expected, actual
}

// Fixed unpacks between min and max expressions from the special form
// body actual. Anything left over is a malformed form naming the
// special form.
func Fixed(name string, actual cell.I, min, max int) []cell.I {
	expected, rest := Variadic(name, actual, min, max)
	if rest != pair.Null {
		panic(fault.Malformed(
			name, "expected at most "+expressions(max)+
				", given "+strconv.Itoa(list.Length(actual)),
		))
	}

	return expected
}

func expressions(n int) string {
	if n == 1 {
		return "1 expression"
	}

	return strconv.Itoa(n) + " expressions"
}

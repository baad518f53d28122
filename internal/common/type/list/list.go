// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
package list

import (
	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/type/pair"
)

// Join concatenates lists. The result shares no structure with its
// inputs except the final list, which is used as the tail unchanged
// (this is what append requires).
// A non-pair where a pair is expected will cause a panic.
// All lists but the last must be proper and non-circular.
func Join(lists ...cell.I) cell.I {
	if len(lists) == 0 {
		return pair.Null
	}

	start := pair.Null
	var end cell.I

	for _, list := range lists[:len(lists)-1] {
		for list != pair.Null {
			p := pair.Cons(pair.Car(list), pair.Null)

			if start == pair.Null {
				start = p
			} else {
				pair.SetCdr(end, p)
			}

			end = p

			list = pair.Cdr(list)
		}
	}

	last := lists[len(lists)-1]

	if start == pair.Null {
		return last
	}

	pair.SetCdr(end, last)

	return start
}

// Length returns the number of elements in list.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Length(list cell.I) int {
	length := 0

	for list != nil && list != pair.Null {
		length++

		list = pair.Cdr(list)
	}

	return length
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	if len(elements) == 0 {
		return pair.Null
	}

	start := pair.Cons(elements[0], pair.Null)
	end := start

	for _, e := range elements[1:] {
		p := pair.Cons(e, pair.Null)
		pair.SetCdr(end, p)
		end = p
	}

	return start
}

// Proper returns true if list is a proper list: a chain of pairs
// terminated by the empty list.
func Proper(list cell.I) bool {
	for list != pair.Null {
		if !pair.Is(list) {
			return false
		}

		list = pair.Cdr(list)
	}

	return true
}

// Reverse reverses list.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Reverse(list cell.I) cell.I {
	reversed := pair.Null

	for list != nil && list != pair.Null {
		reversed = pair.Cons(pair.Car(list), reversed)

		list = pair.Cdr(list)
	}

	return reversed
}

// Slice collects the elements of list into a Go slice.
// The list must be proper and non-circular.
func Slice(list cell.I) []cell.I {
	s := []cell.I{}

	for list != pair.Null {
		s = append(s, pair.Car(list))

		list = pair.Cdr(list)
	}

	return s
}

// Tail returns the sublist of list starting at element index.
// A non-pair value where a pair is expected will cause a panic.
func Tail(list cell.I, index int) cell.I {
	for index > 0 {
		list = pair.Cdr(list)

		index--
	}

	return list
}

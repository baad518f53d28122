// Released under an MIT license. See LICENSE.

// Package fault provides luna's classified error type.
//
// Everything that can go wrong while scanning, reading, or evaluating a
// form is reported as a *fault.T so that the front end has structured
// information (the offending name, expected vs. given arity, the source
// location) and not just text. Inside the interpreter a fault travels as
// a panic value; the evaluation and read boundaries recover it and hand
// it to the caller as an ordinary error.
package fault

import (
	"strconv"

	"github.com/severen/luna/internal/common/struct/loc"
)

// Kind classifies a fault.
type Kind int

// Fault kinds. The read-layer kinds (Lex, UnexpectedToken, UnexpectedEOF)
// never reach the evaluator; the rest never come from the reader.
const (
	Lex Kind = iota
	UnexpectedToken
	UnexpectedEOF
	UnboundVariable
	Type
	Arity
	DivisionByZero
	MalformedSpecialForm
	ApplyNonProcedure
	ApplyNil
	RecursionDepth
	User
)

// T (fault) is a classified luna error.
type T struct {
	Kind     Kind
	Msg      string // Human-readable description.
	Name     string // Offending symbol, token, or type name, if any.
	Expected int    // For Arity faults.
	Given    int    // For Arity faults.
	Source   *loc.T // Where the problem was noticed, if known.
}

type fault = T

// New creates a fault of kind k with the description msg.
func New(k Kind, msg string) *fault {
	return &fault{Kind: k, Msg: msg}
}

// Arityf creates an Arity fault for the procedure name.
func Arityf(name string, expected, given int, variadic bool) *fault {
	msg := name + ": expected "
	if variadic {
		msg += "at least "
	}

	msg += strconv.Itoa(expected) + plural(expected, " argument") +
		", given " + strconv.Itoa(given)

	return &fault{Kind: Arity, Msg: msg, Name: name, Expected: expected, Given: given}
}

// Malformed creates a MalformedSpecialForm fault for the form name.
func Malformed(name, why string) *fault {
	return &fault{Kind: MalformedSpecialForm, Msg: name + ": " + why, Name: name}
}

// Typef creates a Type fault: name cannot be treated as want.
func Typef(name, want string) *fault {
	return &fault{Kind: Type, Msg: name + " is not " + article(want) + want, Name: name}
}

// Unbound creates an UnboundVariable fault for name.
func Unbound(name string) *fault {
	return &fault{Kind: UnboundVariable, Msg: "unbound variable: " + name, Name: name}
}

// Error makes a fault an error.
func (f *fault) Error() string {
	if f.Source != nil {
		return f.Source.String() + ": " + f.Msg
	}

	return f.Msg
}

// At records where the fault was noticed and returns the fault.
func (f *fault) At(source *loc.T) *fault {
	if f.Source == nil {
		f.Source = source
	}

	return f
}

// Incomplete returns true if err reports input that ended mid-form.
// The REPL uses this to prompt for a continuation line instead of
// reporting an error.
func Incomplete(err error) bool {
	f, ok := err.(*fault)

	return ok && f.Kind == UnexpectedEOF
}

func article(s string) string {
	if s == "" {
		return ""
	}

	switch s[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an "
	}

	return "a "
}

func plural(n int, s string) string {
	if n == 1 {
		return s
	}

	return s + "s"
}

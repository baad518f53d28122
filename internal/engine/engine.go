// Released under an MIT license. See LICENSE.

// Package engine evaluates cells.
//
// An engine owns a global environment preloaded with the primitive
// procedures and the prelude. Faults raised while evaluating travel as
// panics and are recovered at Evaluate, the engine's boundary, where
// they are returned as ordinary errors.
package engine

import (
	"fmt"
	"strings"

	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/interface/scope"
	"github.com/severen/luna/internal/common/struct/fault"
	"github.com/severen/luna/internal/common/type/builtin"
	"github.com/severen/luna/internal/common/type/env"
	"github.com/severen/luna/internal/common/type/list"
	"github.com/severen/luna/internal/engine/boot"
	"github.com/severen/luna/internal/engine/commands"
	"github.com/severen/luna/internal/reader"
)

// T holds the state of an engine.
type T struct {
	global scope.I
}

type engine = T

// New creates a new engine with a fresh global environment.
func New() *T {
	global := env.New(nil)

	for k, f := range commands.Functions() {
		global.Define(k, builtin.New(k, f))
	}

	global.Define("apply", builtin.New("apply", applyCommand))

	e := &engine{global: global}

	e.prelude()

	return e
}

// Evaluate evaluates c in the engine's global environment. A fault
// raised anywhere during evaluation is returned as the error.
func (e *engine) Evaluate(c cell.I) (v cell.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		v = nil

		switch r := r.(type) {
		case *fault.T:
			err = r
		case error:
			err = fault.New(fault.Type, r.Error())
		case string:
			err = fault.New(fault.Type, r)
		default:
			err = fault.New(fault.Type, fmt.Sprintf("%v", r))
		}
	}()

	return eval(c, e.global, 0), nil
}

// Global returns the engine's global environment.
func (e *engine) Global() scope.I {
	return e.global
}

// prelude evaluates the embedded boot script. The prelude ships with
// the interpreter; failing to evaluate it is a programming error.
func (e *engine) prelude() {
	r := reader.New("boot.scm")

	evaluate := func(forms []cell.I, err error) {
		if err != nil {
			panic("boot: " + err.Error())
		}

		for _, c := range forms {
			eval(c, e.global, 0)
		}
	}

	for _, line := range strings.Split(boot.Script(), "\n") {
		evaluate(r.Scan(line))
	}

	if err := r.Close(); err != nil {
		panic("boot: " + err.Error())
	}
}

// applyCommand is the one primitive that calls back into the
// evaluator, so it lives here rather than with the other commands.
func applyCommand(args []cell.I) cell.I {
	if len(args) < 2 {
		panic(fault.Arityf("apply", 2, len(args), true))
	}

	rest := args[len(args)-1]
	if !list.Proper(rest) {
		panic(fault.Typef(rest.Name(), "proper list"))
	}

	all := append([]cell.I{}, args[1:len(args)-1]...)
	all = append(all, list.Slice(rest)...)

	return apply(args[0], all, 0)
}

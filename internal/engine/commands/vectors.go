// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/interface/integer"
	"github.com/severen/luna/internal/common/struct/fault"
	"github.com/severen/luna/internal/common/type/list"
	"github.com/severen/luna/internal/common/type/num"
	"github.com/severen/luna/internal/common/type/vector"
	"github.com/severen/luna/internal/common/type/void"
	"github.com/severen/luna/internal/common/validate"
)

func vectorCommands() map[string]func([]cell.I) cell.I {
	return map[string]func([]cell.I) cell.I{
		"list->vector":  listToVector,
		"make-vector":   makeVector,
		"vector":        makeVectorOf,
		"vector->list":  vectorToList,
		"vector-fill!":  vectorFill,
		"vector-length": vectorLength,
		"vector-ref":    vectorRef,
		"vector-set!":   vectorSet,
	}
}

// asVector faults unless c is a vector.
func asVector(name string, c cell.I) *vector.T {
	if !vector.Is(c) {
		panic(fault.Typef(c.Name(), "vector"))
	}

	return vector.To(c)
}

func listToVector(args []cell.I) cell.I {
	v := validate.Args("list->vector", args, 1, 1)[0]

	return vector.New(list.Slice(proper("list->vector", v)))
}

func makeVector(args []cell.I) cell.I {
	v := validate.Args("make-vector", args, 1, 2)

	var fill cell.I = void.Unspecified
	if len(v) == 2 {
		fill = v[1]
	}

	n := integer.Value(v[0])
	if n < 0 {
		panic(fault.Typef("make-vector", "non-negative length"))
	}

	return vector.Make(n, fill)
}

func makeVectorOf(args []cell.I) cell.I {
	return vector.New(args)
}

func vectorFill(args []cell.I) cell.I {
	v := validate.Args("vector-fill!", args, 2, 2)

	asVector("vector-fill!", v[0]).Fill(v[1])

	return void.Unspecified
}

func vectorLength(args []cell.I) cell.I {
	v := validate.Args("vector-length", args, 1, 1)[0]

	return num.Int(asVector("vector-length", v).Len())
}

func vectorRef(args []cell.I) cell.I {
	v := validate.Args("vector-ref", args, 2, 2)

	return asVector("vector-ref", v[0]).At(integer.Value(v[1]))
}

func vectorSet(args []cell.I) cell.I {
	v := validate.Args("vector-set!", args, 3, 3)

	asVector("vector-set!", v[0]).Set(integer.Value(v[1]), v[2])

	return void.Unspecified
}

func vectorToList(args []cell.I) cell.I {
	v := validate.Args("vector->list", args, 1, 1)[0]

	return list.New(asVector("vector->list", v).Slice()...)
}

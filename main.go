// Released under an MIT license. See LICENSE.

// Luna is an interpreter for a small dialect of Scheme.
//
// With no arguments luna starts an interactive REPL. Given a script it
// evaluates the script's forms in order, and with -c it evaluates the
// supplied command. The first error stops a non-interactive session.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/type/builtin"
	"github.com/severen/luna/internal/common/type/list"
	"github.com/severen/luna/internal/common/type/str"
	"github.com/severen/luna/internal/common/validate"
	"github.com/severen/luna/internal/engine"
	"github.com/severen/luna/internal/reader"
	"github.com/severen/luna/internal/system/options"
	"github.com/severen/luna/internal/system/process"
	"github.com/severen/luna/internal/ui"
)

func main() {
	options.Parse()

	e := engine.New()

	e.Global().Define("command-line", builtin.New("command-line", commandLine()))

	if options.Interactive() {
		if err := process.BecomeForegroundGroup(); err != nil {
			println(err.Error())
			os.Exit(1)
		}

		ui.Run(e)

		process.RestoreForegroundGroup()

		return
	}

	if command := options.Command(); command != "" {
		os.Exit(run("command", strings.NewReader(command), e))
	}

	if path := options.Script(); path != "" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "luna: "+err.Error())
			os.Exit(1)
		}

		status := run(path, f, e)

		f.Close()
		os.Exit(status)
	}

	os.Exit(run("stdin", os.Stdin, e))
}

// run reads forms from in and evaluates them in order. It returns 1 as
// soon as reading or evaluating a form fails and 0 otherwise.
func run(name string, in io.Reader, e *engine.T) int {
	r := reader.New(name)

	scanner := bufio.NewScanner(in)

	first := true
	for scanner.Scan() {
		line := scanner.Text()

		// An executable script may start with an interpreter line.
		if first && strings.HasPrefix(line, "#!") {
			first = false

			continue
		}

		first = false

		forms, err := r.Scan(line)
		for _, c := range forms {
			if _, eerr := e.Evaluate(c); eerr != nil {
				return report(name, eerr)
			}
		}

		if err != nil {
			return report(name, err)
		}
	}

	if err := r.Close(); err != nil {
		return report(name, err)
	}

	return 0
}

// commandLine exposes the invocation to scripts: the script path, or
// "luna" when there is none, followed by the positional parameters.
func commandLine() func([]cell.I) cell.I {
	name := options.Script()
	if name == "" {
		name = "luna"
	}

	line := append([]string{name}, options.Args()...)

	return func(args []cell.I) cell.I {
		validate.Args("command-line", args, 0, 0)

		cells := make([]cell.I, len(line))
		for i, s := range line {
			cells[i] = str.New(s)
		}

		return list.New(cells...)
	}
}

func report(name string, err error) int {
	fmt.Fprintln(os.Stderr, name+": "+err.Error())

	return 1
}

// Released under an MIT license. See LICENSE.

// Package ui provides luna's interactive REPL.
package ui

import (
	"fmt"
	"os"

	"github.com/peterh/liner"
	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/interface/literal"
	"github.com/severen/luna/internal/common/type/void"
	"github.com/severen/luna/internal/reader"
	"github.com/severen/luna/internal/system/history"
	"github.com/severen/luna/internal/system/options"
)

const (
	promptMain = "> "
	promptMore = "  "
)

// Evaluator is the interface for things that want to process parsed
// forms.
type Evaluator interface {
	Evaluate(c cell.I) (cell.I, error)
}

// Run launches the REPL, which sends forms to the Evaluator.
func Run(e Evaluator) {
	cooked, err := liner.TerminalMode()
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}

	cli.SetCtrlCAborts(true)

	_ = history.Load(cli.ReadHistory)

	fmt.Printf("Welcome to Luna v%s!\n", options.Version)

	r := reader.New("repl")
	prompt := promptMain

	// A fresh reader abandons any partially read form.
	restart := func() {
		abandon(r)

		r = reader.New("repl")
		prompt = promptMain
	}

	for {
		merr := uncooked.ApplyMode()
		if merr != nil {
			println(merr.Error())
			os.Exit(1)
		}

		line, err := cli.Prompt(prompt)

		merr = cooked.ApplyMode()
		if merr != nil {
			println(merr.Error())
			os.Exit(1)
		}

		switch err {
		case nil:
			if line != "" {
				cli.AppendHistory(line)
			}
		case liner.ErrPromptAborted:
			fmt.Println()
			restart()

			continue
		default:
			fmt.Println()

			_ = history.Save(cli.WriteHistory)

			abandon(r)

			return
		}

		forms, rerr := r.Scan(line)

		for _, c := range forms {
			v, eerr := e.Evaluate(c)
			if eerr != nil {
				fmt.Fprintln(os.Stderr, "error: "+eerr.Error())
			} else if !void.Is(v) {
				fmt.Println(literal.String(v))
			}
		}

		if rerr != nil {
			fmt.Fprintln(os.Stderr, "error: "+rerr.Error())

			r = reader.New("repl")
			prompt = promptMain

			continue
		}

		if len(forms) == 0 {
			prompt = promptMore
		} else {
			prompt = promptMain
		}
	}
}

// abandon unwinds an active reader's goroutine without waiting on it.
func abandon(r *reader.T) {
	go func() {
		_ = r.Close()
	}()
}

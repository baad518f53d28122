// Released under an MIT license. See LICENSE.

// Package options parses luna's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v and the REPL banner.
const Version = "0.1.0"

//nolint:gochecknoglobals
var (
	args        []string
	command     string
	interactive bool
	script      string
	usage       = `luna

Usage:
  luna [SCRIPT [ARGUMENTS...]]
  luna -c COMMAND
  luna -h
  luna -v

Arguments:
  SCRIPT     Path to a luna script.
  ARGUMENTS  Positional parameters for the script.

Options:
  -c, --command=COMMAND  Evaluate the specified command and exit.
  -h, --help             Display this help.
  -v, --version          Print luna version.

If luna's stdin is a TTY and no script or command was given, the
interactive REPL is started. Otherwise forms are read from the script,
the command, or stdin and evaluated in order.
`
)

// Args returns the positional parameters.
func Args() []string {
	return args
}

// Command returns the text supplied with -c, if any.
func Command() string {
	return command
}

// Interactive returns true if the REPL should be started.
func Interactive() bool {
	return interactive
}

// Parse processes the command line.
func Parse() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], "luna version "+Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")
	args, _ = opts["ARGUMENTS"].([]string)

	if script == "" && command == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}
}

// Script returns the script path, if one was given.
func Script() string {
	return script
}

// Released under an MIT license. See LICENSE.

package commands

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"github.com/severen/luna/internal/common"
	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/interface/literal"
	"github.com/severen/luna/internal/common/struct/fault"
	"github.com/severen/luna/internal/common/type/chr"
	"github.com/severen/luna/internal/common/type/eof"
	"github.com/severen/luna/internal/common/type/void"
	"github.com/severen/luna/internal/common/validate"
	"github.com/severen/luna/internal/reader"
)

func ioCommands() map[string]func([]cell.I) cell.I {
	return map[string]func([]cell.I) cell.I{
		"display":     display,
		"eof-object?": is("eof-object?", eof.Is),
		"error":       raise,
		"newline":     newline,
		"read":        read,
		"write":       write,
		"write-char":  writeChar,
	}
}

// stdin wraps os.Stdin for read. The reader is line oriented, so read
// buffers a line at a time and queues any extra datums it completes.
//
//nolint:gochecknoglobals
var stdin struct {
	sync.Mutex
	buffered *bufio.Reader
	pending  []cell.I
	r        *reader.T
}

func display(args []cell.I) cell.I {
	v := validate.Args("display", args, 1, 1)[0]

	fmt.Print(common.String(v))

	return void.Unspecified
}

func newline(args []cell.I) cell.I {
	validate.Args("newline", args, 0, 0)

	fmt.Println()

	return void.Unspecified
}

// raise converts its arguments into a user fault: a message followed
// by any number of irritants.
func raise(args []cell.I) cell.I {
	if len(args) == 0 {
		panic(fault.New(fault.User, "error"))
	}

	msg := common.String(args[0])
	for _, c := range args[1:] {
		msg += " " + literal.String(c)
	}

	panic(fault.New(fault.User, msg))
}

func read(args []cell.I) cell.I {
	validate.Args("read", args, 0, 0)

	stdin.Lock()
	defer stdin.Unlock()

	if stdin.buffered == nil {
		stdin.buffered = bufio.NewReader(os.Stdin)
	}

	if stdin.r == nil {
		stdin.r = reader.New("stdin")
	}

	for {
		if len(stdin.pending) > 0 {
			c := stdin.pending[0]
			stdin.pending = stdin.pending[1:]

			return c
		}

		line, err := stdin.buffered.ReadString('\n')
		if line != "" {
			forms, perr := stdin.r.Scan(line)
			if perr != nil {
				stdin.r = nil

				panic(perr)
			}

			stdin.pending = forms
		}

		if err != nil {
			cerr := stdin.r.Close()
			stdin.r = nil

			if cerr != nil {
				panic(cerr)
			}

			if len(stdin.pending) > 0 {
				continue
			}

			return eof.Object
		}
	}
}

func write(args []cell.I) cell.I {
	v := validate.Args("write", args, 1, 1)[0]

	fmt.Print(literal.String(v))

	return void.Unspecified
}

func writeChar(args []cell.I) cell.I {
	v := validate.Args("write-char", args, 1, 1)[0]

	if !chr.Is(v) {
		panic(fault.Typef(v.Name(), "character"))
	}

	fmt.Print(string(chr.To(v).Rune()))

	return void.Unspecified
}

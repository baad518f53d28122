// Released under an MIT license. See LICENSE.

// Package reader converts text to cells.
//
// The reader is line oriented. Each call to Scan passes one line of
// text to the parser and returns the datums that line completes. A
// line can complete zero datums, when it ends inside an unfinished
// form, or several, when more than one datum is written on it.
package reader

import (
	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/struct/fault"
	"github.com/severen/luna/internal/common/struct/token"
	"github.com/severen/luna/internal/reader/lexer"
	"github.com/severen/luna/internal/reader/parser"
)

// T holds the state of the reader.
type T struct {
	e chan error  // Channel for parse errors.
	i chan string // Channel for lines of input text.
	o chan cell.I // Channel for parsed datums; nil marks end-of-line.

	l *lexer.T
	p *parser.T
}

type reader = T

// New creates a new reader. The name is used to label errors.
func New(name string) *T {
	r := &T{
		e: make(chan error, 1),
		i: make(chan string),
		o: make(chan cell.I),
		l: lexer.New(name),
	}

	r.p = parser.New(r.emit, r.item)

	go r.start()

	// Discard the marker sent before the first line is requested.
	<-r.o

	return r
}

// Close tells the reader that there is no more input. It returns an
// error if the input ended in the middle of a datum.
func (r *reader) Close() error {
	close(r.i)

	err := <-r.e

	// A construct the lexer never finished produces no tokens, so the
	// parser can end cleanly even though the input did not.
	if p := r.l.Pending(); p != "" && (err == nil || fault.Incomplete(err)) {
		return fault.New(fault.UnexpectedEOF, "unterminated "+p)
	}

	return err
}

// Scan passes line to the reader and returns the datums it completes.
// A nil error with no datums means the reader needs more input. Once
// Scan returns an error the reader is finished and must be replaced.
func (r *reader) Scan(line string) ([]cell.I, error) {
	forms := []cell.I{}

	select {
	case err := <-r.e:
		return forms, err
	case r.i <- line:
	}

	for {
		select {
		case c := <-r.o:
			if c == nil {
				return forms, nil
			}

			forms = append(forms, c)

		case err := <-r.e:
			return forms, err
		}
	}
}

func (r *reader) emit(c cell.I) {
	r.o <- c
}

// item hands the parser another token. When the lexer runs dry it
// sends the end-of-line marker and blocks until the next line arrives.
// It returns nil once the input channel is closed.
func (r *reader) item() *token.T {
	t := r.l.Token()

	for t == nil {
		r.o <- nil

		line, ok := <-r.i
		if !ok {
			return nil
		}

		r.l.Scan(line + "\n")

		t = r.l.Token()
	}

	return t
}

func (r *reader) start() {
	r.e <- r.p.Parse()

	close(r.e)
}

// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for luna source code.
//
// The luna lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk
// "Lexical Scanning in Go". See https://talks.golang.org/2011/lex.slide
// for more information.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/severen/luna/internal/common/struct/loc"
	"github.com/severen/luna/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes   string   // Buffer being scanned.
	depth   int      // Block comment nesting depth.
	first   int      // Index of the current token's first byte.
	index   int      // Index of the current byte.
	pending string   // Unterminated construct being scanned, if any.
	queue   []string // Buffers waiting to be scanned.
	runes   int      // Runes scanned on the current line.
	state   action   // Current action.

	source loc.T

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.state = skipSpace

	return l
}

// Pending describes what the scanner is in the middle of, if anything.
// It is consulted when input runs out to produce a useful diagnostic:
// an empty string means any partial token can still be completed by
// more text; otherwise the value names the unterminated construct.
func (l *T) Pending() string {
	return l.pending
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		l.gather()
		if len(l.bytes) == 0 {
			return nil
		}

		select {
		case t := <-l.tokens:
			return t
		default:
			state := l.state(l)
			if state != nil {
				l.state = state
			} else {
				close(l.tokens)
			}
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	source := l.source

	t := token.New(c, v, &source)

	l.tokens <- t
	l.skip()
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	length := len(l.bytes)
	bytes := strings.Join(l.queue, "")

	if length > 0 && l.first < length {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	} else {
		l.source.Char = 1
		l.runes = 1
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
	l.tokens = make(chan *token.T, 16)
}

func (l *T) next() rune {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.first = l.index
}

// T states.

func afterComma(l *T) action {
	r, w := l.peek()

	if r == eof {
		return nil
	}

	if r == '@' {
		l.accept(r, w)
		l.emit(token.UnquoteSplicing, l.Text())

		return skipSpace
	}

	l.emit(token.Unquote, l.Text())

	return skipSpace
}

func afterHash(l *T) action {
	r, w := l.peek()

	switch r {
	case eof:
		return nil
	case '(':
		l.accept(r, w)
		l.emit(token.OpenVector, l.Text())

		return skipSpace
	case '|':
		l.accept(r, w)
		l.skip()
		l.depth = 1
		l.pending = "block comment"

		return skipBlockComment
	case '\\':
		l.accept(r, w)

		return scanCharacter
	}

	return scanAtom
}

func scanAtom(l *T) action {
	for {
		r, w := l.peek()

		if r == eof {
			return nil
		}

		if delimiter(r) {
			break
		}

		l.accept(r, w)
	}

	text := l.Text()

	switch text {
	case ".":
		l.emit(token.Dot, text)
	case "#t", "#true", "#f", "#false":
		l.emit(token.Boolean, text)
	default:
		l.emit(token.Atom, text)
	}

	return skipSpace
}

func scanCharacter(l *T) action {
	// The rune after #\ is always part of the literal, even if it is
	// a delimiter: #\(, #\space, and #\; are all characters.
	if l.Text() == "#\\" {
		r, w := l.peek()
		if r == eof {
			return nil
		}

		l.accept(r, w)
	}

	for {
		r, w := l.peek()

		if r == eof {
			return nil
		}

		if !alphanumeric(r) {
			break
		}

		l.accept(r, w)
	}

	l.emit(token.Character, l.Text())

	return skipSpace
}

func scanString(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\\':
			l.accept(r, w)

			r, w = l.peek()
			if r == eof {
				return nil
			}

			l.accept(r, w)
		case '"':
			l.accept(r, w)
			l.pending = ""
			l.emit(token.String, l.Text())

			return skipSpace
		default:
			l.accept(r, w)
		}
	}
}

func skipBlockComment(l *T) action {
	for {
		r, w := l.peek()

		if r == eof {
			return nil
		}

		l.accept(r, w)

		switch r {
		case '#':
			if n, nw := l.peek(); n == '|' {
				l.accept(n, nw)
				l.depth++
			}
		case '|':
			if n, nw := l.peek(); n == '#' {
				l.accept(n, nw)
				l.depth--

				if l.depth == 0 {
					l.skip()
					l.pending = ""

					return skipSpace
				}
			}
		}
	}
}

func skipLineComment(l *T) action {
	for {
		r, w := l.peek()

		if r == eof {
			return nil
		}

		l.accept(r, w)

		if r == '\n' {
			l.skip()

			return skipSpace
		}
	}
}

func skipSpace(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case ' ', '\t', '\r', '\n':
			l.accept(r, w)
			l.skip()
		case ';':
			l.accept(r, w)

			return skipLineComment
		case '(', ')', '[', ']', '{', '}':
			l.accept(r, w)
			l.emit(token.Class(r), l.Text())

			return skipSpace
		case '\'':
			l.accept(r, w)
			l.emit(token.Quote, l.Text())

			return skipSpace
		case '`':
			l.accept(r, w)
			l.emit(token.Quasiquote, l.Text())

			return skipSpace
		case ',':
			l.accept(r, w)

			return afterComma
		case '"':
			l.accept(r, w)
			l.pending = "string literal"

			return scanString
		case '#':
			l.accept(r, w)

			return afterHash
		default:
			return scanAtom
		}
	}
}

func alphanumeric(r rune) bool {
	return r >= '0' && r <= '9' ||
		r >= 'A' && r <= 'Z' ||
		r >= 'a' && r <= 'z'
}

func delimiter(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '(', ')', '[', ']', '{', '}', '"', ';', '\'', '`', ',':
		return true
	}

	return false
}


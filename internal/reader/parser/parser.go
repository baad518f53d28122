// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent reader for luna source code.
//
// The parser consumes tokens and produces one cell per datum: pairs,
// symbols, numbers, strings, booleans, characters, and vectors. The
// quote, quasiquote, unquote, and unquote-splicing shorthands are
// expanded here, at read time.
package parser

import (
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/struct/fault"
	"github.com/severen/luna/internal/common/struct/token"
	"github.com/severen/luna/internal/common/type/boolean"
	"github.com/severen/luna/internal/common/type/chr"
	"github.com/severen/luna/internal/common/type/flt"
	"github.com/severen/luna/internal/common/type/list"
	"github.com/severen/luna/internal/common/type/num"
	"github.com/severen/luna/internal/common/type/pair"
	"github.com/severen/luna/internal/common/type/str"
	"github.com/severen/luna/internal/common/type/sym"
	"github.com/severen/luna/internal/common/type/vector"
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	emit  func(cell.I)    // Function to call to emit a parsed datum.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

type parser = T

// New creates a new parser.
// It connects a producer of tokens with a consumer of cells.
func New(emit func(cell.I), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Parse consumes tokens and emits cells until there are no more tokens.
// It returns nil when input ends cleanly between datums and a fault
// when input is malformed or ends mid-datum.
func (p *parser) Parse() (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		switch r := r.(type) {
		case *fault.T:
			err = r
		case error:
			err = fault.New(fault.Lex, r.Error())
		case string:
			err = fault.New(fault.Lex, r)
		default:
			err = fault.New(fault.Lex, "unexpected error")
		}
	}()

	for t := p.peek(); t != nil; t = p.peek() {
		p.emit(p.datum())
	}

	return nil
}

func (p *parser) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *parser) datum() cell.I {
	t := p.peek()
	if t == nil {
		p.eof()
	}

	switch t.Class() {
	case '(', '[', '{':
		return p.listTail(p.consume())

	case ')', ']', '}':
		panic(fault.New(
			fault.UnexpectedToken, "unexpected '"+t.Value()+"'",
		).At(t.Source()))

	case token.OpenVector:
		p.consume()

		return p.vectorTail(t)

	case token.Dot:
		panic(fault.New(
			fault.UnexpectedToken, "unexpected '.'",
		).At(t.Source()))

	case token.Quote:
		p.consume()

		return list.New(sym.New("quote"), p.datum())

	case token.Quasiquote:
		p.consume()

		return list.New(sym.New("quasiquote"), p.datum())

	case token.Unquote:
		p.consume()

		return list.New(sym.New("unquote"), p.datum())

	case token.UnquoteSplicing:
		p.consume()

		return list.New(sym.New("unquote-splicing"), p.datum())

	case token.Boolean:
		p.consume()

		return boolean.New(t.Value())

	case token.Character:
		p.consume()

		return character(t)

	case token.String:
		p.consume()

		return stringLiteral(t)

	case token.Atom:
		p.consume()

		return atom(t)
	}

	panic(fault.New(
		fault.Lex, "invalid token '"+t.Value()+"'",
	).At(t.Source()))
}

func (p *parser) eof() {
	panic(fault.New(fault.UnexpectedEOF, "unexpected end of input"))
}

// listTail reads the datums of a list whose opening delimiter, opener,
// has been consumed, including the dotted-pair form (a b . c).
func (p *parser) listTail(opener *token.T) cell.I {
	expected := closer(opener.Class())

	start := pair.Null
	var end cell.I

	for {
		t := p.peek()
		if t == nil {
			p.eof()
		}

		switch t.Class() {
		case expected:
			p.consume()

			return start

		case ')', ']', '}':
			panic(fault.New(
				fault.UnexpectedToken,
				"expected '"+string(rune(expected))+"' to close preceding '"+
					opener.Value()+"', found '"+t.Value()+"' instead",
			).At(t.Source()))

		case token.Dot:
			if start == pair.Null {
				panic(fault.New(
					fault.UnexpectedToken, "unexpected '.'",
				).At(t.Source()))
			}

			p.consume()

			pair.SetCdr(end, p.datum())

			t = p.peek()
			if t == nil {
				p.eof()
			}

			if !t.Is(expected) {
				panic(fault.New(
					fault.UnexpectedToken,
					"exactly one datum must follow '.'",
				).At(t.Source()))
			}

			p.consume()

			return start

		default:
			c := pair.Cons(p.datum(), pair.Null)

			if start == pair.Null {
				start = c
			} else {
				pair.SetCdr(end, c)
			}

			end = c
		}
	}
}

func (p *parser) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()
	if t == nil {
		return nil
	}

	p.ahead = 1
	p.token = t

	return t
}

// vectorTail reads the datums of a vector whose #( opener, opener, has
// been consumed.
func (p *parser) vectorTail(opener *token.T) cell.I {
	elements := []cell.I{}

	for {
		t := p.peek()
		if t == nil {
			p.eof()
		}

		switch t.Class() {
		case ')':
			p.consume()

			return vector.New(elements)

		case ']', '}':
			panic(fault.New(
				fault.UnexpectedToken,
				"expected ')' to close preceding '"+opener.Value()+
					"', found '"+t.Value()+"' instead",
			).At(t.Source()))

		case token.Dot:
			panic(fault.New(
				fault.UnexpectedToken, "unexpected '.' in vector",
			).At(t.Source()))

		default:
			elements = append(elements, p.datum())
		}
	}
}

// atom converts an atom token to a number if it has numeric syntax and
// a symbol otherwise.
func atom(t *token.T) cell.I {
	text := t.Value()

	if c := number(text); c != nil {
		return c
	}

	if text[0] == '#' {
		panic(fault.New(
			fault.Lex, "invalid literal '"+text+"'",
		).At(t.Source()))
	}

	return sym.New(text)
}

func character(t *token.T) cell.I {
	defer badLiteral(t)

	return chr.New(t.Value()[2:])
}

func closer(opener token.Class) token.Class {
	switch opener {
	case '(':
		return ')'
	case '[':
		return ']'
	case '{':
		return '}'
	}

	panic("expected an opening delimiter token")
}

// number parses text as a number or returns nil if text does not have
// numeric syntax. Exact: integers, ratios, and radix-prefixed literals.
// Inexact: anything with a decimal point or exponent.
func number(text string) (c cell.I) {
	defer func() {
		if recover() != nil {
			c = nil
		}
	}()

	if len(text) >= 2 && text[0] == '#' {
		return num.New(text)
	}

	rest := text
	if rest[0] == '+' || rest[0] == '-' {
		rest = rest[1:]
	}

	if len(rest) == 0 {
		return nil
	}

	if rest[0] != '.' && (rest[0] < '0' || rest[0] > '9') {
		return nil
	}

	if strings.ContainsAny(rest, ".eE") {
		return flt.New(text)
	}

	return num.New(text)
}

func stringLiteral(t *token.T) cell.I {
	text := t.Value()

	s, err := adapted.ActualBytes(text[1 : len(text)-1])
	if err != nil {
		panic(fault.New(
			fault.Lex, "invalid escape in string literal",
		).At(t.Source()))
	}

	return str.New(s)
}

func badLiteral(t *token.T) {
	if recover() != nil {
		panic(fault.New(
			fault.Lex, "invalid literal '"+t.Value()+"'",
		).At(t.Source()))
	}
}

// Released under an MIT license. See LICENSE.

package lexer

import (
	"testing"

	"github.com/severen/luna/internal/common/struct/token"
)

func TestAtomsAndDelimiters(t *testing.T) {
	h := setup(t)

	h.scan("(+ 1 2)\n",
		h.class('(', "("),
		h.atom("+"),
		h.atom("1"),
		h.atom("2"),
		h.class(')', ")"),
		nil,
	)
}

func TestBrackets(t *testing.T) {
	h := setup(t)

	h.scan("[{x}]\n",
		h.class('[', "["),
		h.class('{', "{"),
		h.atom("x"),
		h.class('}', "}"),
		h.class(']', "]"),
		nil,
	)
}

func TestBooleans(t *testing.T) {
	h := setup(t)

	h.scan("#t #f #true #false #truthy\n",
		h.class(token.Boolean, "#t"),
		h.class(token.Boolean, "#f"),
		h.class(token.Boolean, "#true"),
		h.class(token.Boolean, "#false"),
		h.atom("#truthy"),
		nil,
	)
}

func TestCharacters(t *testing.T) {
	h := setup(t)

	h.scan("#\\a #\\space #\\( #\\; \n",
		h.class(token.Character, "#\\a"),
		h.class(token.Character, "#\\space"),
		h.class(token.Character, "#\\("),
		h.class(token.Character, "#\\;"),
		nil,
	)
}

func TestStrings(t *testing.T) {
	h := setup(t)

	h.scan("\"hello world\" \"with \\\" escape\"\n",
		h.class(token.String, "\"hello world\""),
		h.class(token.String, "\"with \\\" escape\""),
		nil,
	)
}

func TestQuotes(t *testing.T) {
	h := setup(t)

	h.scan("'a `b ,c ,@d\n",
		h.class(token.Quote, "'"),
		h.atom("a"),
		h.class(token.Quasiquote, "`"),
		h.atom("b"),
		h.class(token.Unquote, ","),
		h.atom("c"),
		h.class(token.UnquoteSplicing, ",@"),
		h.atom("d"),
		nil,
	)
}

func TestDotAndVector(t *testing.T) {
	h := setup(t)

	h.scan("(1 . 2) #(3)\n",
		h.class('(', "("),
		h.atom("1"),
		h.class(token.Dot, "."),
		h.atom("2"),
		h.class(')', ")"),
		h.class(token.OpenVector, "#("),
		h.atom("3"),
		h.class(')', ")"),
		nil,
	)
}

func TestLineComment(t *testing.T) {
	h := setup(t)

	h.scan("1 ; the rest is ignored (even this\n2\n",
		h.atom("1"),
		h.atom("2"),
		nil,
	)
}

func TestBlockComment(t *testing.T) {
	h := setup(t)

	h.scan("1 #| comment #| nested |# still |# 2\n",
		h.atom("1"),
		h.atom("2"),
		nil,
	)
}

func TestTokenSpansBuffers(t *testing.T) {
	h := setup(t)

	l := h.lexer

	l.Scan("(abc")

	h.expect(h.class('(', "(")())

	if tok := l.Token(); tok != nil {
		t.Fatalf("expected no token at end of buffer, got %v", tok)
	}

	l.Scan("def)\n")

	h.expect(h.atom("abcdef")())
	h.expect(h.class(')', ")")())
}

func TestPending(t *testing.T) {
	h := setup(t)

	l := h.lexer

	l.Scan("\"unterminated\n")

	if tok := l.Token(); tok != nil {
		t.Fatalf("expected no token inside string, got %v", tok)
	}

	if p := l.Pending(); p != "string literal" {
		t.Errorf("got pending %q, want %q", p, "string literal")
	}

	l.Scan("no longer\"\n")

	h.expect(h.class(token.String, "\"unterminated\nno longer\"")())

	if p := l.Pending(); p != "" {
		t.Errorf("got pending %q, want empty", p)
	}
}

type expectation struct {
	class token.Class
	value string
}

type harness struct {
	lexer *T
	t     *testing.T
}

func setup(t *testing.T) *harness {
	return &harness{lexer: New("test"), t: t}
}

func (h *harness) atom(v string) func() *expectation {
	return h.class(token.Atom, v)
}

func (h *harness) class(c token.Class, v string) func() *expectation {
	return func() *expectation {
		return &expectation{class: c, value: v}
	}
}

func (h *harness) expect(e *expectation) {
	h.t.Helper()

	tok := h.lexer.Token()
	if tok == nil {
		h.t.Fatalf("expected %q, got no token", e.value)
	}

	if tok.Class() != e.class || tok.Value() != e.value {
		got, want := tok.Class(), e.class

		h.t.Errorf("got %q (class %s), want %q (class %s)",
			tok.Value(), got.String(), e.value, want.String())
	}
}

func (h *harness) scan(text string, expected ...func() *expectation) {
	h.t.Helper()

	h.lexer.Scan(text)

	for _, f := range expected {
		if f == nil {
			if tok := h.lexer.Token(); tok != nil {
				h.t.Errorf("expected no more tokens, got %q", tok.Value())
			}

			return
		}

		h.expect(f())
	}
}

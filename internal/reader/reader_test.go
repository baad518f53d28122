// Released under an MIT license. See LICENSE.

package reader_test

import (
	"strings"
	"testing"

	"github.com/severen/luna/internal/common/interface/literal"
	"github.com/severen/luna/internal/common/struct/fault"
	"github.com/severen/luna/internal/reader"
)

func TestOneDatumPerLine(t *testing.T) {
	h := setup(t)

	h.scan("(+ 1 2)", "(+ 1 2)")
	h.scan("x", "x")
	h.scan("\"a string\"", "\"a string\"")
	h.close()
}

func TestManyDatumsPerLine(t *testing.T) {
	h := setup(t)

	h.scan("1 2 (3 4)", "1", "2", "(3 4)")
	h.close()
}

func TestIncompleteForm(t *testing.T) {
	h := setup(t)

	h.scan("(define (square x)")
	h.scan("  (* x x))", "(define (square x) (* x x))")
	h.close()
}

func TestIncompleteString(t *testing.T) {
	h := setup(t)

	h.scan("\"spans")
	h.scan("lines\"", "\"spans\\nlines\"")
	h.close()
}

func TestQuotation(t *testing.T) {
	h := setup(t)

	h.scan("'a", "(quote a)")
	h.scan("'(1 2)", "(quote (1 2))")
	h.scan("`(a ,b ,@c)",
		"(quasiquote (a (unquote b) (unquote-splicing c)))")
	h.close()
}

func TestDottedPair(t *testing.T) {
	h := setup(t)

	h.scan("(1 . 2)", "(1 . 2)")
	h.scan("(1 2 . 3)", "(1 2 . 3)")
	h.close()
}

func TestVector(t *testing.T) {
	h := setup(t)

	h.scan("#(1 2 3)", "#(1 2 3)")
	h.scan("#()", "#()")
	h.close()
}

func TestBrackets(t *testing.T) {
	h := setup(t)

	h.scan("(let ([x 1] {y 2}) x)", "(let ((x 1) (y 2)) x)")
	h.close()
}

func TestComments(t *testing.T) {
	h := setup(t)

	h.scan("1 ; ignored", "1")
	h.scan("#| also")
	h.scan("ignored |# 2", "2")
	h.close()
}

func TestMismatchedBrackets(t *testing.T) {
	h := setup(t)

	h.fail("(a]", fault.UnexpectedToken,
		"expected ')' to close preceding '(', found ']' instead")
}

func TestUnexpectedCloser(t *testing.T) {
	h := setup(t)

	h.fail(")", fault.UnexpectedToken, "unexpected ')'")
}

func TestMisplacedDot(t *testing.T) {
	h := setup(t)

	h.fail("(1 . 2 3)", fault.UnexpectedToken,
		"exactly one datum must follow '.'")
}

func TestCloseMidForm(t *testing.T) {
	h := setup(t)

	h.scan("(a b")
	h.closeExpecting(fault.UnexpectedEOF, "unexpected end of input")
}

func TestCloseMidString(t *testing.T) {
	h := setup(t)

	h.scan("\"never finished")
	h.closeExpecting(fault.UnexpectedEOF, "unterminated string literal")
}

func TestCloseMidBlockComment(t *testing.T) {
	h := setup(t)

	h.scan("#| never finished")
	h.closeExpecting(fault.UnexpectedEOF, "unterminated block comment")
}

type harness struct {
	r *reader.T
	t *testing.T
}

func setup(t *testing.T) *harness {
	return &harness{r: reader.New("test"), t: t}
}

func (h *harness) close() {
	h.t.Helper()

	if err := h.r.Close(); err != nil {
		h.t.Errorf("unexpected error on close: %v", err)
	}
}

func (h *harness) closeExpecting(k fault.Kind, msg string) {
	h.t.Helper()

	err := h.r.Close()
	if err == nil {
		h.t.Fatalf("expected error on close, got none")
	}

	h.check(err, k, msg)
}

func (h *harness) fail(line string, k fault.Kind, msg string) {
	h.t.Helper()

	_, err := h.r.Scan(line)
	if err == nil {
		h.t.Fatalf("expected %q to fail, but it did not", line)
	}

	h.check(err, k, msg)
}

func (h *harness) scan(line string, expected ...string) {
	h.t.Helper()

	forms, err := h.r.Scan(line)
	if err != nil {
		h.t.Fatalf("unexpected error scanning %q: %v", line, err)
	}

	if len(forms) != len(expected) {
		h.t.Fatalf("scanning %q produced %d datums, want %d",
			line, len(forms), len(expected))
	}

	for i, c := range forms {
		if s := literal.String(c); s != expected[i] {
			h.t.Errorf("datum %d is %s, want %s", i, s, expected[i])
		}
	}
}

func (h *harness) check(err error, k fault.Kind, msg string) {
	h.t.Helper()

	f, ok := err.(*fault.T)
	if !ok {
		h.t.Fatalf("expected a fault, got %T: %v", err, err)
	}

	if f.Kind != k {
		h.t.Errorf("got fault kind %d, want %d", f.Kind, k)
	}

	if !strings.Contains(f.Msg, msg) {
		h.t.Errorf("got %q, want it to mention %q", f.Msg, msg)
	}
}

// Released under an MIT license. See LICENSE.

package engine_test

import (
	"strings"
	"testing"

	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/interface/literal"
	"github.com/severen/luna/internal/common/struct/fault"
	"github.com/severen/luna/internal/engine"
	"github.com/severen/luna/internal/reader"
)

type harness struct {
	e *engine.T
	t *testing.T
}

func setup(t *testing.T) *harness {
	return &harness{e: engine.New(), t: t}
}

// eval reads and evaluates every form in src and returns the value of
// the last one.
func (h *harness) eval(src string) (cell.I, error) {
	h.t.Helper()

	r := reader.New("test")

	var v cell.I

	for _, line := range strings.Split(src, "\n") {
		forms, err := r.Scan(line)
		if err != nil {
			return nil, err
		}

		for _, c := range forms {
			var eerr error

			v, eerr = h.e.Evaluate(c)
			if eerr != nil {
				go func() { _ = r.Close() }()

				return nil, eerr
			}
		}
	}

	if err := r.Close(); err != nil {
		return nil, err
	}

	return v, nil
}

// want checks that src evaluates to a value written as expected.
func (h *harness) want(src, expected string) {
	h.t.Helper()

	v, err := h.eval(src)
	if err != nil {
		h.t.Fatalf("%q: unexpected error: %v", src, err)
	}

	if actual := literal.String(v); actual != expected {
		h.t.Errorf("%q: got %s, want %s", src, actual, expected)
	}
}

// wantKind checks that evaluating src fails with a fault of kind k.
func (h *harness) wantKind(src string, k fault.Kind) {
	h.t.Helper()

	v, err := h.eval(src)
	if err == nil {
		h.t.Fatalf("%q: expected error, got %s", src, literal.String(v))
	}

	f, ok := err.(*fault.T)
	if !ok {
		h.t.Fatalf("%q: expected fault, got %T: %v", src, err, err)
	}

	if f.Kind != k {
		h.t.Errorf("%q: got fault kind %d (%v), want %d", src, f.Kind, f, k)
	}
}

func TestSelfEvaluating(t *testing.T) {
	h := setup(t)

	h.want("42", "42")
	h.want("-17", "-17")
	h.want("1/3", "1/3")
	h.want("2.5", "2.5")
	h.want("1e3", "1000.")
	h.want("#t", "#t")
	h.want("#false", "#f")
	h.want(`"hello"`, `"hello"`)
	h.want(`#\a`, `#\a`)
	h.want(`#\newline`, `#\newline`)
	h.want("#x1f", "31")
	h.want("#b101", "5")
}

func TestQuote(t *testing.T) {
	h := setup(t)

	h.want("'foo", "foo")
	h.want("'(1 2 3)", "(1 2 3)")
	h.want("''a", "(quote a)")
	h.want("'()", "()")
	h.want("(quote (a . b))", "(a . b)")
}

func TestPairPrinting(t *testing.T) {
	h := setup(t)

	h.want("(cons 1 2)", "(1 . 2)")
	h.want("(cons 1 (cons 2 '()))", "(1 2)")
	h.want("(list 1 2 3)", "(1 2 3)")
	h.want("(cons 1 (cons 2 3))", "(1 2 . 3)")
	h.want("#(1 2 3)", "#(1 2 3)")
}

func TestDefineAndLookup(t *testing.T) {
	h := setup(t)

	h.want("(define x 7) x", "7")
	h.want("(define y (+ 1 2)) (+ y y)", "6")
	h.wantKind("unbound-name", fault.UnboundVariable)
	h.wantKind("(set! zzz 1)", fault.UnboundVariable)
}

func TestSet(t *testing.T) {
	h := setup(t)

	h.want("(define x 1) (set! x 99) x", "99")
	h.want(`
(define x 1)
(define (bump!) (set! x (+ x 1)))
(bump!)
(bump!)
x`, "3")
}

func TestLexicalScoping(t *testing.T) {
	h := setup(t)

	h.want(`
(define (make-adder n)
  (lambda (x) (+ x n)))
(define add3 (make-adder 3))
(define add7 (make-adder 7))
(list (add3 10) (add7 10))`, "(13 17)")
}

func TestSharedEnvironmentMutation(t *testing.T) {
	h := setup(t)

	h.want(`
(define (make-counter)
  (define n 0)
  (lambda ()
    (set! n (+ n 1))
    n))
(define c (make-counter))
(c)
(c)
(c)`, "3")
}

func TestTailCallsAreBounded(t *testing.T) {
	h := setup(t)

	h.want(`
(define (count n)
  (if (= n 0)
      0
      (count (- n 1))))
(count 1000000)`, "0")
}

func TestNamedLetTailCalls(t *testing.T) {
	h := setup(t)

	h.want(`
(let loop ((n 100000) (acc 0))
  (if (= n 0)
      acc
      (loop (- n 1) (+ acc 1))))`, "100000")
}

func TestDeepNonTailRecursionFaults(t *testing.T) {
	h := setup(t)

	h.wantKind(`
(define (sum n)
  (if (= n 0)
      0
      (+ n (sum (- n 1)))))
(sum 100000)`, fault.RecursionDepth)
}

func TestArity(t *testing.T) {
	h := setup(t)

	h.wantKind("((lambda (a b) a) 1)", fault.Arity)
	h.wantKind("((lambda (a b) a) 1 2 3)", fault.Arity)
	h.want("((lambda (a . rest) rest) 1 2 3)", "(2 3)")
	h.want("((lambda args args) 1 2)", "(1 2)")
	h.wantKind("(cons 1)", fault.Arity)
}

func TestApplyNonProcedure(t *testing.T) {
	h := setup(t)

	h.wantKind("(1 2 3)", fault.ApplyNonProcedure)
	h.wantKind(`("not a procedure")`, fault.ApplyNonProcedure)
}

func TestCarCdrOfEmptyList(t *testing.T) {
	h := setup(t)

	h.wantKind("(car '())", fault.Type)
	h.wantKind("(cdr '())", fault.Type)
	h.want("(car '(1 2))", "1")
	h.want("(cdr '(1 2))", "(2)")
}

func TestListPredicates(t *testing.T) {
	h := setup(t)

	h.want("(list? '(1 2 3))", "#t")
	h.want("(list? '())", "#t")
	h.want("(list? (cons 1 2))", "#f")
	h.want("(null? '())", "#t")
	h.want("(null? '(1))", "#f")
	h.want("(pair? '(1))", "#t")
	h.want("(pair? '())", "#f")
	h.want("(pair? 1)", "#f")
}

func TestArithmetic(t *testing.T) {
	h := setup(t)

	h.want("(+ 1 2 3)", "6")
	h.want("(+)", "0")
	h.want("(*)", "1")
	h.want("(- 5)", "-5")
	h.want("(/ 1 3)", "1/3")
	h.want("(+ 1/3 1/6)", "1/2")
	h.want("(/ 6 3)", "2")
	h.want("(* 2 3.0)", "6.")
	h.want("(+ 1 2.0)", "3.")
	h.want("(exact? (+ 1 2))", "#t")
	h.want("(inexact? (+ 1 2.0))", "#t")
	h.wantKind("(/ 1 0)", fault.DivisionByZero)
	h.want("(/ 1.0 0.0)", "+inf.0")
	h.want("(/ -1.0 0.0)", "-inf.0")
	h.wantKind("(+ 1 'a)", fault.Type)
}

func TestExtrema(t *testing.T) {
	h := setup(t)

	h.want("(max 1 2 3)", "3")
	h.want("(min 3 1 2)", "1")
	h.want("(max 1/2 1/3)", "1/2")
	h.want("(max 1 2.5)", "2.5")
	h.want("(min 1 2.5)", "1.")
	h.want("(max 1.0 (/ 1.0 0.0))", "+inf.0")
	h.want("(min 1.0 (/ -1.0 0.0))", "-inf.0")
}

func TestIntegerDivision(t *testing.T) {
	h := setup(t)

	h.want("(quotient 7 2)", "3")
	h.want("(quotient -7 2)", "-3")
	h.want("(remainder 7 2)", "1")
	h.want("(remainder -7 2)", "-1")
	h.want("(modulo 7 2)", "1")
	h.want("(modulo -7 2)", "1")
	h.want("(modulo 7 -2)", "-1")
	h.wantKind("(quotient 1 0)", fault.DivisionByZero)
}

func TestComparison(t *testing.T) {
	h := setup(t)

	h.want("(< 1 2 3)", "#t")
	h.want("(< 1 3 2)", "#f")
	h.want("(<= 1 1 2)", "#t")
	h.want("(= 1 1 1)", "#t")
	h.want("(= 1 1.0)", "#t")
	h.want("(> 3 2 1)", "#t")
	h.want("(>= 3 3 1)", "#t")
}

func TestIf(t *testing.T) {
	h := setup(t)

	h.want("(if #t 1 2)", "1")
	h.want("(if #f 1 2)", "2")
	h.want("(if 0 'yes 'no)", "yes")
	h.want("(if '() 'yes 'no)", "yes")
	h.want(`(if "" 'yes 'no)`, "yes")
	h.want("(if #f 1)", "#<unspecified>")
}

func TestAndOr(t *testing.T) {
	h := setup(t)

	h.want("(and)", "#t")
	h.want("(or)", "#f")
	h.want("(and 1 2 3)", "3")
	h.want("(and 1 #f 3)", "#f")
	h.want("(or #f #f 2)", "2")
	h.want("(or 1 2)", "1")
	h.want("(define x 0) (and #f (set! x 1)) x", "0")
	h.want("(define y 0) (or 1 (set! y 1)) y", "0")
}

func TestCond(t *testing.T) {
	h := setup(t)

	h.want(`
(cond ((= 1 2) 'a)
      ((= 1 1) 'b)
      (else 'c))`, "b")
	h.want("(cond (#f 'a) (else 'b))", "b")
	h.want("(cond (42))", "42")
	h.want("(cond ((assv 2 '((1 . a) (2 . b))) => cdr) (else 'none))", "b")
	h.want("(cond (#f 'a))", "#<unspecified>")
}

func TestCase(t *testing.T) {
	h := setup(t)

	h.want(`
(case (* 2 3)
  ((2 3 5 7) 'prime)
  ((1 4 6 8 9) 'composite)
  (else 'unknown))`, "composite")
	h.want("(case 'z ((a b) 1) (else 2))", "2")
	h.want("(case 10 ((1 2) 'small))", "#<unspecified>")
}

func TestWhenUnless(t *testing.T) {
	h := setup(t)

	h.want("(when #t 1 2 3)", "3")
	h.want("(when #f 1)", "#<unspecified>")
	h.want("(unless #f 'ran)", "ran")
	h.want("(unless #t 'ran)", "#<unspecified>")
}

func TestLet(t *testing.T) {
	h := setup(t)

	h.want("(let ((x 1) (y 2)) (+ x y))", "3")
	h.want("(define x 10) (let ((x 1) (y x)) y)", "10")
	h.want("(let* ((x 1) (y x)) y)", "1")
	h.want(`
(letrec ((even? (lambda (n) (if (= n 0) #t (odd? (- n 1)))))
         (odd?  (lambda (n) (if (= n 0) #f (even? (- n 1))))))
  (even? 88))`, "#t")
	h.want("(letrec* ((a 1) (b (+ a 1))) b)", "2")
}

func TestDo(t *testing.T) {
	h := setup(t)

	h.want(`
(do ((i 0 (+ i 1))
     (acc '() (cons i acc)))
    ((= i 5) acc))`, "(4 3 2 1 0)")
	h.want(`
(define v (make-vector 5 0))
(do ((i 0 (+ i 1)))
    ((= i 5) v)
  (vector-set! v i i))`, "#(0 1 2 3 4)")
}

func TestBegin(t *testing.T) {
	h := setup(t)

	h.want("(begin 1 2 3)", "3")
	h.want("(define x 0) (begin (set! x 1) (set! x (+ x 1)) x)", "2")
}

func TestQuasiquote(t *testing.T) {
	h := setup(t)

	h.want("`(1 2 3)", "(1 2 3)")
	h.want("(define x 5) `(a ,x)", "(a 5)")
	h.want("`(1 ,(+ 1 1) 3)", "(1 2 3)")
	h.want("`(1 ,@(list 2 3) 4)", "(1 2 3 4)")
	h.want("`(a `(b ,(c ,(+ 1 2))))", "(a (quasiquote (b (unquote (c 3)))))")
}

func TestEquivalence(t *testing.T) {
	h := setup(t)

	h.want("(eq? 'a 'a)", "#t")
	h.want("(eq? '() '())", "#t")
	h.want("(eqv? 1 1)", "#t")
	h.want("(eqv? 1 1.0)", "#f")
	h.want("(eqv? 1.5 1.5)", "#t")
	h.want(`(eqv? #\a #\a)`, "#t")
	h.want(`(equal? "abc" "abc")`, "#t")
	h.want(`(eqv? "abc" "abc")`, "#f")
	h.want("(equal? '(1 (2 3)) '(1 (2 3)))", "#t")
	h.want("(equal? #(1 2) #(1 2))", "#t")
	h.want("(eqv? (list 1) (list 1))", "#f")
}

func TestStrings(t *testing.T) {
	h := setup(t)

	h.want(`(string-length "hello")`, "5")
	h.want(`(string-ref "hello" 1)`, `#\e`)
	h.want(`(string-append "foo" "bar")`, `"foobar"`)
	h.want(`(substring "hello" 1 3)`, `"el"`)
	h.want(`(define s (make-string 3 #\x)) (string-set! s 1 #\y) s`, `"xyx"`)
	h.want(`(string->symbol "foo")`, "foo")
	h.want("(symbol->string 'foo)", `"foo"`)
	h.want(`(string->number "1/2")`, "1/2")
	h.want(`(string->number "nope")`, "#f")
	h.want("(number->string 255 16)", `"ff"`)
	h.want(`(string=? "a" "a")`, "#t")
	h.want(`(string<? "a" "b" "c")`, "#t")
	h.want(`(string #\a #\b)`, `"ab"`)
	h.want(`(list->string (list #\h #\i))`, `"hi"`)
	h.want(`(string->list "hi")`, `(#\h #\i)`)
}

func TestStringMutationIsShared(t *testing.T) {
	h := setup(t)

	h.want(`
(define s "aaa")
(define alias s)
(string-set! s 0 #\z)
alias`, `"zaa"`)
}

func TestVectors(t *testing.T) {
	h := setup(t)

	h.want("(vector-length (make-vector 3 0))", "3")
	h.want("(vector-ref (vector 'a 'b 'c) 1)", "b")
	h.want("(define v (vector 1 2)) (vector-set! v 0 'x) v", "#(x 2)")
	h.want("(vector->list #(1 2 3))", "(1 2 3)")
	h.want("(list->vector '(1 2))", "#(1 2)")
	h.want("(define v (make-vector 2 0)) (vector-fill! v 9) v", "#(9 9)")
}

func TestCharacters(t *testing.T) {
	h := setup(t)

	h.want(`(char->integer #\a)`, "97")
	h.want("(integer->char 97)", `#\a`)
	h.want(`(char=? #\a #\a)`, "#t")
	h.want(`(char<? #\a #\b)`, "#t")
	h.want(`(char-upcase #\a)`, `#\A`)
	h.want(`(char-alphabetic? #\a)`, "#t")
	h.want(`(char-numeric? #\7)`, "#t")
	h.want(`(char-whitespace? #\space)`, "#t")
}

func TestListOperations(t *testing.T) {
	h := setup(t)

	h.want("(length '(1 2 3))", "3")
	h.want("(length '())", "0")
	h.want("(append '(1 2) '(3) '())", "(1 2 3)")
	h.want("(append)", "()")
	h.want("(reverse '(1 2 3))", "(3 2 1)")
	h.want("(list-tail '(1 2 3 4) 2)", "(3 4)")
	h.want("(list-ref '(1 2 3) 1)", "2")
	h.want("(memq 'c '(a b c d))", "(c d)")
	h.want("(memq 'z '(a b c))", "#f")
	h.want("(member '(1) '((1) (2)))", "((1) (2))")
	h.want("(assq 'b '((a 1) (b 2)))", "(b 2)")
	h.want("(assv 2 '((1 one) (2 two)))", "(2 two)")
	h.want(`(assoc "b" '(("a" 1) ("b" 2)))`, `("b" 2)`)
}

func TestAppendSharesFinalList(t *testing.T) {
	h := setup(t)

	h.want(`
(define tail '(3 4))
(define joined (append '(1 2) tail))
(set-car! tail 'changed)
joined`, "(1 2 changed 4)")
}

func TestApply(t *testing.T) {
	h := setup(t)

	h.want("(apply + '(1 2 3))", "6")
	h.want("(apply + 1 2 '(3 4))", "10")
	h.want("(apply (lambda (a b) (list b a)) '(1 2))", "(2 1)")
	h.wantKind("(apply + 1)", fault.Type)
}

func TestNumericPredicates(t *testing.T) {
	h := setup(t)

	h.want("(zero? 0)", "#t")
	h.want("(positive? 3)", "#t")
	h.want("(negative? -3)", "#t")
	h.want("(even? 4)", "#t")
	h.want("(odd? 3)", "#t")
	h.want("(integer? 4)", "#t")
	h.want("(integer? 1/2)", "#f")
	h.want("(integer? 2.0)", "#t")
	h.want("(number? 'a)", "#f")
}

func TestNumericFunctions(t *testing.T) {
	h := setup(t)

	h.want("(abs -3)", "3")
	h.want("(abs -3.5)", "3.5")
	h.want("(min 3 1 2)", "1")
	h.want("(max 3 1 2)", "3")
	h.want("(floor 7/2)", "3")
	h.want("(floor -7/2)", "-4")
	h.want("(ceiling 7/2)", "4")
	h.want("(truncate -7/2)", "-3")
	h.want("(round 7/2)", "4")
	h.want("(round 5/2)", "2")
	h.want("(gcd 12 18)", "6")
	h.want("(lcm 4 6)", "12")
	h.want("(expt 2 10)", "1024")
	h.want("(expt 2 -2)", "1/4")
	h.want("(exact->inexact 1/2)", "0.5")
	h.want("(inexact->exact 0.5)", "1/2")
}

func TestErrorCommand(t *testing.T) {
	h := setup(t)

	h.wantKind(`(error "boom")`, fault.User)
	h.wantKind(`(error "bad value:" 42)`, fault.User)
}

func TestMalformedSpecialForms(t *testing.T) {
	h := setup(t)

	h.wantKind("(lambda)", fault.MalformedSpecialForm)
	h.wantKind("(lambda (x))", fault.MalformedSpecialForm)
	h.wantKind("(let ((x)) x)", fault.MalformedSpecialForm)
	h.wantKind("(define)", fault.MalformedSpecialForm)
	h.wantKind("(if)", fault.MalformedSpecialForm)
	h.wantKind("(if 1 2 3 4)", fault.MalformedSpecialForm)
	h.wantKind("(set! x)", fault.MalformedSpecialForm)
}

func TestEmptyCombination(t *testing.T) {
	h := setup(t)

	h.wantKind("()", fault.ApplyNil)
}

func TestPrelude(t *testing.T) {
	h := setup(t)

	h.want("(map (lambda (x) (* x x)) '(1 2 3))", "(1 4 9)")
	h.want("(filter odd? '(1 2 3 4 5))", "(1 3 5)")
	h.want("(fold-left + 0 '(1 2 3 4))", "10")
	h.want("(fold-right cons '() '(1 2 3))", "(1 2 3)")
	h.want("(list-copy '(1 2 3))", "(1 2 3)")
	h.want("(last-pair '(1 2 3))", "(3)")
	h.want("(boolean=? #t #t)", "#t")
	h.want("(symbol=? 'a 'a)", "#t")
	h.want(`(char-ci=? #\A #\a)`, "#t")
	h.want("(for-each (lambda (x) x) '(1 2)) 'ok", "ok")
}

func TestShadowingSpecialFormNames(t *testing.T) {
	h := setup(t)

	h.want("(define lst (list 'a 'b)) (length lst)", "2")
}

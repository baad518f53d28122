// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/severen/luna/internal/common/interface/cell"
	"github.com/severen/luna/internal/common/interface/scope"
	"github.com/severen/luna/internal/common/interface/truth"
	"github.com/severen/luna/internal/common/struct/fault"
	"github.com/severen/luna/internal/common/type/boolean"
	"github.com/severen/luna/internal/common/type/builtin"
	"github.com/severen/luna/internal/common/type/closure"
	"github.com/severen/luna/internal/common/type/env"
	"github.com/severen/luna/internal/common/type/list"
	"github.com/severen/luna/internal/common/type/pair"
	"github.com/severen/luna/internal/common/type/sym"
	"github.com/severen/luna/internal/common/type/void"
	"github.com/severen/luna/internal/common/validate"
	"github.com/severen/luna/internal/engine/commands"
)

// maxDepth bounds non-tail recursion. Tail calls do not consume depth;
// they loop in place, so iteration written as tail recursion is never
// limited by this.
const maxDepth = 10000

//nolint:gochecknoglobals
var (
	symAnd       = sym.New("and")
	symArrow     = sym.New("=>")
	symBegin     = sym.New("begin")
	symCase      = sym.New("case")
	symCond      = sym.New("cond")
	symDefine    = sym.New("define")
	symDo        = sym.New("do")
	symElse      = sym.New("else")
	symIf        = sym.New("if")
	symLambda    = sym.New("lambda")
	symLet       = sym.New("let")
	symLetrec    = sym.New("letrec")
	symLetrecS   = sym.New("letrec*")
	symLetS      = sym.New("let*")
	symOr        = sym.New("or")
	symQuasi     = sym.New("quasiquote")
	symQuote     = sym.New("quote")
	symSet       = sym.New("set!")
	symUnless    = sym.New("unless")
	symUnquote   = sym.New("unquote")
	symUnquoteS  = sym.New("unquote-splicing")
	symWhen      = sym.New("when")
)

// eval evaluates the expression c in the scope s. Tail positions are
// evaluated by updating c and s and continuing the loop, so iteration
// expressed as tail recursion runs in constant Go stack space. Every
// non-tail subexpression recurses with depth incremented.
//
//nolint:gocyclo
func eval(c cell.I, s scope.I, depth int) cell.I {
	depth++
	if depth > maxDepth {
		panic(fault.New(fault.RecursionDepth, "recursion depth limit exceeded"))
	}

tail:
	for {
		if sym.Is(c) {
			k := sym.To(c).String()

			r := s.Lookup(k)
			if r == nil {
				panic(fault.Unbound(k))
			}

			return r.Get()
		}

		if c == pair.Null {
			panic(fault.New(fault.ApplyNil, "the empty list cannot be evaluated"))
		}

		if !pair.Is(c) {
			// Everything else evaluates to itself.
			return c
		}

		head := pair.Car(c)
		rest := pair.Cdr(c)

		if sym.Is(head) {
			switch head {
			case symQuote:
				return validate.Fixed("quote", rest, 1, 1)[0]

			case symQuasi:
				args := validate.Fixed("quasiquote", rest, 1, 1)

				return quasiquote(args[0], 1, s, depth)

			case symIf:
				args := validate.Fixed("if", rest, 2, 3)

				if truth.Value(eval(args[0], s, depth)) {
					c = args[1]

					continue
				}

				if len(args) == 3 {
					c = args[2]

					continue
				}

				return void.Unspecified

			case symDefine:
				return define(rest, s, depth)

			case symSet:
				args := validate.Fixed("set!", rest, 2, 2)

				k := sym.To(args[0]).String()

				r := s.Lookup(k)
				if r == nil {
					panic(fault.Unbound(k))
				}

				r.Set(eval(args[1], s, depth))

				return void.Unspecified

			case symLambda:
				if !pair.Is(rest) || rest == pair.Null {
					panic(fault.Malformed("lambda", "missing parameter list"))
				}

				body := pair.Cdr(rest)
				if body == pair.Null {
					panic(fault.Malformed("lambda", "missing body"))
				}

				return closure.New(pair.Car(rest), body, s)

			case symBegin:
				if rest == pair.Null {
					return void.Unspecified
				}

				c = last(rest, s, depth)

				continue

			case symLet:
				c, s = let(rest, s, depth)

				continue

			case symLetS:
				c, s = letStar(rest, s, depth)

				continue

			case symLetrec, symLetrecS:
				c, s = letrec(rest, s, depth)

				continue

			case symAnd:
				if rest == pair.Null {
					return boolean.True
				}

				for pair.Cdr(rest) != pair.Null {
					v := eval(pair.Car(rest), s, depth)
					if !truth.Value(v) {
						return v
					}

					rest = pair.Cdr(rest)
				}

				c = pair.Car(rest)

				continue

			case symOr:
				if rest == pair.Null {
					return boolean.False
				}

				for pair.Cdr(rest) != pair.Null {
					v := eval(pair.Car(rest), s, depth)
					if truth.Value(v) {
						return v
					}

					rest = pair.Cdr(rest)
				}

				c = pair.Car(rest)

				continue

			case symWhen, symUnless:
				name := sym.To(head).String()

				if !pair.Is(rest) || rest == pair.Null {
					panic(fault.Malformed(name, "missing test"))
				}

				v := truth.Value(eval(pair.Car(rest), s, depth))
				if head == symUnless {
					v = !v
				}

				body := pair.Cdr(rest)
				if !v || body == pair.Null {
					return void.Unspecified
				}

				c = last(body, s, depth)

				continue

			case symCond:
				for clauses := rest; clauses != pair.Null; clauses = pair.Cdr(clauses) {
					clause := pair.Car(clauses)
					if !pair.Is(clause) || clause == pair.Null {
						panic(fault.Malformed("cond", "clause is not a list"))
					}

					test := pair.Car(clause)
					body := pair.Cdr(clause)

					if test == symElse {
						if body == pair.Null {
							panic(fault.Malformed("cond", "empty else clause"))
						}

						c = last(body, s, depth)

						continue tail
					}

					v := eval(test, s, depth)
					if !truth.Value(v) {
						continue
					}

					if body == pair.Null {
						return v
					}

					if pair.Car(body) == symArrow {
						args := validate.Fixed("cond", body, 2, 2)

						return apply(eval(args[1], s, depth), []cell.I{v}, depth)
					}

					c = last(body, s, depth)

					continue tail
				}

				return void.Unspecified

			case symCase:
				if !pair.Is(rest) || rest == pair.Null {
					panic(fault.Malformed("case", "missing key"))
				}

				key := eval(pair.Car(rest), s, depth)

				for clauses := pair.Cdr(rest); clauses != pair.Null; clauses = pair.Cdr(clauses) {
					clause := pair.Car(clauses)
					if !pair.Is(clause) || clause == pair.Null {
						panic(fault.Malformed("case", "clause is not a list"))
					}

					data := pair.Car(clause)
					body := pair.Cdr(clause)

					if body == pair.Null {
						panic(fault.Malformed("case", "empty clause"))
					}

					if data == symElse {
						c = last(body, s, depth)

						continue tail
					}

					for d := data; d != pair.Null; d = pair.Cdr(d) {
						if commands.Eqv(key, pair.Car(d)) {
							c = last(body, s, depth)

							continue tail
						}
					}
				}

				return void.Unspecified

			case symDo:
				return loop(rest, s, depth)
			}
		}

		// Procedure application.
		f := eval(head, s, depth)

		args := []cell.I{}
		for a := rest; a != pair.Null; a = pair.Cdr(a) {
			args = append(args, eval(pair.Car(a), s, depth))
		}

		if builtin.Is(f) {
			return builtin.To(f).Apply(args)
		}

		if !closure.Is(f) {
			panic(fault.New(
				fault.ApplyNonProcedure, f.Name()+" is not a procedure",
			))
		}

		cl := closure.To(f)

		s = bind(cl, args)
		c = last(cl.Body, s, depth)
	}
}

// apply invokes f with args in a non-tail position.
func apply(f cell.I, args []cell.I, depth int) cell.I {
	if builtin.Is(f) {
		return builtin.To(f).Apply(args)
	}

	if !closure.Is(f) {
		panic(fault.New(
			fault.ApplyNonProcedure, f.Name()+" is not a procedure",
		))
	}

	cl := closure.To(f)

	s := bind(cl, args)

	var v cell.I = void.Unspecified
	for body := cl.Body; body != pair.Null; body = pair.Cdr(body) {
		v = eval(pair.Car(body), s, depth)
	}

	return v
}

// bind creates the scope for a call to cl with args: a fresh frame
// enclosed by the closure's captured scope with every formal bound.
func bind(cl *closure.T, args []cell.I) scope.I {
	label := cl.Label
	if label == "" {
		label = "procedure"
	}

	fixed, rest := formals(label, cl.Params)

	if len(args) < len(fixed) || (rest == "" && len(args) > len(fixed)) {
		panic(fault.Arityf(label, len(fixed), len(args), rest != ""))
	}

	s := env.New(cl.Scope)

	for i, k := range fixed {
		s.Define(k, args[i])
	}

	if rest != "" {
		s.Define(rest, list.New(args[len(fixed):]...))
	}

	return s
}

// define handles both (define name value) and the procedure shorthand
// (define (name formals...) body...).
func define(rest cell.I, s scope.I, depth int) cell.I {
	if !pair.Is(rest) || rest == pair.Null {
		panic(fault.Malformed("define", "missing name"))
	}

	target := pair.Car(rest)

	if sym.Is(target) {
		args := validate.Fixed("define", rest, 1, 2)

		k := sym.To(target).String()

		var v cell.I = void.Unspecified
		if len(args) == 2 {
			v = eval(args[1], s, depth)
		}

		if closure.Is(v) {
			cl := closure.To(v)
			if cl.Label == "" {
				cl.Label = k
			}
		}

		s.Define(k, v)

		return void.Unspecified
	}

	if !pair.Is(target) || target == pair.Null {
		panic(fault.Malformed("define", "name is not a symbol"))
	}

	k := sym.To(pair.Car(target)).String()

	body := pair.Cdr(rest)
	if body == pair.Null {
		panic(fault.Malformed("define", "missing body"))
	}

	cl := closure.New(pair.Cdr(target), body, s)
	cl.Label = k

	s.Define(k, cl)

	return void.Unspecified
}

// formals splits a parameter specification into its fixed names and
// the name of its rest parameter, if any.
func formals(label string, params cell.I) (fixed []string, rest string) {
	if sym.Is(params) {
		return nil, sym.To(params).String()
	}

	for pair.Is(params) && params != pair.Null {
		p := pair.Car(params)
		if !sym.Is(p) {
			panic(fault.Malformed(label, "parameter is not a symbol"))
		}

		fixed = append(fixed, sym.To(p).String())

		params = pair.Cdr(params)
	}

	if params == pair.Null {
		return fixed, ""
	}

	if !sym.Is(params) {
		panic(fault.Malformed(label, "parameter is not a symbol"))
	}

	return fixed, sym.To(params).String()
}

// last evaluates every expression in body but the final one and
// returns the final expression so the caller can treat it as a tail.
func last(body cell.I, s scope.I, depth int) cell.I {
	if !pair.Is(body) || body == pair.Null {
		panic(fault.Malformed("begin", "body is not a list"))
	}

	for pair.Cdr(body) != pair.Null {
		eval(pair.Car(body), s, depth)

		body = pair.Cdr(body)
	}

	return pair.Car(body)
}

// let handles (let ((name init)...) body...) and the named variant
// (let loop ((name init)...) body...). It returns the tail expression
// and the scope to evaluate it in.
func let(rest cell.I, s scope.I, depth int) (cell.I, scope.I) {
	if !pair.Is(rest) || rest == pair.Null {
		panic(fault.Malformed("let", "missing bindings"))
	}

	target := pair.Car(rest)

	if sym.Is(target) {
		return namedLet(sym.To(target).String(), pair.Cdr(rest), s, depth)
	}

	body := pair.Cdr(rest)
	if body == pair.Null {
		panic(fault.Malformed("let", "missing body"))
	}

	inner := env.New(s)

	for b := target; b != pair.Null; b = pair.Cdr(b) {
		k, init := binding("let", pair.Car(b))

		inner.Define(k, eval(init, s, depth))
	}

	return last(body, inner, depth), inner
}

// letStar is let with each init evaluated in the scope of the
// bindings before it.
func letStar(rest cell.I, s scope.I, depth int) (cell.I, scope.I) {
	if !pair.Is(rest) || rest == pair.Null {
		panic(fault.Malformed("let*", "missing bindings"))
	}

	body := pair.Cdr(rest)
	if body == pair.Null {
		panic(fault.Malformed("let*", "missing body"))
	}

	inner := s

	for b := pair.Car(rest); b != pair.Null; b = pair.Cdr(b) {
		k, init := binding("let*", pair.Car(b))

		next := env.New(inner)
		next.Define(k, eval(init, inner, depth))

		inner = next
	}

	if inner == s {
		inner = env.New(s)
	}

	return last(body, inner, depth), inner
}

// letrec creates every binding before evaluating any init, so inits
// can refer to any of the names. Inits are evaluated left to right,
// which also satisfies letrec*.
func letrec(rest cell.I, s scope.I, depth int) (cell.I, scope.I) {
	if !pair.Is(rest) || rest == pair.Null {
		panic(fault.Malformed("letrec", "missing bindings"))
	}

	body := pair.Cdr(rest)
	if body == pair.Null {
		panic(fault.Malformed("letrec", "missing body"))
	}

	inner := env.New(s)

	for b := pair.Car(rest); b != pair.Null; b = pair.Cdr(b) {
		k, _ := binding("letrec", pair.Car(b))

		inner.Define(k, void.Unspecified)
	}

	for b := pair.Car(rest); b != pair.Null; b = pair.Cdr(b) {
		k, init := binding("letrec", pair.Car(b))

		inner.Define(k, eval(init, inner, depth))
	}

	return last(body, inner, depth), inner
}

// loop handles (do ((name init step)...) (test result...) command...).
// Each iteration gets fresh bindings.
func loop(rest cell.I, s scope.I, depth int) cell.I {
	args, commandsBody := validate.Variadic("do", rest, 2, 2)

	type variable struct {
		name string
		step cell.I
	}

	specs := []variable{}

	inner := env.New(s)

	for b := args[0]; b != pair.Null; b = pair.Cdr(b) {
		spec := pair.Car(b)
		if !pair.Is(spec) || spec == pair.Null {
			panic(fault.Malformed("do", "binding is not a list"))
		}

		parts := validate.Fixed("do", spec, 2, 3)

		k := sym.To(parts[0]).String()

		var step cell.I
		if len(parts) == 3 {
			step = parts[2]
		}

		specs = append(specs, variable{name: k, step: step})

		inner.Define(k, eval(parts[1], s, depth))
	}

	test := args[1]
	if !pair.Is(test) || test == pair.Null {
		panic(fault.Malformed("do", "test is not a list"))
	}

	for {
		if truth.Value(eval(pair.Car(test), inner, depth)) {
			var v cell.I = void.Unspecified
			for r := pair.Cdr(test); r != pair.Null; r = pair.Cdr(r) {
				v = eval(pair.Car(r), inner, depth)
			}

			return v
		}

		for cmd := commandsBody; cmd != pair.Null; cmd = pair.Cdr(cmd) {
			eval(pair.Car(cmd), inner, depth)
		}

		next := env.New(s)

		for _, spec := range specs {
			if spec.step == nil {
				next.Define(spec.name, inner.Lookup(spec.name).Get())
			} else {
				next.Define(spec.name, eval(spec.step, inner, depth))
			}
		}

		inner = next
	}
}

// namedLet binds name to a closure over the bindings' names and then
// calls it with the evaluated inits, giving a loop that can restart
// itself by calling name in tail position.
func namedLet(name string, rest cell.I, s scope.I, depth int) (cell.I, scope.I) {
	if !pair.Is(rest) || rest == pair.Null {
		panic(fault.Malformed("let", "missing bindings"))
	}

	body := pair.Cdr(rest)
	if body == pair.Null {
		panic(fault.Malformed("let", "missing body"))
	}

	names := []cell.I{}
	args := []cell.I{}

	for b := pair.Car(rest); b != pair.Null; b = pair.Cdr(b) {
		k, init := binding("let", pair.Car(b))

		names = append(names, sym.New(k))
		args = append(args, eval(init, s, depth))
	}

	outer := env.New(s)

	cl := closure.New(list.New(names...), body, outer)
	cl.Label = name

	outer.Define(name, cl)

	inner := bind(cl, args)

	return last(body, inner, depth), inner
}

// quasiquote expands a quasiquote template. level counts nested
// quasiquotes; an unquote only evaluates when it brings level to zero.
func quasiquote(t cell.I, level int, s scope.I, depth int) cell.I {
	if !pair.Is(t) || t == pair.Null {
		return t
	}

	head := pair.Car(t)

	if head == symUnquote {
		if level == 1 {
			return eval(pair.Cadr(t), s, depth)
		}

		return list.New(symUnquote, quasiquote(pair.Cadr(t), level-1, s, depth))
	}

	if head == symQuasi {
		return list.New(symQuasi, quasiquote(pair.Cadr(t), level+1, s, depth))
	}

	var start, end cell.I = pair.Null, nil

	grow := func(v cell.I) {
		c := pair.Cons(v, pair.Null)

		if start == pair.Null {
			start = c
		} else {
			pair.SetCdr(end, c)
		}

		end = c
	}

	for pair.Is(t) && t != pair.Null {
		if pair.Car(t) == symUnquote {
			// A dotted (a . ,b) template reads as (a unquote b).
			break
		}

		el := pair.Car(t)

		if pair.Is(el) && el != pair.Null && pair.Car(el) == symUnquoteS {
			if level == 1 {
				spliced := eval(pair.Cadr(el), s, depth)
				for v := spliced; v != pair.Null; v = pair.Cdr(v) {
					grow(pair.Car(v))
				}
			} else {
				grow(list.New(
					symUnquoteS, quasiquote(pair.Cadr(el), level-1, s, depth),
				))
			}
		} else {
			grow(quasiquote(el, level, s, depth))
		}

		t = pair.Cdr(t)
	}

	if t != pair.Null {
		tail := quasiquote(t, level, s, depth)

		if end == nil {
			return tail
		}

		pair.SetCdr(end, tail)
	}

	return start
}

// binding picks apart a single (name init) binding form.
func binding(label string, b cell.I) (string, cell.I) {
	if !pair.Is(b) || b == pair.Null {
		panic(fault.Malformed(label, "binding is not a list"))
	}

	parts := validate.Fixed(label, b, 2, 2)

	if !sym.Is(parts[0]) {
		panic(fault.Malformed(label, "binding name is not a symbol"))
	}

	return sym.To(parts[0]).String(), parts[1]
}

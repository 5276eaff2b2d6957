// Released under an MIT license. See LICENSE.

package engine

import (
	"fmt"

	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/interface/procedure"
	"github.com/michaelmacinnis/blisp/internal/common/type/boolean"
	"github.com/michaelmacinnis/blisp/internal/common/type/char"
	"github.com/michaelmacinnis/blisp/internal/common/type/env"
	"github.com/michaelmacinnis/blisp/internal/common/type/errlang"
	"github.com/michaelmacinnis/blisp/internal/common/type/list"
	"github.com/michaelmacinnis/blisp/internal/common/type/native"
	"github.com/michaelmacinnis/blisp/internal/common/type/num"
	"github.com/michaelmacinnis/blisp/internal/common/type/str"
	"github.com/michaelmacinnis/blisp/internal/common/type/sym"
	"github.com/michaelmacinnis/blisp/internal/common/validate"
)

type form func(e *engine, args []cell.I, scope *env.T) cell.I

//nolint:gochecknoglobals
var forms map[string]form

func init() { //nolint:gochecknoinits
	forms = map[string]form{
		"begin":  begin,
		"define": define,
		"if":     conditional,
		"lambda": lambda,
		"quote":  quote,
		"λ":      lambda,
	}
}

func (e *engine) eval(c cell.I, scope *env.T) cell.I {
	e.depth++
	defer func() { e.depth-- }()

	if e.depth > e.config.MaxDepth {
		panic(ErrDepth)
	}

	switch v := c.(type) {
	case *boolean.T, *char.T, *num.T, *str.T:
		return c
	case *Closure, *native.T:
		return c
	case *sym.T:
		return e.resolve(v, scope)
	case *list.T:
		return e.combination(v, scope)
	default:
		panic(fmt.Sprintf("cannot evaluate %T", c))
	}
}

// A name is resolved in the current scope and the scopes that enclose it.
// The global environment is always consulted last.
func (e *engine) resolve(s *sym.T, scope *env.T) cell.I {
	if s.IsNil() {
		return s
	}

	k := s.String()

	for ; scope != nil; scope = scope.Enclosing() {
		if v := scope.NullableLookup(k); v != nil {
			return v
		}
	}

	return e.global.Lookup(k)
}

func (e *engine) combination(l *list.T, scope *env.T) cell.I {
	elements := l.Elements()
	if len(elements) == 0 {
		panic(errlang.New(errlang.EmptyList, "Empty list"))
	}

	if s, ok := elements[0].(*sym.T); ok {
		if f, ok := forms[s.Canonical()]; ok {
			return f(e, elements[1:], scope)
		}
	}

	op := e.eval(elements[0], scope)

	args := make([]cell.I, len(elements)-1)
	for i, arg := range elements[1:] {
		args[i] = e.eval(arg, scope)
	}

	return procedure.To(op).Apply(args)
}

func (e *engine) sequence(body []cell.I, scope *env.T) cell.I {
	var v cell.I = sym.Nil

	for _, c := range body {
		v = e.eval(c, scope)
	}

	return v
}

// Special forms.

// (begin e1 e2 ...)
func begin(e *engine, args []cell.I, scope *env.T) cell.I {
	return e.sequence(args, scope)
}

// (if cond then else?)
func conditional(e *engine, args []cell.I, scope *env.T) cell.I {
	v := validate.Fixed("if", args, 2, 3) //nolint:gomnd

	c := e.eval(v[0], scope)
	if !boolean.Is(c) {
		panic(errlang.New(errlang.Type, "if condition must be a Boolean: %s", c))
	}

	if boolean.To(c).Bool() {
		return e.eval(v[1], scope)
	}

	if len(v) == 3 { //nolint:gomnd
		return e.eval(v[2], scope)
	}

	return sym.Nil
}

// (define name expr) or (define (name p1 p2 ...) body ...)
func define(e *engine, args []cell.I, scope *env.T) cell.I {
	v, body := validate.Variadic("define", args, 2, 1) //nolint:gomnd

	switch target := v[0].(type) {
	case *sym.T:
		validate.Fixed("define", args, 2, 2) //nolint:gomnd

		k := target.String()
		env.Check(k)

		value := e.eval(body[0], scope)
		scope.Define(k, value)

		return value
	case *list.T:
		signature := target.Elements()
		if len(signature) == 0 {
			panic(errlang.New(errlang.Syntax, "define requires a procedure name"))
		}

		k := symbol("procedure name", signature[0]).String()
		closure := newClosure(e, k, params(signature[1:]), body, scope)

		scope.Define(k, closure)

		return closure
	}

	panic(errlang.New(errlang.Type, "Cannot define %s", v[0]))
}

// (lambda (p1 p2 ...) body ...)
func lambda(e *engine, args []cell.I, scope *env.T) cell.I {
	v, body := validate.Variadic("lambda", args, 2, 1) //nolint:gomnd

	var signature []cell.I

	if s, ok := v[0].(*sym.T); !ok || !s.IsNil() {
		signature = list.To(v[0]).Elements()
	}

	return newClosure(e, "lambda", params(signature), body, scope)
}

// (quote e)
func quote(_ *engine, args []cell.I, _ *env.T) cell.I {
	v := validate.Fixed("quote", args, 1, 1)

	return v[0]
}

func params(cs []cell.I) []string {
	ps := make([]string, len(cs))

	for i, c := range cs {
		k := symbol("parameter", c).String()
		env.Check(k)

		ps[i] = k
	}

	return ps
}

func symbol(role string, c cell.I) *sym.T {
	s, ok := c.(*sym.T)
	if !ok {
		panic(errlang.New(errlang.Type, "%s must be a symbol: %s", role, c))
	}

	return s
}

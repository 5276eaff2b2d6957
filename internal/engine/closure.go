// Released under an MIT license. See LICENSE.

package engine

import (
	"strings"

	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/interface/procedure"
	"github.com/michaelmacinnis/blisp/internal/common/struct/format"
	"github.com/michaelmacinnis/blisp/internal/common/type/env"
	"github.com/michaelmacinnis/blisp/internal/common/type/errlang"
)

// Self is bound to the running closure in every call environment.
const Self = "recur"

// Closure is a user-defined procedure.
type Closure struct {
	Body   []cell.I // Expressions evaluated in order when called.
	Label  string   // Name given by define, or lambda.
	Params []string // Parameter names.
	Scope  *env.T   // Environment where the closure was created.

	engine *engine
}

func newClosure(e *engine, label string, params []string, body []cell.I, scope *env.T) *Closure {
	return &Closure{
		Body:   body,
		Label:  label,
		Params: params,
		Scope:  scope,
		engine: e,
	}
}

// The closure type is a cell.

// Equal returns true if c is the same closure as f.
func (f *Closure) Equal(c cell.I) bool {
	p, ok := c.(*Closure)

	return ok && p == f
}

// Format returns the display form of the closure f.
func (f *Closure) Format(t format.T) string {
	return t.Label(f.Name(), f.String())
}

// Name returns the type name for a closure.
func (*Closure) Name() string {
	return "Procedure"
}

// String returns a text representation of the closure f.
func (f *Closure) String() string {
	return "#<" + f.Label + " (" + strings.Join(f.Params, " ") + ")>"
}

// The closure type is a procedure.

// Apply binds args to f's parameters in a new environment enclosed by the
// environment where f was created and then evaluates f's body.
func (f *Closure) Apply(args []cell.I) cell.I {
	if len(args) != len(f.Params) {
		panic(errlang.New(errlang.Arity,
			"Argument count mismatch. Expected %d but got %d",
			len(f.Params), len(args),
		))
	}

	scope := env.New(f.Scope)

	scope.Define(Self, f)

	for i, k := range f.Params {
		scope.Define(k, args[i])
	}

	return f.engine.sequence(f.Body, scope)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func closureImplements() { //nolint:deadcode,unused
	var t Closure

	// The closure type is a cell.
	_ = cell.I(&t)

	// The closure type is a procedure.
	_ = procedure.I(&t)
}

// Released under an MIT license. See LICENSE.

// Package native provides blisp's built-in procedure type.
package native

import (
	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/interface/procedure"
	"github.com/michaelmacinnis/blisp/internal/common/struct/format"
)

const name = "Procedure"

// Func is the Go implementation of a built-in procedure.
type Func func(args []cell.I) cell.I

// T (native) is a procedure implemented in Go.
type T struct {
	fn    Func
	label string
}

type native = T

// New creates a native procedure called label.
func New(label string, fn Func) cell.I {
	return &native{fn: fn, label: label}
}

// Apply calls the native procedure n with the evaluated arguments args.
func (n *native) Apply(args []cell.I) cell.I {
	return n.fn(args)
}

// Equal returns true if c is the same native procedure as n.
func (n *native) Equal(c cell.I) bool {
	p, ok := c.(*native)

	return ok && p == n
}

// Format returns the display form of the native procedure n.
func (n *native) Format(f format.T) string {
	return f.Label(name, n.String())
}

// Label returns the name the native procedure n was created with.
func (n *native) Label() string {
	return n.label
}

// Name returns the type name for a native procedure.
func (n *native) Name() string {
	return name
}

// String returns a text representation of the native procedure n.
func (n *native) String() string {
	return "#<procedure " + n.label + ">"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t native

	// The native type is a cell.
	_ = cell.I(&t)

	// The native type is a procedure.
	_ = procedure.I(&t)
}

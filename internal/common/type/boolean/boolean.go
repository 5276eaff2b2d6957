// Released under an MIT license. See LICENSE.

// Package boolean provides blisp's boolean value type.
package boolean

import (
	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/struct/format"
	"github.com/michaelmacinnis/blisp/internal/common/type/errlang"
)

const name = "Boolean"

// T (boolean) wraps Go's bool type.
// There are exactly two booleans, True and False.
type T struct {
	v bool
}

type boolean = T

//nolint:gochecknoglobals
var (
	False = &boolean{v: false}
	True  = &boolean{v: true}
)

// Bool returns True or False for the Go bool b.
func Bool(b bool) cell.I {
	if b {
		return True
	}

	return False
}

// New returns the boolean for the literal s. Literals are case-sensitive.
func New(s string) cell.I {
	switch s {
	case "true":
		return True
	case "false":
		return False
	}

	panic(errlang.New(errlang.Syntax, "%s is not true or false", s))
}

// Bool returns the Go value of b.
func (b *boolean) Bool() bool {
	return b.v
}

// Equal returns true if c is the same boolean as b.
func (b *boolean) Equal(c cell.I) bool {
	return Is(c) && To(c).v == b.v
}

// Format returns the display form of b.
func (b *boolean) Format(f format.T) string {
	return f.Label(name, b.String())
}

// Name returns the type name for booleans.
func (b *boolean) Name() string {
	return name
}

// String returns true or false.
func (b *boolean) String() string {
	if b.v {
		return "true"
	}

	return "false"
}

// Is returns true if c is a boolean.
func Is(c cell.I) bool {
	_, ok := c.(*boolean)

	return ok
}

// To returns c as a boolean; Otherwise it panics.
func To(c cell.I) *boolean {
	if b, ok := c.(*boolean); ok {
		return b
	}

	panic(errlang.New(errlang.Type, "%s cannot be used in a boolean context", c))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t boolean

	// The boolean type is a cell.
	_ = cell.I(&t)
}

// Released under an MIT license. See LICENSE.

// Package char provides blisp's character type.
package char

import (
	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/struct/format"
	"github.com/michaelmacinnis/blisp/internal/common/type/errlang"
)

const name = "Character"

// T (char) wraps a Unicode code point.
type T rune

type char = T

// New creates a new char cell.
func New(r rune) cell.I {
	c := char(r)

	return &c
}

// Equal returns true if c is a char with the same code point.
func (ch *char) Equal(c cell.I) bool {
	return Is(c) && ch.Rune() == To(c).Rune()
}

// Format returns the display form of the char ch, in single quotes.
func (ch *char) Format(f format.T) string {
	return f.Label(name, "'"+ch.String()+"'")
}

// Name returns the type name for the char ch.
func (ch *char) Name() string {
	return name
}

// Rune returns the code point for the char ch.
func (ch *char) Rune() rune {
	return rune(*ch)
}

// String returns the char ch as a one character string.
func (ch *char) String() string {
	return string(rune(*ch))
}

// Is returns true if c is a char.
func Is(c cell.I) bool {
	_, ok := c.(*char)

	return ok
}

// To returns a char if c is a char; Otherwise it panics.
func To(c cell.I) *char {
	if t, ok := c.(*char); ok {
		return t
	}

	panic(errlang.New(errlang.Type, "%s cannot be used as a character", c))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t char

	// The char type is a cell.
	_ = cell.I(&t)
}

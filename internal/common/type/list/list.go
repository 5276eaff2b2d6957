// Released under an MIT license. See LICENSE.

// Package list provides blisp's list type and common list operations.
package list

import (
	"strings"

	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/struct/format"
	"github.com/michaelmacinnis/blisp/internal/common/type/errlang"
	"github.com/michaelmacinnis/blisp/internal/common/type/sym"
)

const name = "List"

// T (list) is an ordered sequence of cells.
type T struct {
	elements []cell.I
}

type list = T

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	return &list{elements: elements}
}

// Elements returns the elements of the list l. The slice must not be modified.
func (l *list) Elements() []cell.I {
	return l.elements
}

// Equal returns true if c is a list with elements that are equal to l's.
// The empty list is also equal to the symbol nil.
func (l *list) Equal(c cell.I) bool {
	if sym.Is(c) {
		return len(l.elements) == 0 && sym.To(c).IsNil()
	}

	if !Is(c) {
		return false
	}

	other := To(c).elements
	if len(other) != len(l.elements) {
		return false
	}

	for i, e := range l.elements {
		if !e.Equal(other[i]) {
			return false
		}
	}

	return true
}

// Format returns the display form of the list l.
// Each element is displayed with the same format.
func (l *list) Format(f format.T) string {
	s := make([]string, len(l.elements))
	for i, e := range l.elements {
		s[i] = e.Format(f)
	}

	return f.Label(name, "("+strings.Join(s, " ")+")")
}

// Len returns the number of elements in the list l.
func (l *list) Len() int {
	return len(l.elements)
}

// Name returns the name for the list type.
func (l *list) Name() string {
	return name
}

// String returns the text representation of the list l.
func (l *list) String() string {
	return l.Format(format.Plain)
}

// Functions specific to list.

// Head returns the first element of the list c.
func Head(c cell.I) cell.I {
	return Nth(c, 0)
}

// Last returns the final element of the list c.
func Last(c cell.I) cell.I {
	return Nth(c, int64(To(c).Len())-1)
}

// Nth returns the element at index of the list c.
// An index outside of the list panics.
func Nth(c cell.I, index int64) cell.I {
	l := To(c)

	msg := ""
	if index < 0 {
		msg = "index before first element"
	} else if index >= int64(len(l.elements)) {
		msg = "index after last element"
	}

	if msg != "" {
		panic(errlang.New(errlang.Index, "%s: %d (length %d)", msg, index, len(l.elements)))
	}

	return l.elements[index]
}

// Tail returns a list of every element of c after the first.
// The tail of the empty list is the empty list.
func Tail(c cell.I) cell.I {
	l := To(c)
	if len(l.elements) == 0 {
		return New()
	}

	return New(l.elements[1:]...)
}

// Is returns true if c is a list.
func Is(c cell.I) bool {
	_, ok := c.(*list)

	return ok
}

// To returns a list if c is a list; Otherwise it panics.
func To(c cell.I) *list {
	if t, ok := c.(*list); ok {
		return t
	}

	panic(errlang.New(errlang.Type, "%s is not a list", c))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t list

	// The list type is a cell.
	_ = cell.I(&t)
}

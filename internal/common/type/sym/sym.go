// Released under an MIT license. See LICENSE.

// Package sym provides blisp's symbol cell type.
//
// Symbols compare case-insensitively but keep the spelling they were
// created with for display.
package sym

import (
	"strings"

	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/struct/format"
	"github.com/michaelmacinnis/blisp/internal/common/type/errlang"
)

const name = "Symbol"

// T (sym) wraps Go's string type.
type T string

type sym = T

// Nil is the symbol nil. It is equal to the empty list.
var Nil cell.I = New("nil") //nolint:gochecknoglobals

// The empty list satisfies this. Declared here to avoid an import cycle.
type sequence interface {
	Len() int
}

// New creates a sym cell.
func New(v string) cell.I {
	s := sym(v)

	return &s
}

// Canonical returns the case-folded form of the sym s used for comparison.
func (s *sym) Canonical() string {
	return strings.ToLower(string(*s))
}

// Equal returns true if c is a sym with the same name, ignoring case.
// The nil symbol is also equal to the empty list.
func (s *sym) Equal(c cell.I) bool {
	if Is(c) {
		return strings.EqualFold(s.String(), To(c).String())
	}

	if l, ok := c.(sequence); ok && s.IsNil() {
		return l.Len() == 0
	}

	return false
}

// Format returns the display form of the sym s.
func (s *sym) Format(f format.T) string {
	return f.Label(name, s.String())
}

// IsNil returns true if s is the symbol nil.
func (s *sym) IsNil() bool {
	return s.Canonical() == "nil"
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return string(*s)
}

// Text returns the text of the sym s.
func (s *sym) Text() string {
	return string(*s)
}

// Is returns true if c is a sym.
func Is(c cell.I) bool {
	_, ok := c.(*sym)

	return ok
}

// To returns a sym if c is a sym; Otherwise it panics.
func To(c cell.I) *sym {
	if t, ok := c.(*sym); ok {
		return t
	}

	panic(errlang.New(errlang.Type, "%s is not a symbol", c))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)
}

// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all blisp values.
package cell

import (
	"github.com/michaelmacinnis/blisp/internal/common/struct/format"
)

// I (cell) is the basic unit of storage in blisp.
//
// The set of cell types is closed: boolean, char, num, str, sym, list,
// native, and the engine's closure. Code that switches on cell types
// treats anything else as an internal error.
type I interface {
	Equal(c I) bool
	Format(f format.T) string
	Name() string
	String() string
}

// Is returns true if c is of the type named n.
func Is(c I, n string) bool {
	return c != nil && c.Name() == n
}

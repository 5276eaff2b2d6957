// Released under an MIT license. See LICENSE.

// Package procedure defines the interface for blisp's callable types.
package procedure

import (
	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/type/errlang"
)

// I (procedure) is anything that can be applied to evaluated arguments.
type I interface {
	cell.I

	Apply(args []cell.I) cell.I
}

type procedure = I

// Is returns true if c is a procedure.
func Is(c cell.I) bool {
	_, ok := c.(procedure)

	return ok
}

// To returns a procedure if c is a procedure; Otherwise it panics.
func To(c cell.I) procedure {
	if p, ok := c.(procedure); ok {
		return p
	}

	panic(errlang.New(errlang.Type, "Unknown operator: %s", c))
}

// Released under an MIT license. See LICENSE.

// Package common defines helpers shared by blisp's types and procedures.
package common

import (
	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/type/errlang"
)

// Texter is implemented by cells that hold text.
type Texter interface {
	cell.I
	Text() string
}

// Text returns the text of a string or symbol.
func Text(c cell.I) string {
	t, ok := c.(Texter)
	if !ok {
		panic(errlang.New(errlang.Type, "%s cannot be used in a string context", c))
	}

	return t.Text()
}

// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/type/boolean"
	"github.com/michaelmacinnis/blisp/internal/common/type/list"
	"github.com/michaelmacinnis/blisp/internal/common/type/sym"
	"github.com/michaelmacinnis/blisp/internal/common/validate"
)

func isList(args []cell.I) cell.I {
	v := validate.Fixed("list?", args, 1, 1)

	return boolean.Bool(list.Is(v[0]))
}

// Both nil and the empty list are null.
func isNull(args []cell.I) cell.I {
	v := validate.Fixed("null?", args, 1, 1)

	return boolean.Bool(sym.Nil.Equal(v[0]))
}

func isSymbol(args []cell.I) cell.I {
	v := validate.Fixed("symbol?", args, 1, 1)

	return boolean.Bool(sym.Is(v[0]))
}

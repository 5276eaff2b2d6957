// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/type/boolean"
	"github.com/michaelmacinnis/blisp/internal/common/validate"
)

func isBoolean(args []cell.I) cell.I {
	v := validate.Fixed("boolean?", args, 1, 1)

	return boolean.Bool(boolean.Is(v[0]))
}

// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/type/boolean"
	"github.com/michaelmacinnis/blisp/internal/common/validate"
)

func not(args []cell.I) cell.I {
	v := validate.Fixed("not", args, 1, 1)

	return boolean.Bool(!boolean.To(v[0]).Bool())
}

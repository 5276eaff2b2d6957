// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"

	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/struct/format"
	"github.com/michaelmacinnis/blisp/internal/common/type/boolean"
	"github.com/michaelmacinnis/blisp/internal/common/type/char"
	"github.com/michaelmacinnis/blisp/internal/common/type/errlang"
	"github.com/michaelmacinnis/blisp/internal/common/type/num"
	"github.com/michaelmacinnis/blisp/internal/common/type/str"
	"github.com/michaelmacinnis/blisp/internal/common/validate"
)

func isChar(args []cell.I) cell.I {
	v := validate.Fixed("char?", args, 1, 1)

	return boolean.Bool(char.Is(v[0]))
}

func isString(args []cell.I) cell.I {
	v := validate.Fixed("string?", args, 1, 1)

	return boolean.Bool(str.Is(v[0]))
}

func sprintf(args []cell.I) cell.I {
	v, rest := validate.Variadic("sprintf", args, 1, 1)

	if !str.Is(v[0]) {
		panic(errlang.New(errlang.Type, "First argument to sprintf is a format string"))
	}

	values := make([]interface{}, len(rest))
	for i, c := range rest {
		values[i] = unwrap(c)
	}

	return str.New(fmt.Sprintf(str.To(v[0]).String(), values...))
}

// Unwrap converts c to the Go value that fmt verbs expect.
func unwrap(c cell.I) interface{} {
	switch v := c.(type) {
	case *boolean.T:
		return v.Bool()
	case *char.T:
		return v.Rune()
	case *num.T:
		if v.IsInt() {
			return v.Int()
		}

		return v.Float()
	case *str.T:
		return v.String()
	}

	return c.Format(format.Plain)
}

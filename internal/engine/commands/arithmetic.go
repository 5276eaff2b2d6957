// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/type/num"
	"github.com/michaelmacinnis/blisp/internal/common/validate"
)

func add(args []cell.I) cell.I {
	return fold(num.Int(0), args, num.Add)
}

func dec(args []cell.I) cell.I {
	v := validate.Fixed("dec", args, 1, 1)

	return num.Sub(num.To(v[0]), num.To(num.Int(1)))
}

func div(args []cell.I) cell.I {
	v, rest := validate.Variadic("/", args, 1, 1)

	return fold(v[0], rest, num.Div)
}

func inc(args []cell.I) cell.I {
	v := validate.Fixed("inc", args, 1, 1)

	return num.Add(num.To(v[0]), num.To(num.Int(1)))
}

func mod(args []cell.I) cell.I {
	v := validate.Fixed("mod", args, 2, 2)

	return num.Mod(num.To(v[0]), num.To(v[1]))
}

func mul(args []cell.I) cell.I {
	return fold(num.Int(1), args, num.Mul)
}

// With a single argument, subtraction returns that argument unchanged.
func sub(args []cell.I) cell.I {
	v, rest := validate.Variadic("-", args, 1, 1)

	return fold(v[0], rest, num.Sub)
}

func fold(acc cell.I, args []cell.I, op func(a, b *num.T) cell.I) cell.I {
	n := num.To(acc)

	for _, arg := range args {
		acc = op(n, num.To(arg))
		n = num.To(acc)
	}

	return n
}

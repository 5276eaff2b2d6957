// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/type/boolean"
	"github.com/michaelmacinnis/blisp/internal/common/type/num"
	"github.com/michaelmacinnis/blisp/internal/common/validate"
)

func eq(args []cell.I) cell.I {
	validate.Variadic("=", args, 2, 2)

	return boolean.Bool(equal(args))
}

func ge(args []cell.I) cell.I {
	return compare(">=", args, func(n int) bool { return n >= 0 })
}

func gt(args []cell.I) cell.I {
	return compare(">", args, func(n int) bool { return n > 0 })
}

func le(args []cell.I) cell.I {
	return compare("<=", args, func(n int) bool { return n <= 0 })
}

func lt(args []cell.I) cell.I {
	return compare("<", args, func(n int) bool { return n < 0 })
}

func ne(args []cell.I) cell.I {
	validate.Variadic("not=", args, 2, 2)

	return boolean.Bool(!equal(args))
}

// Stops at the first adjacent pair that fails the test.
func compare(name string, args []cell.I, ok func(int) bool) cell.I {
	validate.Variadic(name, args, 2, 2)

	prev := num.To(args[0])

	for _, arg := range args[1:] {
		curr := num.To(arg)

		n, ordered := num.Cmp(prev, curr)
		if !ordered || !ok(n) {
			return boolean.False
		}

		prev = curr
	}

	return boolean.True
}

func equal(args []cell.I) bool {
	for i := 1; i < len(args); i++ {
		if !args[i-1].Equal(args[i]) {
			return false
		}
	}

	return true
}

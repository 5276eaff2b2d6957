// Released under an MIT license. See LICENSE.

// Package validate checks the number of arguments passed to procedures.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/type/errlang"
)

// Variadic ensures that at least min arguments were passed to the procedure
// called name. It returns the first max arguments and any that remain.
func Variadic(name string, actual []cell.I, min, max int) ([]cell.I, []cell.I) {
	if len(actual) < min {
		s := Count(min, "argument", "s")
		panic(errlang.New(errlang.Arity,
			"Invalid number of arguments for %s: expected at least %s, passed %d",
			name, s, len(actual),
		))
	}

	if len(actual) < max {
		max = len(actual)
	}

	return actual[:max], actual[max:]
}

// Fixed ensures that between min and max arguments were passed to the
// procedure called name.
func Fixed(name string, actual []cell.I, min, max int) []cell.I {
	expected, rest := Variadic(name, actual, min, max)
	if len(rest) != 0 {
		s := Count(max, "argument", "s")
		if min != max {
			s = "at most " + s
		}

		panic(errlang.New(errlang.Arity,
			"Invalid number of arguments for %s: expected %s, passed %d",
			name, s, len(actual),
		))
	}

	return expected
}

// Count returns a phrase like "1 argument" or "2 arguments".
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

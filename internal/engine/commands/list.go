// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/interface/procedure"
	"github.com/michaelmacinnis/blisp/internal/common/type/boolean"
	"github.com/michaelmacinnis/blisp/internal/common/type/errlang"
	"github.com/michaelmacinnis/blisp/internal/common/type/list"
	"github.com/michaelmacinnis/blisp/internal/common/type/num"
	"github.com/michaelmacinnis/blisp/internal/common/type/str"
	"github.com/michaelmacinnis/blisp/internal/common/type/sym"
	"github.com/michaelmacinnis/blisp/internal/common/validate"
)

func count(args []cell.I) cell.I {
	v := validate.Fixed("count", args, 1, 1)

	if str.Is(v[0]) {
		return num.Int(int64(len([]rune(str.To(v[0]).String()))))
	}

	return num.Int(int64(len(elements(v[0]))))
}

func filter(args []cell.I) cell.I {
	v := validate.Fixed("filter", args, 2, 2)

	p := procedure.To(v[0])

	var kept []cell.I

	for _, e := range elements(v[1]) {
		if boolean.To(p.Apply([]cell.I{e})).Bool() {
			kept = append(kept, e)
		}
	}

	return list.New(kept...)
}

func first(args []cell.I) cell.I {
	v := validate.Fixed("first", args, 1, 1)

	return list.Head(sequence(v[0]))
}

func last(args []cell.I) cell.I {
	v := validate.Fixed("last", args, 1, 1)

	return list.Last(sequence(v[0]))
}

func makeList(args []cell.I) cell.I {
	return list.New(args...)
}

func makeRange(args []cell.I) cell.I {
	v := validate.Fixed("range", args, 1, 3)

	start, end, step := num.Int(0), v[0], num.Int(1)

	switch len(v) {
	case 2: //nolint:gomnd
		start, end = v[0], v[1]
	case 3: //nolint:gomnd
		start, end, step = v[0], v[1], v[2]
	}

	s := num.To(step)

	direction, ok := num.Cmp(s, num.To(num.Int(0)))
	if !ok || direction == 0 {
		panic(errlang.New(errlang.Runtime, "range step cannot be zero"))
	}

	var r []cell.I

	for i := num.To(start); before(i, num.To(end), direction); {
		r = append(r, i)
		i = num.To(num.Add(i, s))
	}

	return list.New(r...)
}

// True while i has not yet reached end moving in direction.
func before(i, end *num.T, direction int) bool {
	n, ok := num.Cmp(i, end)

	return ok && n == -direction
}

func mapList(args []cell.I) cell.I {
	v := validate.Fixed("map", args, 2, 2)

	p := procedure.To(v[0])
	e := elements(v[1])

	mapped := make([]cell.I, len(e))
	for i, c := range e {
		mapped[i] = p.Apply([]cell.I{c})
	}

	return list.New(mapped...)
}

func nth(args []cell.I) cell.I {
	v := validate.Fixed("nth", args, 2, 2)

	i := num.To(v[1])
	if !i.Integral() {
		panic(errlang.New(errlang.Type, "nth index must be an integer: %s", i))
	}

	return list.Nth(sequence(v[0]), i.Int())
}

// With no initial value the first element is used.
func reduce(args []cell.I) cell.I {
	v := validate.Fixed("reduce", args, 2, 3) //nolint:gomnd

	p := procedure.To(v[0])

	var acc cell.I

	e := elements(v[len(v)-1])

	if len(v) == 3 { //nolint:gomnd
		acc = v[1]
	} else {
		if len(e) == 0 {
			panic(errlang.New(errlang.Index, "reduce of empty list with no initial value"))
		}

		acc, e = e[0], e[1:]
	}

	for _, c := range e {
		acc = p.Apply([]cell.I{acc, c})
	}

	return acc
}

func rest(args []cell.I) cell.I {
	v := validate.Fixed("rest", args, 1, 1)

	return list.Tail(sequence(v[0]))
}

func elements(c cell.I) []cell.I {
	return list.To(sequence(c)).Elements()
}

// The symbol nil is treated as the empty list.
func sequence(c cell.I) cell.I {
	if s, ok := c.(*sym.T); ok && s.IsNil() {
		return list.New()
	}

	list.To(c)

	return c
}

// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/blisp/internal/common"
	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/interface/procedure"
	"github.com/michaelmacinnis/blisp/internal/common/type/boolean"
	"github.com/michaelmacinnis/blisp/internal/common/type/errlang"
	"github.com/michaelmacinnis/blisp/internal/common/type/list"
	"github.com/michaelmacinnis/blisp/internal/common/type/str"
	"github.com/michaelmacinnis/blisp/internal/common/validate"
)

func apply(args []cell.I) cell.I {
	v := validate.Fixed("apply", args, 2, 2)

	return procedure.To(v[0]).Apply(elements(v[1]))
}

func glob(args []cell.I) cell.I {
	v := validate.Fixed("glob", args, 1, 1)

	m, err := adapted.Glob(common.Text(v[0]))
	if err != nil {
		panic(errlang.New(errlang.Runtime, "%s", err.Error()))
	}

	paths := make([]cell.I, len(m))
	for i, p := range m {
		paths[i] = str.New(p)
	}

	return list.New(paths...)
}

func isProcedure(args []cell.I) cell.I {
	v := validate.Fixed("procedure?", args, 1, 1)

	return boolean.Bool(procedure.Is(v[0]))
}

func match(args []cell.I) cell.I {
	v := validate.Fixed("match", args, 2, 2)

	ok, err := adapted.Match(common.Text(v[0]), common.Text(v[1]))
	if err != nil {
		panic(errlang.New(errlang.Runtime, "%s", err.Error()))
	}

	return boolean.Bool(ok)
}

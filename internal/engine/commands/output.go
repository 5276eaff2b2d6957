// Released under an MIT license. See LICENSE.

package commands

import (
	"io"
	"strings"

	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/type/num"
	"github.com/michaelmacinnis/blisp/internal/common/type/str"
	"github.com/michaelmacinnis/blisp/internal/common/type/sym"
	"github.com/michaelmacinnis/blisp/internal/common/validate"
)

type writer struct {
	ctx Context
}

func (w *writer) exit(args []cell.I) cell.I {
	v := validate.Fixed("exit", args, 0, 1)

	code := 0
	if len(v) == 1 {
		code = int(num.To(v[0]).Int())
	}

	w.ctx.Exit(code)

	return sym.Nil
}

// Strings are written without quotes. Arguments are separated by a space.
func (w *writer) print(args []cell.I) cell.I {
	f := w.ctx.Format()

	s := make([]string, len(args))
	for i, c := range args {
		if str.Is(c) {
			s[i] = str.To(c).String()
		} else {
			s[i] = c.Format(f)
		}
	}

	w.write(strings.Join(s, " "))

	return sym.Nil
}

func (w *writer) printf(args []cell.I) cell.I {
	w.write(str.To(sprintf(args)).String())

	return sym.Nil
}

func (w *writer) println(args []cell.I) cell.I {
	w.print(args)
	w.write("\n")

	return sym.Nil
}

func (w *writer) write(s string) {
	_, err := io.WriteString(w.ctx.Output(), s)
	if err != nil {
		panic(err)
	}
}

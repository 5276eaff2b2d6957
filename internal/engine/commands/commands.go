// Released under an MIT license. See LICENSE.

// Package commands provides blisp's built-in procedures.
package commands

import (
	"io"

	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/struct/format"
)

// Context provides what built-in procedures need from the interpreter.
type Context interface {
	Exit(code int)
	Format() format.T
	Output() io.Writer
}

// Functions returns a mapping of names to built-in procedures.
func Functions(ctx Context) map[string]func([]cell.I) cell.I {
	w := &writer{ctx}

	return map[string]func([]cell.I) cell.I{
		"*":          mul,
		"+":          add,
		"-":          sub,
		"/":          div,
		"<":          lt,
		"<=":         le,
		"=":          eq,
		">":          gt,
		">=":         ge,
		"apply":      apply,
		"boolean?":   isBoolean,
		"char?":      isChar,
		"count":      count,
		"dec":        dec,
		"exit":       w.exit,
		"filter":     filter,
		"first":      first,
		"glob":       glob,
		"inc":        inc,
		"last":       last,
		"list":       makeList,
		"list?":      isList,
		"map":        mapList,
		"match":      match,
		"mod":        mod,
		"not":        not,
		"not=":       ne,
		"nth":        nth,
		"null?":      isNull,
		"number?":    isNumber,
		"print":      w.print,
		"printf":     w.printf,
		"println":    w.println,
		"procedure?": isProcedure,
		"range":      makeRange,
		"reduce":     reduce,
		"rest":       rest,
		"sprintf":    sprintf,
		"string?":    isString,
		"symbol?":    isSymbol,
	}
}

// Released under an MIT license. See LICENSE.

// Blisp is a small Lisp interpreter.
//
// Run without arguments on a terminal, blisp starts a REPL. Given a SCRIPT,
// or input that is not a terminal, blisp evaluates the script instead.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/michaelmacinnis/blisp/internal/system/config"
	"github.com/michaelmacinnis/blisp/internal/system/options"
	"github.com/michaelmacinnis/blisp/internal/ui"
)

func main() {
	o, err := options.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	if o.Message != "" {
		fmt.Println(o.Message)

		return
	}

	c, err := config.Load(o.Config)
	if err != nil {
		fatal(err)
	}

	err = ui.Run(o, c)

	var exit *ui.ExitError
	if errors.As(err, &exit) {
		os.Exit(exit.Code)
	} else if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Fatal Error:\n  %s\n", err.Error())
	os.Exit(1)
}

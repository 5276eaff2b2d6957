// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the blisp language.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/struct/format"
	"github.com/michaelmacinnis/blisp/internal/common/type/env"
	"github.com/michaelmacinnis/blisp/internal/common/type/errlang"
	"github.com/michaelmacinnis/blisp/internal/common/type/native"
	"github.com/michaelmacinnis/blisp/internal/common/type/sym"
	"github.com/michaelmacinnis/blisp/internal/common/validate"
	"github.com/michaelmacinnis/blisp/internal/engine"
	"github.com/michaelmacinnis/blisp/internal/reader"
	"github.com/michaelmacinnis/blisp/internal/system/config"
	"github.com/michaelmacinnis/blisp/internal/system/options"
)

const license = `blisp is released under an MIT license.
See the LICENSE file distributed with blisp for the full text.
`

// ExitError is returned when blisp code calls exit.
type ExitError struct {
	Code int
}

// Error returns a description of the exit request.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// T (ui) feeds blisp code from a script or an interactive session to an
// engine and reports the results.
type T struct {
	config *config.T
	engine *engine.T
	format format.T
	stderr io.Writer
	stdout io.Writer
}

type ui = T

// New creates a new ui with settings c that writes to stdout and stderr.
func New(c *config.T, stdout, stderr io.Writer) *T {
	u := &ui{
		config: c,
		format: format.T{Extended: c.ExtendedPrint},
		stderr: stderr,
		stdout: stdout,
	}

	u.engine = engine.New(engine.Config{
		Exit: func(code int) {
			panic(&ExitError{Code: code})
		},
		Format:   u.format,
		MaxDepth: c.MaxDepth,
		Out:      stdout,
	})

	u.engine.Define("help", native.New("help", u.help))
	u.engine.Define("license", native.New("license", u.license))

	return u
}

// Run runs blisp in the mode selected by o.
func Run(o *options.T, c *config.T) error {
	c.ExtendedPrint = c.ExtendedPrint || o.Extended
	c.ShowParser = c.ShowParser || o.ShowParser
	c.ShowTokens = c.ShowTokens || o.ShowTokens
	c.StackTrace = c.StackTrace || o.StackTrace

	u := New(c, os.Stdout, os.Stderr)

	mode := o.Mode()

	if mode == options.Script || mode == options.ScriptAndREPL {
		err := u.file(o.Script)
		if err != nil || mode == options.Script {
			return err
		}
	}

	return u.Interactive()
}

// Script evaluates all of the blisp code read from r. Language-level errors
// are reported and evaluation continues with the next expression.
func (u *ui) Script(name string, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	rd := reader.New(name)

	for _, line := range strings.SplitAfter(string(b), "\n") {
		err = u.evaluate(rd, line, false)
		if err != nil {
			return err
		}
	}

	if err := rd.Close(); err != nil {
		u.report(err)
	}

	return nil
}

func (u *ui) complete(line string, pos int) (head string, completions []string, tail string) {
	head, tail = line[:pos], line[pos:]

	i := strings.LastIndexAny(head, " \t\n()'") + 1

	word := strings.ToLower(head[i:])
	if word == "" {
		return head, nil, tail
	}

	head = head[:i]

	for _, name := range u.names() {
		if strings.HasPrefix(name, word) {
			completions = append(completions, name)
		}
	}

	return head, completions, tail
}

// Evaluate scans text and evaluates each complete expression. If echo is
// true, each result is printed.
func (u *ui) evaluate(rd *reader.T, text string, echo bool) error {
	cs, err := rd.Scan(text)
	if err != nil {
		u.report(err)

		return nil
	}

	if len(cs) == 0 {
		return nil
	}

	if u.config.ShowTokens {
		fmt.Fprintf(u.stdout, "  Tokens: [%s]\n", strings.Join(rd.Tokens(), ", "))
	}

	if u.config.ShowParser {
		ss := make([]string, len(cs))
		for i, c := range cs {
			ss[i] = c.Format(format.Plain)
		}

		fmt.Fprintf(u.stdout, "  Parsed Expr(s): %s\n", strings.Join(ss, " "))
	}

	for _, c := range cs {
		v, err := u.engine.Evaluate(c)
		if err != nil {
			var exit *ExitError
			if errors.As(err, &exit) {
				return err
			}

			if errlang.Recoverable(err) {
				u.report(err)
			}

			if u.config.StackTrace {
				u.stderr.Write(u.engine.Stack()) //nolint:errcheck
			}

			if !errlang.Recoverable(err) {
				return err
			}

			continue
		}

		if echo {
			fmt.Fprintln(u.stdout, v.Format(u.format))
		}
	}

	return nil
}

func (u *ui) file(path string) error {
	if path == "" {
		return u.Script("stdin", os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return u.Script(path, f)
}

func (u *ui) help(args []cell.I) cell.I {
	validate.Fixed("help", args, 0, 0)

	forms := make([]string, 0, len(env.Keywords))
	for k := range env.Keywords {
		forms = append(forms, k)
	}

	sort.Strings(forms)

	fmt.Fprintf(u.stdout, "Special forms:\n  %s\n", strings.Join(forms, " "))
	fmt.Fprintf(u.stdout, "Procedures:\n  %s\n", strings.Join(u.engine.Global().Names(), " "))

	return sym.Nil
}

func (u *ui) license(args []cell.I) cell.I {
	validate.Fixed("license", args, 0, 0)

	fmt.Fprint(u.stdout, license)

	return sym.Nil
}

func (u *ui) names() []string {
	names := u.engine.Global().Names()

	for k := range env.Keywords {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

func (u *ui) report(err error) {
	fmt.Fprintf(u.stderr, "Error:\n  %s\n", err.Error())
}

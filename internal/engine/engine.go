// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed blisp code.
package engine

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/struct/format"
	"github.com/michaelmacinnis/blisp/internal/common/type/env"
	"github.com/michaelmacinnis/blisp/internal/common/type/errlang"
	"github.com/michaelmacinnis/blisp/internal/common/type/native"
	"github.com/michaelmacinnis/blisp/internal/engine/boot"
	"github.com/michaelmacinnis/blisp/internal/engine/commands"
	"github.com/michaelmacinnis/blisp/internal/reader/lexer"
	"github.com/michaelmacinnis/blisp/internal/reader/parser"
)

// DefaultMaxDepth is used when Config.MaxDepth is not positive.
const DefaultMaxDepth = 10000

// ErrDepth is the cause of the fatal error returned when evaluation nests
// deeper than the configured maximum.
var ErrDepth = errors.New("maximum evaluation depth exceeded")

// Config holds the settings for an engine.
type Config struct {
	Exit     func(int) // Called by exit. Defaults to os.Exit.
	Format   format.T  // Display format used by the printing procedures.
	MaxDepth int       // Maximum evaluation depth.
	Out      io.Writer // Destination for the printing procedures. Defaults to os.Stdout.
}

// Fatal is returned by Evaluate for any failure that is not a
// language-level error. The session should end.
type Fatal struct {
	value interface{}
}

// Error returns the message for the fatal error f.
func (f *Fatal) Error() string {
	if err, ok := f.value.(error); ok {
		return err.Error()
	}

	return fmt.Sprint(f.value)
}

// Unwrap returns the error that caused f, if any.
func (f *Fatal) Unwrap() error {
	err, _ := f.value.(error)

	return err
}

// T (engine) evaluates blisp expressions against a global environment.
type T struct {
	config Config
	depth  int
	global *env.T
	stack  []byte
}

type engine = T

// New creates a new engine with a fresh global environment.
func New(c Config) *T {
	if c.Exit == nil {
		c.Exit = os.Exit
	}

	if c.MaxDepth <= 0 {
		c.MaxDepth = DefaultMaxDepth
	}

	if c.Out == nil {
		c.Out = os.Stdout
	}

	e := &engine{config: c}

	e.global = e.CreateGlobalEnv()

	return e
}

// CreateGlobalEnv returns a new environment containing every built-in
// procedure and the definitions from the boot script.
func (e *engine) CreateGlobalEnv() *env.T {
	global := env.New(nil)

	for k, fn := range commands.Functions(e) {
		global.Define(k, native.New(k, fn))
	}

	ts, err := lexer.Tokenize(boot.Script())
	if err != nil {
		panic(err)
	}

	cs, err := parser.All(ts)
	if err != nil {
		panic(err)
	}

	for _, c := range cs {
		e.eval(c, global)
	}

	return global
}

// Define binds k to v in the global environment.
func (e *engine) Define(k string, v cell.I) {
	e.global.Define(k, v)
}

// EvalString evaluates every expression in text and returns the last value.
func (e *engine) EvalString(text string) (cell.I, error) {
	ts, err := lexer.Tokenize(text)
	if err != nil {
		return nil, err
	}

	cs, err := parser.All(ts)
	if err != nil {
		return nil, err
	}

	var v cell.I

	for _, c := range cs {
		v, err = e.Evaluate(c)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Evaluate evaluates c in the global environment. Language-level failures
// are returned as an *errlang.T. Anything else is returned as a *Fatal.
func (e *engine) Evaluate(c cell.I) (v cell.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e.stack = debug.Stack()

		if l, ok := r.(*errlang.T); ok {
			err = l

			return
		}

		err = &Fatal{value: r}
	}()

	return e.eval(c, e.global), nil
}

// Exit calls the configured exit function.
func (e *engine) Exit(code int) {
	e.config.Exit(code)
}

// Format returns the configured display format.
func (e *engine) Format() format.T {
	return e.config.Format
}

// Global returns the engine's global environment.
func (e *engine) Global() *env.T {
	return e.global
}

// Output returns the writer used by the printing procedures.
func (e *engine) Output() io.Writer {
	return e.config.Out
}

// Stack returns the Go stack captured at the most recent failure.
func (e *engine) Stack() []byte {
	return e.stack
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t engine

	// The engine type provides the context for builtins.
	_ = commands.Context(&t)
}

// Released under an MIT license. See LICENSE.

// Package errlang provides blisp's language-level error type.
//
// A language-level error is recoverable: the session reports it and moves
// on to the next expression. Any other failure is fatal.
package errlang

import (
	"errors"
	"fmt"
)

// Kind classifies a language-level error.
type Kind int

// Error kinds.
const (
	Runtime Kind = iota
	Lex
	Syntax
	Unbound
	Rebind
	Arity
	Type
	DivideByZero
	EmptyList
	Index
)

// String returns the name of the kind k.
func (k Kind) String() string {
	switch k {
	case Runtime:
		return "RuntimeError"
	case Lex:
		return "LexError"
	case Syntax:
		return "SyntaxError"
	case Unbound:
		return "UnboundSymbolError"
	case Rebind:
		return "RebindKeywordError"
	case Arity:
		return "ArityError"
	case Type:
		return "TypeError"
	case DivideByZero:
		return "DivisionByZeroError"
	case EmptyList:
		return "EmptyListError"
	case Index:
		return "IndexError"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// T (errlang) is a language-level error.
type T struct {
	cause error
	kind  Kind
	msg   string
}

type errlang = T

// New creates a new errlang of kind k with a formatted message.
func New(k Kind, format string, args ...interface{}) *errlang {
	return &errlang{kind: k, msg: fmt.Sprintf(format, args...)}
}

// Wrap creates a new errlang of kind k that wraps cause.
func Wrap(k Kind, cause error, format string, args ...interface{}) *errlang {
	e := New(k, format, args...)
	e.cause = cause

	return e
}

// Error returns the message for the errlang e.
func (e *errlang) Error() string {
	return e.msg
}

// Kind returns the kind of the errlang e.
func (e *errlang) Kind() Kind {
	return e.kind
}

// Unwrap returns the error wrapped by e, if any.
func (e *errlang) Unwrap() error {
	return e.cause
}

// Functions specific to errlang.

// As returns the errlang in err's chain, if there is one.
func As(err error) (*errlang, bool) {
	var e *errlang

	ok := errors.As(err, &e)

	return e, ok
}

// Is returns true if err is a language-level error of kind k.
func Is(err error, k Kind) bool {
	e, ok := As(err)

	return ok && e.kind == k
}

// Recoverable returns true if err is any language-level error.
func Recoverable(err error) bool {
	_, ok := As(err)

	return ok
}

// Catch recovers a panicking errlang and stores it in *err. It must be
// deferred directly. Any other panic continues.
func Catch(err *error) {
	r := recover()
	if r == nil {
		return
	}

	e, ok := r.(*errlang)
	if !ok {
		panic(r)
	}

	*err = e
}

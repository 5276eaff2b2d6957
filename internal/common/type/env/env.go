// Released under an MIT license. See LICENSE.

// Package env provides blisp's environment type.
//
// An env maps case-insensitive names to values. It may have an enclosing
// env. The enclosing env is never modified through the env that refers to
// it; it is only consulted by code that walks the chain (see Enclosing).
package env

import (
	"strings"

	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/struct/hash"
	"github.com/michaelmacinnis/blisp/internal/common/type/errlang"
)

// T (env) is a single scope frame.
type T struct {
	bindings *hash.T
	previous *env
}

type env = T

// Keywords are the names of special forms. They cannot be bound.
//
//nolint:gochecknoglobals
var Keywords = map[string]bool{
	"begin":  true,
	"define": true,
	"if":     true,
	"lambda": true,
	"quote":  true,
	"λ":      true,
}

// New creates a new env that falls back to previous (which may be nil).
func New(previous *env) *env {
	return &env{
		bindings: hash.New(),
		previous: previous,
	}
}

// Define associates the name k with the cell v in the env e only.
// Special form keywords cannot be defined.
func (e *env) Define(k string, v cell.I) {
	Check(k)

	e.bindings.Set(k, v)
}

// Enclosing returns the env that e falls back to, if any.
func (e *env) Enclosing() *env {
	return e.previous
}

// Lookup retrieves the value associated with the name k in the env e.
// If k is not bound in e, Lookup panics.
func (e *env) Lookup(k string) cell.I {
	v := e.NullableLookup(k)
	if v == nil {
		panic(errlang.New(errlang.Unbound, "Undefined symbol: %s", k))
	}

	return v
}

// Names returns every name bound in the env e, in sorted order.
func (e *env) Names() []string {
	return e.bindings.Keys()
}

// NullableLookup retrieves the value associated with the name k in the env e.
// It returns nil if k is not bound in e.
func (e *env) NullableLookup(k string) cell.I {
	if e == nil {
		return nil
	}

	return e.bindings.Get(k)
}

// Check panics if k names a special form.
func Check(k string) {
	if IsKeyword(k) {
		panic(errlang.New(errlang.Rebind, "Can't rebind keyword symbol: %s", k))
	}
}

// IsKeyword returns true if k names a special form.
func IsKeyword(k string) bool {
	return Keywords[strings.ToLower(k)]
}

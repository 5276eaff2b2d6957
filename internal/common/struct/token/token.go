// Released under an MIT license. See LICENSE.

// Package token defines the lexemes passed from the lexer to the parser.
package token

import (
	"fmt"
	"unicode"

	"github.com/michaelmacinnis/blisp/internal/common/struct/loc"
)

// Class identifies the kind of lexeme.
// Parentheses and the quote mark use their own rune as their class.
type Class rune

// Lexeme classes that are not single runes.
const (
	Error Class = iota

	Atom Class = unicode.MaxRune + iota
	Character
	String
)

//nolint:gochecknoglobals
var names = map[Class]string{
	Error:     "Error",
	Atom:      "Atom",
	Character: "Character",
	String:    "String",
}

// String returns the name of the class c, or its quoted rune.
func (c Class) String() string {
	if s, ok := names[c]; ok {
		return s
	}

	return fmt.Sprintf("%q", rune(c))
}

// T (token) is a lexeme, its class, and where it was found.
type T struct {
	class  Class
	source *loc.T
	value  string
}

type token = T

// New creates a token of class c with the text v found at l.
func New(c Class, v string, l *loc.T) *token {
	return &token{class: c, source: l, value: v}
}

// Class returns the class of t.
func (t *token) Class() Class {
	return t.class
}

// Is returns true if t is not nil and its class is one of cs.
func (t *token) Is(cs ...Class) bool {
	if t != nil {
		for _, c := range cs {
			if c == t.class {
				return true
			}
		}
	}

	return false
}

// Source returns where t was found.
func (t *token) Source() *loc.T {
	return t.source
}

// String is used when tracing and in tests.
func (t *token) String() string {
	return fmt.Sprintf("%q(%s,%s)", t.value, t.class, t.source)
}

// Value returns the text of t.
func (t *token) Value() string {
	return t.value
}

// Values returns the text of each token in ts.
func Values(ts []*token) []string {
	vs := make([]string, 0, len(ts))
	for _, t := range ts {
		vs = append(vs, t.value)
	}

	return vs
}

// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the blisp language.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/struct/token"
	"github.com/michaelmacinnis/blisp/internal/common/type/boolean"
	"github.com/michaelmacinnis/blisp/internal/common/type/char"
	"github.com/michaelmacinnis/blisp/internal/common/type/errlang"
	"github.com/michaelmacinnis/blisp/internal/common/type/list"
	"github.com/michaelmacinnis/blisp/internal/common/type/num"
	"github.com/michaelmacinnis/blisp/internal/common/type/str"
	"github.com/michaelmacinnis/blisp/internal/common/type/sym"
)

//nolint:gochecknoglobals
var symbol = regexp.MustCompile(
	`^[\pL!$%&*/:<=>?^_~+.-][\pL0-9!$%&*/:<=>?^_~+.-]*$`,
)

// T holds the state of the parser.
type T struct {
	index  int        // Position of the next token.
	tokens []*token.T // Tokens being parsed.
}

type parser = T

// New creates a new parser for the tokens ts.
func New(ts []*token.T) *T {
	return &T{tokens: ts}
}

// All parses every expression in tokens.
func All(tokens []string) ([]cell.I, error) {
	return New(Tokens(tokens)).All()
}

// Parse parses the single expression that starts at position pos in tokens.
// It returns the expression and the position of the first unconsumed token.
func Parse(tokens []string, pos int) (c cell.I, next int, err error) {
	p := New(Tokens(tokens))
	p.index = pos

	c, err = p.Next()

	return c, p.index, err
}

// Atom converts the lexeme s into a Boolean, Character, Number, String, or
// Symbol.
func Atom(s string) cell.I {
	switch {
	case s == "":
		panic(errlang.New(errlang.Syntax, "Empty token"))
	case s[0] == '\\':
		return character(s)
	case s[0] == '"':
		return str.New(strings.TrimSuffix(s[1:], `"`))
	case numeric(s):
		return num.New(s)
	case symbol.MatchString(s):
		if s == "true" || s == "false" {
			return boolean.New(s)
		}

		return sym.New(s)
	}

	return num.New(s)
}

// Tokens converts lexemes into tokens with no source location.
func Tokens(ss []string) []*token.T {
	ts := make([]*token.T, len(ss))

	for i, s := range ss {
		c := token.Atom

		switch {
		case s == "(", s == ")", s == "'":
			c = token.Class(s[0])
		case strings.HasPrefix(s, `"`):
			c = token.String
		case strings.HasPrefix(s, `\`):
			c = token.Character
		}

		ts[i] = token.New(c, s, nil)
	}

	return ts
}

// All parses every remaining expression.
func (p *parser) All() (cs []cell.I, err error) {
	defer errlang.Catch(&err)

	for p.peek() != nil {
		cs = append(cs, p.expression())
	}

	return cs, nil
}

// Done returns true if there are no more tokens to parse.
func (p *parser) Done() bool {
	return p.peek() == nil
}

// Next parses the next expression.
func (p *parser) Next() (c cell.I, err error) {
	defer errlang.Catch(&err)

	return p.expression(), nil
}

func (p *parser) consume() *token.T {
	t := p.peek()
	if t == nil {
		panic("nothing to consume.")
	}

	p.index++

	return t
}

func (p *parser) fail(t *token.T, format string, args ...interface{}) *errlang.T {
	msg := fmt.Sprintf(format, args...)
	if t != nil && t.Source() != nil {
		msg += " at " + t.Source().String()
	}

	return errlang.New(errlang.Syntax, "%s", msg)
}

func (p *parser) peek() *token.T {
	if p.index < 0 || p.index >= len(p.tokens) {
		return nil
	}

	return p.tokens[p.index]
}

// T state functions.

// <expression> ::= '\'' <expression> | '(' <expression>* ')' | <atom> .
func (p *parser) expression() cell.I {
	t := p.peek()

	switch {
	case t == nil:
		panic(p.fail(nil, "Unexpected end of input"))
	case t.Is('\''):
		p.consume()

		if p.peek() == nil {
			panic(p.fail(t, "Nothing to quote"))
		}

		return list.New(sym.New("quote"), p.expression())
	case t.Is('('):
		return p.list()
	case t.Is(')'):
		panic(p.fail(t, "Unexpected closing parenthesis"))
	}

	return Atom(p.consume().Value())
}

func (p *parser) list() cell.I {
	open := p.consume()

	var elements []cell.I

	for {
		t := p.peek()
		if t == nil {
			panic(p.fail(open, "Unbalanced parenthesis"))
		}

		if t.Is(')') {
			p.consume()

			return list.New(elements...)
		}

		elements = append(elements, p.expression())
	}
}

func character(s string) cell.I {
	v := s[1:]

	if len(v) > 2 && strings.HasPrefix(v, "0x") {
		r, err := strconv.ParseUint(v[2:], 16, 32)
		if err != nil || !utf8.ValidRune(rune(r)) {
			panic(errlang.New(errlang.Syntax, "Invalid character literal: %s", s))
		}

		return char.New(rune(r))
	}

	r, n := utf8.DecodeRuneInString(v)
	if n == 0 || n != len(v) {
		panic(errlang.New(errlang.Syntax, "Invalid character literal: %s", s))
	}

	return char.New(r)
}

// A token is numeric if it starts with a digit or with a sign or decimal
// point followed by a digit.
func numeric(s string) bool {
	if s == "" {
		return false
	}

	if isDigit(s[0]) {
		return true
	}

	return len(s) > 1 && strings.IndexByte("+-.", s[0]) >= 0 && isDigit(s[1])
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// Released under an MIT license. See LICENSE.

// Package reader encapsulates the blisp lexer and parser.
//
// A reader accumulates input until it holds one or more complete
// expressions and then returns them.
package reader

import (
	"errors"
	"strings"

	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/struct/token"
	"github.com/michaelmacinnis/blisp/internal/reader/lexer"
	"github.com/michaelmacinnis/blisp/internal/reader/parser"
)

// T (reader) buffers text until parentheses balance.
type T struct {
	buffer strings.Builder
	label  string
	line   int // Line where the buffered text starts.
	tokens []*token.T
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	return &T{label: name, line: 1}
}

// Close returns an error if the reader holds an incomplete expression.
func (r *reader) Close() error {
	if !r.Incomplete() {
		return nil
	}

	line := r.line
	text := r.flush()

	ts, err := lexer.TokensFrom(r.label, line, text)
	if err != nil {
		return err
	}

	_, err = parser.New(ts).All()

	return err
}

// Incomplete returns true if the reader holds a partial expression.
func (r *reader) Incomplete() bool {
	return strings.TrimSpace(r.buffer.String()) != ""
}

// Reset discards any buffered input.
func (r *reader) Reset() {
	r.flush()
}

// Scan adds text to the reader's buffer. If the buffer then holds only
// complete expressions they are parsed and returned. If the input is
// incomplete, Scan returns nil and no error. Lex and syntax errors discard
// the buffer.
func (r *reader) Scan(text string) ([]cell.I, error) {
	r.buffer.WriteString(text)

	ts, err := lexer.TokensFrom(r.label, r.line, r.buffer.String())
	if errors.Is(err, lexer.ErrUnterminated) {
		return nil, nil
	} else if err != nil {
		r.flush()

		return nil, err
	}

	if pending(ts) {
		return nil, nil
	}

	r.flush()

	r.tokens = ts

	return parser.New(ts).All()
}

// Tokens returns the lexemes for the most recently completed input.
func (r *reader) Tokens() []string {
	return token.Values(r.tokens)
}

// Flush empties the buffer and returns what it held.
func (r *reader) flush() string {
	text := r.buffer.String()

	r.buffer.Reset()
	r.line += strings.Count(text, "\n")

	return text
}

// The tokens ts are pending if parentheses are still open or a quote has
// nothing to quote.
func pending(ts []*token.T) bool {
	n := len(ts)
	if n == 0 {
		return false
	}

	if ts[n-1].Is('\'') {
		return true
	}

	depth := 0

	for _, t := range ts {
		switch {
		case t.Is('('):
			depth++
		case t.Is(')'):
			depth--
		}
	}

	return depth > 0
}

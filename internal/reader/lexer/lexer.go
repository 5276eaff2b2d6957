// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the blisp language.
//
// The blisp lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk "Lexical
// Scanning in Go". See https://talks.golang.org/2011/lex.slide for more
// information.
package lexer

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/blisp/internal/common/struct/loc"
	"github.com/michaelmacinnis/blisp/internal/common/struct/token"
	"github.com/michaelmacinnis/blisp/internal/common/type/errlang"
)

// ErrUnterminated is wrapped by the error returned when the input ends
// inside a string literal. A caller that is still collecting input can
// use it to ask for more.
var ErrUnterminated = errors.New("unterminated")

// Context is the maximum length of the previous token shown when an
// unknown token is encountered.
const Context = 24 - 3

const eof = -1

// T holds the state of the scanner.
type T struct {
	bytes  string     // Buffer being scanned.
	first  int        // Index of the current token's first byte.
	index  int        // Index of the current byte.
	last   string     // Most recently emitted token.
	line   int        // Line of the current byte.
	runes  int        // Runes scanned on the current line.
	source loc.T      // Location of the current token's first rune.
	state  action     // Current action.
	tokens []*token.T // Tokens emitted but not yet returned.
}

type action func(*T) action

// New creates a new T to scan text. Label can be a file name or other identifier.
func New(label, text string) *T {
	return &T{
		bytes: text,
		line:  1,
		runes: 1,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		state: skipWhitespace,
	}
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil when the input is exhausted.
// Malformed input causes Token to panic with an *errlang.T.
func (l *T) Token() *token.T {
	for len(l.tokens) == 0 {
		if l.state == nil {
			return nil
		}

		l.state = l.state(l)
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t
}

// Tokens scans all of text and returns the resulting tokens.
func Tokens(label, text string) ([]*token.T, error) {
	return TokensFrom(label, 1, text)
}

// TokensFrom is like Tokens but the text starts on the given line.
func TokensFrom(label string, line int, text string) (ts []*token.T, err error) {
	defer errlang.Catch(&err)

	l := New(label, text)
	l.line = line
	l.source.Line = line

	for t := l.Token(); t != nil; t = l.Token() {
		ts = append(ts, t)
	}

	return ts, nil
}

// Tokenize scans all of text and returns the lexeme for each token.
func Tokenize(text string) ([]string, error) {
	ts, err := Tokens("input", text)
	if err != nil {
		return nil, err
	}

	return token.Values(ts), nil
}

// IsSymbolStart returns true if r can begin a symbol or number.
func IsSymbolStart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		strings.ContainsRune("+-*/<=>!$%&?^_~", r)
}

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	source := l.source

	l.tokens = append(l.tokens, token.New(c, v, &source))
	l.last = v
	l.skip()
}

func (l *T) next() rune {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) previous() string {
	if l.last == "" {
		return "N/A"
	}

	rs := []rune(l.last)
	if len(rs) > Context {
		rs = rs[:Context]
	}

	return string(rs)
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.source.Line = l.line
	l.first = l.index
}

func delimiter(r rune) bool {
	return r == eof || r == '(' || r == ')' || unicode.IsSpace(r)
}

// T states.

func scanAtom(l *T) action {
	for {
		r, w := l.peek()
		if delimiter(r) {
			l.emit(token.Atom, l.Text())

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func scanCharacter(l *T) action {
	// The rune after the backslash is always part of the literal so
	// that \( and \  can be written.
	r, w := l.peek()
	if r != eof {
		l.accept(r, w)
	}

	for {
		r, w := l.peek()
		if delimiter(r) {
			l.emit(token.Character, l.Text())

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func scanString(l *T) action {
	var b strings.Builder

	b.WriteByte('"')

	for {
		r := l.next()

		switch r {
		case eof:
			panic(l.unterminated("Unterminated string"))
		case '"':
			b.WriteByte('"')
			l.emit(token.String, b.String())

			return skipWhitespace
		case '\\':
			e := l.next()

			switch e {
			case eof:
				panic(l.unterminated("Unterminated escape sequence"))
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'b':
				b.WriteByte('\b')
			case 'r':
				b.WriteByte('\r')
			case 'f':
				b.WriteByte('\f')
			case '"', '\\':
				b.WriteRune(e)
			default:
				// Unrecognized escapes are kept as written.
				b.WriteByte('\\')
				b.WriteRune(e)
			}
		default:
			b.WriteRune(r)
		}
	}
}

func skipComment(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			return nil
		case '\n':
			l.skip()

			return skipWhitespace
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r := l.next()

		switch {
		case r == eof:
			return nil
		case unicode.IsSpace(r):
			l.skip()
		case r == ';':
			return skipComment
		case r == '(', r == ')', r == '\'':
			l.emit(token.Class(r), l.Text())

			return skipWhitespace
		case r == '"':
			return scanString
		case r == '\\':
			return scanCharacter
		case IsSymbolStart(r):
			return scanAtom
		default:
			panic(errlang.New(errlang.Lex, "Unknown token after: %s...", l.previous()))
		}
	}
}

func (l *T) unterminated(msg string) *errlang.T {
	return errlang.Wrap(errlang.Lex, ErrUnterminated, "%s starting at %s", msg, &l.source)
}

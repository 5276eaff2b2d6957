package parser

import (
	"strings"
	"testing"

	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/struct/format"
	"github.com/michaelmacinnis/blisp/internal/common/type/boolean"
	"github.com/michaelmacinnis/blisp/internal/common/type/char"
	"github.com/michaelmacinnis/blisp/internal/common/type/errlang"
	"github.com/michaelmacinnis/blisp/internal/common/type/list"
	"github.com/michaelmacinnis/blisp/internal/common/type/num"
	"github.com/michaelmacinnis/blisp/internal/common/type/str"
	"github.com/michaelmacinnis/blisp/internal/common/type/sym"
	"github.com/michaelmacinnis/blisp/internal/reader/lexer"
)

func TestAtoms(t *testing.T) {
	for _, tc := range []struct {
		in  string
		out cell.I
	}{
		{"42", num.Int(42)},
		{"-5", num.Int(-5)},
		{"+7", num.Int(7)},
		{"3.5", num.Float(3.5)},
		{"1e3", num.Float(1000)},
		{"true", boolean.True},
		{"false", boolean.False},
		{"True", sym.New("True")},
		{"foo", sym.New("foo")},
		{"-", sym.New("-")},
		{"λ", sym.New("λ")},
		{"even?", sym.New("even?")},
		{`"hi there"`, str.New("hi there")},
		{`\a`, char.New('a')},
		{`\(`, char.New('(')},
		{`\0x41`, char.New('A')},
		{`\0`, char.New('0')},
	} {
		c, next, err := Parse([]string{tc.in}, 0)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.in, err)
		}

		if next != 1 {
			t.Fatalf("%s: expected position 1; got %d", tc.in, next)
		}

		if c.Name() != tc.out.Name() || !c.Equal(tc.out) {
			t.Fatalf("%s: expected %s; got %s", tc.in, tc.out, c)
		}
	}
}

func TestBoot(t *testing.T) {
	check(t, "(define (abs x) (if (< x 0) (- 0 x) x))")
}

func TestDeeplyNested(t *testing.T) {
	check(t, `(a (b (c (d 1 2.5 "s" sym))))`)
}

func TestErrors(t *testing.T) {
	for _, tc := range []struct {
		in  string
		msg string
	}{
		{"(a b", "Unbalanced parenthesis"},
		{"((a)", "Unbalanced parenthesis"},
		{")", "Unexpected closing parenthesis"},
		{"1abc", "Invalid number: 1abc"},
		{`\ab`, `Invalid character literal: \ab`},
		{`\0xZZ`, `Invalid character literal: \0xZZ`},
		{"'", "Nothing to quote"},
	} {
		ts, err := lexer.Tokenize(tc.in)
		if err != nil {
			t.Fatalf("%s: unexpected lex error: %v", tc.in, err)
		}

		_, _, err = Parse(ts, 0)
		if !errlang.Is(err, errlang.Syntax) {
			t.Fatalf("%s: expected a syntax error; got %v", tc.in, err)
		}

		if err.Error() != tc.msg {
			t.Fatalf("%s: expected %q; got %q", tc.in, tc.msg, err.Error())
		}
	}
}

func TestLocation(t *testing.T) {
	ts, err := lexer.Tokens("test", "(a)\n  )")
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}

	cs, err := New(ts).All()
	if err == nil {
		t.Fatalf("expected an error; parsed %v", cs)
	}

	expected := "Unexpected closing parenthesis at test:2:3"
	if err.Error() != expected {
		t.Fatalf("expected %q; got %q", expected, err.Error())
	}
}

func TestMultiple(t *testing.T) {
	ts, err := lexer.Tokenize("(define x 1) x 'y")
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}

	c, next, err := Parse(ts, 0)
	if err != nil || next != 5 {
		t.Fatalf("expected define at 0..5; got %v, %d, %v", c, next, err)
	}

	c, next, err = Parse(ts, next)
	if err != nil || next != 6 || !c.Equal(sym.New("x")) {
		t.Fatalf("expected x at 5..6; got %v, %d, %v", c, next, err)
	}

	c, next, err = Parse(ts, next)
	if err != nil || next != 8 {
		t.Fatalf("expected 'y at 6..8; got %v, %d, %v", c, next, err)
	}

	if !c.Equal(list.New(sym.New("quote"), sym.New("y"))) {
		t.Fatalf("expected (quote y); got %v", c)
	}

	_, _, err = Parse(ts, next)
	if err == nil {
		t.Fatal("expected an error parsing past the end of input")
	}
}

func TestNestedStructure(t *testing.T) {
	ts, err := lexer.Tokenize("(1 (2 (3 (4))))")
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}

	c, _, err := Parse(ts, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := list.New(
		num.Int(1),
		list.New(num.Int(2), list.New(num.Int(3), list.New(num.Int(4)))),
	)
	if !c.Equal(expected) {
		t.Fatalf("expected %v; got %v", expected, c)
	}
}

func TestQuote(t *testing.T) {
	check(t, "'(1 2 3)")
	check(t, "''a")
}

func TestSimpleExpressions(t *testing.T) {
	check(t, "(+ 1 2 3)")
	check(t, "()")
	check(t, `(println "hello, world")`)
	check(t, "(λ (x) (* x x))")
}

func check(t *testing.T, s string) {
	t.Helper()

	p := parse(t, s)
	r := parse(t, p)

	if p != r {
		t.Fatalf("Parsed (%s) and reparsed (%s) do not match", p, r)
	}
}

func parse(t *testing.T, s string) string {
	t.Helper()

	ts, err := lexer.Tokenize(s)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}

	cs, err := All(ts)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	ss := make([]string, len(cs))
	for i, c := range cs {
		ss[i] = c.Format(format.Plain)
	}

	return strings.Join(ss, "\n")
}

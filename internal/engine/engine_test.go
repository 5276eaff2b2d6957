package engine

import (
	"bytes"
	"errors"
	"testing"

	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/struct/format"
	"github.com/michaelmacinnis/blisp/internal/common/type/boolean"
	"github.com/michaelmacinnis/blisp/internal/common/type/char"
	"github.com/michaelmacinnis/blisp/internal/common/type/errlang"
	"github.com/michaelmacinnis/blisp/internal/common/type/num"
	"github.com/michaelmacinnis/blisp/internal/common/type/str"
	"github.com/michaelmacinnis/blisp/internal/common/type/sym"
)

func TestArithmetic(t *testing.T) {
	e, _ := setup(t, format.Plain)

	table(t, e, []example{
		{"(+ 1 2 3)", "6"},
		{"(+)", "0"},
		{"(*)", "1"},
		{"(- 5)", "5"},
		{"(- 10 1 2)", "7"},
		{"(/ 10 5)", "2"},
		{"(/ 10 4)", "2.5"},
		{"(/ 1 0.0)", "+Inf"},
		{"(* 1.5 2)", "3.0"},
		{"(+ 1 0.5)", "1.5"},
		{"(mod 7 3)", "1"},
		{"(mod -7 3)", "2"},
		{"(mod 7 -3)", "-2"},
		{"(inc 41)", "42"},
		{"(dec 1.5)", "0.5"},
		{"(* 9223372036854775807 2)", "1.8446744073709552e+19"},
		{"(+ 9223372036854775807 1)", "9.223372036854776e+18"},
	})
}

func TestBegin(t *testing.T) {
	e, out := setup(t, format.Plain)

	table(t, e, []example{
		{"(begin)", "nil"},
		{`(begin (print "a") (print "b") 3)`, "3"},
	})

	if out.String() != "ab" {
		t.Fatalf("expected ab; got %q", out.String())
	}
}

func TestBootScript(t *testing.T) {
	e, _ := setup(t, format.Plain)

	table(t, e, []example{
		{"(abs -5)", "5"},
		{"(abs 5)", "5"},
		{"(zero? 0.0)", "true"},
		{"(even? 4)", "true"},
		{"(odd? 4)", "false"},
		{"(max 2 7)", "7"},
		{"(min 2 7)", "2"},
	})
}

func TestCaseInsensitivity(t *testing.T) {
	e, _ := setup(t, format.Plain)

	table(t, e, []example{
		{"(define Foo 1)", "1"},
		{"foo", "1"},
		{"FOO", "1"},
		{"(DEFINE bar 2)", "2"},
		{"(IF true bar foo)", "2"},
		{"'Foo", "Foo"},
	})
}

func TestClosures(t *testing.T) {
	e, _ := setup(t, format.Plain)

	table(t, e, []example{
		{"(define (sq x) (* x x))", "#<sq (x)>"},
		{"(sq 5)", "25"},
		{"(define x 1)", "1"},
		{"(define (get-x) x)", "#<get-x ()>"},
		{"(define (caller x) (get-x))", "#<caller (x)>"},
		{"(caller 2)", "1"},
		{"(define (adder n) (lambda (x) (+ x n)))", "#<adder (n)>"},
		{"((adder 3) 4)", "7"},
		{"((λ (a b) (list b a)) 1 2)", "(2 1)"},
		{"((lambda () 42))", "42"},
		{"((lambda (n) (if (= n 0) 1 (* n (recur (dec n))))) 5)", "120"},
		{"(define (two) 1 2)", "#<two ()>"},
		{"(two)", "2"},
	})
}

func TestDepth(t *testing.T) {
	e := New(Config{MaxDepth: 50, Out: &bytes.Buffer{}})

	_, err := e.EvalString("(define (loop n) (loop n)) (loop 1)")
	if !errors.Is(err, ErrDepth) {
		t.Fatalf("expected %v; got %v", ErrDepth, err)
	}

	var fatal *Fatal
	if !errors.As(err, &fatal) || errlang.Recoverable(err) {
		t.Fatalf("expected a fatal error; got %v", err)
	}

	if len(e.Stack()) == 0 {
		t.Fatal("expected a stack to be captured")
	}

	table(t, e, []example{{"(+ 1 1)", "2"}})
}

func TestErrors(t *testing.T) {
	e, _ := setup(t, format.Plain)

	for _, tc := range []struct {
		src  string
		kind errlang.Kind
		msg  string
	}{
		{"(/ 10 0)", errlang.DivideByZero, "Division by zero"},
		{"(/ 1.5 0)", errlang.DivideByZero, "Division by zero"},
		{"(define if 5)", errlang.Rebind, "Can't rebind keyword symbol: if"},
		{"(define (f lambda) 1)", errlang.Rebind, "Can't rebind keyword symbol: lambda"},
		{"undefined-name", errlang.Unbound, "Undefined symbol: undefined-name"},
		{"()", errlang.EmptyList, "Empty list"},
		{"(first (list))", errlang.Index, ""},
		{"(last nil)", errlang.Index, ""},
		{"(nth (list 1 2 3) 3)", errlang.Index, ""},
		{"(nth (list 1 2) 1.9)", errlang.Type, "nth index must be an integer: 1.9"},
		{"(reduce + (list))", errlang.Index, ""},
		{"((lambda (x) x))", errlang.Arity, "Argument count mismatch. Expected 1 but got 0"},
		{"(inc)", errlang.Arity, ""},
		{"(if 1 2 3)", errlang.Type, ""},
		{`(+ 1 "2")`, errlang.Type, ""},
		{"(1 2)", errlang.Type, "Unknown operator: 1"},
		{"(filter inc (list 1))", errlang.Type, ""},
		{"(sprintf 1)", errlang.Type, "First argument to sprintf is a format string"},
		{"(range 1 2 0)", errlang.Runtime, ""},
		{"(define (1 x) x)", errlang.Type, ""},
		{"(+ 1", errlang.Syntax, "Unbalanced parenthesis"},
		{"#", errlang.Lex, ""},
	} {
		_, err := e.EvalString(tc.src)
		if !errlang.Is(err, tc.kind) {
			t.Fatalf("%s: expected %v; got %v", tc.src, tc.kind, err)
		}

		if tc.msg != "" && err.Error() != tc.msg {
			t.Fatalf("%s: expected %q; got %q", tc.src, tc.msg, err.Error())
		}
	}

	// The session continues after a language-level error.
	table(t, e, []example{{"(+ 1 2)", "3"}})
}

func TestExit(t *testing.T) {
	code := -1

	e := New(Config{Exit: func(n int) { code = n }, Out: &bytes.Buffer{}})

	if _, err := e.EvalString("(exit 3)"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if code != 3 {
		t.Fatalf("expected exit code 3; got %d", code)
	}

	if _, err := e.EvalString("(exit)"); err != nil || code != 0 {
		t.Fatalf("expected exit code 0; got %d, %v", code, err)
	}
}

func TestExtendedFormat(t *testing.T) {
	e, out := setup(t, format.Extended)

	v, err := e.EvalString(`(println 3 1.5 "s" 'x)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v.Format(format.Extended) != "Symbol: nil" {
		t.Fatalf("unexpected result %s", v.Format(format.Extended))
	}

	expected := "Number: 3 Number: 1.5 s Symbol: x\n"
	if out.String() != expected {
		t.Fatalf("expected %q; got %q", expected, out.String())
	}
}

func TestIf(t *testing.T) {
	e, out := setup(t, format.Plain)

	table(t, e, []example{
		{"(if true 1 2)", "1"},
		{"(if false 1 2)", "2"},
		{`(if true 1 (print "no"))`, "1"},
		{`(if false (print "no") 2)`, "2"},
		{"(if false 1)", "nil"},
		{"(if (< 1 2) 'yes 'no)", "yes"},
	})

	if out.Len() != 0 {
		t.Fatalf("untaken branch printed %q", out.String())
	}
}

func TestLists(t *testing.T) {
	e, _ := setup(t, format.Plain)

	table(t, e, []example{
		{"(list 1 2 3)", "(1 2 3)"},
		{"(nth (list 1 2 3) 1)", "2"},
		{"(nth (list 1 2 3) 1.0)", "2"},
		{"(count (list))", "0"},
		{`(count "héllo")`, "5"},
		{"(first (list 1 2 3))", "1"},
		{"(rest (list 1 2 3))", "(2 3)"},
		{"(rest (list))", "()"},
		{"(last (list 1 2 3))", "3"},
		{"(map inc (list 1 2 3))", "(2 3 4)"},
		{"(filter even? (range 10))", "(0 2 4 6 8)"},
		{"(reduce + (list 1 2 3 4))", "10"},
		{"(reduce + 10 (list))", "10"},
		{"(reduce (lambda (a b) (list a b)) 0 (list 1 2))", "((0 1) 2)"},
		{"(range 5)", "(0 1 2 3 4)"},
		{"(range 2 5)", "(2 3 4)"},
		{"(range 1 10 3)", "(1 4 7)"},
		{"(range 5 0 -2)", "(5 3 1)"},
		{"(range 0)", "()"},
		{"(apply + (list 1 2 3))", "6"},
		{"'(1 (2 (3 (4))))", "(1 (2 (3 (4))))"},
		{"(null? nil)", "true"},
		{"(null? (list))", "true"},
		{"(null? (list 1))", "false"},
		{"(= (list) nil)", "true"},
		{"(= (list 1 (list 2)) '(1 (2)))", "true"},
	})
}

func TestOutput(t *testing.T) {
	e, out := setup(t, format.Plain)

	table(t, e, []example{
		{`(print "a" 1 'x \c)`, "nil"},
		{`(println)`, "nil"},
		{`(printf "%d-%s-%.2f-%c-%t" 1 "a" 2.5 \z true)`, "nil"},
		{`(sprintf "%v and %v" 1.0 (list 1 2))`, `"1 and (1 2)"`},
	})

	expected := "a 1 x 'c'\n1-a-2.50-z-true"
	if out.String() != expected {
		t.Fatalf("expected %q; got %q", expected, out.String())
	}
}

func TestPredicates(t *testing.T) {
	e, _ := setup(t, format.Plain)

	table(t, e, []example{
		{"(symbol? 'a)", "true"},
		{"(symbol? 1)", "false"},
		{"(number? 1.5)", "true"},
		{"(boolean? false)", "true"},
		{`(string? "s")`, "true"},
		{`(char? \s)`, "true"},
		{"(list? (list))", "true"},
		{"(list? 'a)", "false"},
		{"(procedure? inc)", "true"},
		{"(procedure? abs)", "true"},
		{"(procedure? 'inc)", "false"},
		{"(not false)", "true"},
		{`(match "*.go" "main.go")`, "true"},
		{`(match "*.go" "main.c")`, "false"},
	})
}

func TestQuote(t *testing.T) {
	e, _ := setup(t, format.Plain)

	table(t, e, []example{
		{"(quote (a b c))", "(a b c)"},
		{"'(+ 1 2)", "(+ 1 2)"},
		{"''a", "(quote a)"},
		{"(quote undefined-name)", "undefined-name"},
	})
}

func TestRelational(t *testing.T) {
	e, _ := setup(t, format.Plain)

	table(t, e, []example{
		{"(= 1 1.0)", "true"},
		{"(= 1 1 2)", "false"},
		{"(not= 1 2)", "true"},
		{`(= "a" "a")`, "true"},
		{"(< 1 2 3)", "true"},
		{"(< 1 3 2)", "false"},
		{`(< 2 1 "x")`, "false"},
		{"(<= 1 1 2)", "true"},
		{"(> 3 2 1)", "true"},
		{"(>= 1 2)", "false"},
		{"(= (/ 0.0 0.0) 1)", "false"},
		{"(= (/ 0.0 0.0) 42.5)", "false"},
		{"(not= (/ 0.0 0.0) 1)", "true"},
		{"(<= (/ 0.0 0.0) 1)", "false"},
		{"(>= (/ 0.0 0.0) 1)", "false"},
		{"(< 1 (/ 0.0 0.0))", "false"},
	})
}

func TestSelfEvaluation(t *testing.T) {
	e, _ := setup(t, format.Plain)

	for _, c := range []cell.I{
		boolean.True,
		boolean.False,
		num.Int(7),
		num.Float(2.5),
		char.New('x'),
		str.New("hello"),
		sym.Nil,
	} {
		v, err := e.Evaluate(c)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", c, err)
		}

		if v != c {
			t.Fatalf("%v: expected the literal itself; got %v", c, v)
		}
	}
}

type example struct {
	src      string
	expected string
}

func setup(t *testing.T, f format.T) (*T, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}

	return New(Config{
		Exit:   func(int) { t.Fatal("unexpected exit") },
		Format: f,
		Out:    out,
	}), out
}

func table(t *testing.T, e *T, examples []example) {
	t.Helper()

	for _, ex := range examples {
		v, err := e.EvalString(ex.src)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", ex.src, err)
		}

		if actual := v.Format(format.Plain); actual != ex.expected {
			t.Fatalf("%s: expected %s; got %s", ex.src, ex.expected, actual)
		}
	}
}

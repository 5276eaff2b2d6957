// Released under an MIT license. See LICENSE.

package env

import (
	"testing"

	"github.com/michaelmacinnis/blisp/internal/common/type/errlang"
	"github.com/michaelmacinnis/blisp/internal/common/type/num"
)

func expect(t *testing.T, k errlang.Kind, f func()) {
	t.Helper()

	defer func() {
		t.Helper()

		e, ok := recover().(*errlang.T)
		if !ok || e.Kind() != k {
			t.Fatalf("expected %s", k)
		}
	}()

	f()
}

func TestDefineLookup(t *testing.T) {
	e := New(nil)

	e.Define("Foo", num.Int(1))

	if v := e.Lookup("foo"); !v.Equal(num.Int(1)) {
		t.Fatalf("expected 1, got %s", v)
	}

	if v := e.NullableLookup("bar"); v != nil {
		t.Fatalf("expected nil, got %s", v)
	}

	expect(t, errlang.Unbound, func() { e.Lookup("bar") })
}

func TestLocalOnly(t *testing.T) {
	outer := New(nil)
	outer.Define("x", num.Int(1))

	inner := New(outer)

	if inner.NullableLookup("x") != nil {
		t.Fatal("lookup must not search the enclosing env")
	}

	inner.Define("x", num.Int(2))

	if !outer.Lookup("x").Equal(num.Int(1)) {
		t.Fatal("defining in inner must not change outer")
	}

	if inner.Enclosing() != outer {
		t.Fatal("expected outer to be the enclosing env")
	}
}

func TestKeywords(t *testing.T) {
	e := New(nil)

	for _, k := range []string{"define", "IF", "lambda", "λ", "begin", "quote"} {
		k := k
		expect(t, errlang.Rebind, func() { e.Define(k, num.Int(5)) })
	}
}

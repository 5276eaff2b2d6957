// Released under an MIT license. See LICENSE.

package validate

import (
	"testing"

	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/type/errlang"
	"github.com/michaelmacinnis/blisp/internal/common/type/num"
)

func arity(t *testing.T, f func()) {
	t.Helper()

	defer func() {
		e, ok := recover().(*errlang.T)
		if !ok || e.Kind() != errlang.Arity {
			t.Errorf("expected an arity error, got %v", e)
		}
	}()

	f()
}

func TestFixed(t *testing.T) {
	args := []cell.I{num.Int(1), num.Int(2)}

	if v := Fixed("f", args, 1, 2); len(v) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(v))
	}

	arity(t, func() { Fixed("f", args, 1, 1) })
	arity(t, func() { Fixed("f", args, 3, 3) })
}

func TestVariadic(t *testing.T) {
	args := []cell.I{num.Int(1), num.Int(2), num.Int(3)}

	v, rest := Variadic("f", args, 1, 1)
	if len(v) != 1 || len(rest) != 2 {
		t.Fatalf("expected 1 and 2, got %d and %d", len(v), len(rest))
	}

	v, rest = Variadic("f", args[:1], 1, 2)
	if len(v) != 1 || len(rest) != 0 {
		t.Fatalf("expected 1 and 0, got %d and %d", len(v), len(rest))
	}
}

func TestCount(t *testing.T) {
	if s := Count(1, "argument", "s"); s != "1 argument" {
		t.Fatalf("unexpected %q", s)
	}

	if s := Count(2, "argument", "s"); s != "2 arguments" {
		t.Fatalf("unexpected %q", s)
	}
}

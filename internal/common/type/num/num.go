// Released under an MIT license. See LICENSE.

// Package num provides blisp's number type.
//
// A num is either an exact integer or a floating point value. Operations
// on two integers stay exact unless the result cannot be represented
// exactly (an inexact division). Any floating point operand promotes the
// operation, comparisons included, to floating point.
package num

import (
	"math"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/blisp/internal/common/struct/format"
	"github.com/michaelmacinnis/blisp/internal/common/type/errlang"
)

const name = "Number"

// T (num) holds an exact integer or a float64.
type T struct {
	exact bool
	f     float64
	i     int64
}

type num = T

// New creates a new num cell from its literal text.
func New(s string) cell.I {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i)
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}

	panic(errlang.New(errlang.Syntax, "Invalid number: %s", s))
}

// Float creates a floating point num.
func Float(f float64) cell.I {
	return &num{f: f}
}

// Int creates an exact num from the integer i.
func Int(i int64) cell.I {
	return &num{exact: true, i: i}
}

// Equal returns true if c is the same number as the num n.
// Mixed integer and floating point values are compared as floats.
// NaN is not equal to anything.
func (n *num) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	m := To(c)
	if n.exact && m.exact {
		return n.i == m.i
	}

	return n.Float() == m.Float()
}

// Float returns the value of the num n as a float64.
func (n *num) Float() float64 {
	if n.exact {
		return float64(n.i)
	}

	return n.f
}

// Format returns the display form of the num n.
func (n *num) Format(f format.T) string {
	return f.Label(name, n.String())
}

// Int returns the value of the num n truncated to an int64.
func (n *num) Int() int64 {
	if n.exact {
		return n.i
	}

	return int64(n.f)
}

// IsInt returns true if the num n is an exact integer.
func (n *num) IsInt() bool {
	return n.exact
}

// Integral returns true if n has no fractional part.
func (n *num) Integral() bool {
	return n.exact || n.f == math.Trunc(n.f)
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// String returns the text of the num n. Floats always show a fraction.
func (n *num) String() string {
	if n.exact {
		return strconv.FormatInt(n.i, 10)
	}

	s := strconv.FormatFloat(n.f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}

	return s
}

// Functions specific to num.

// Add returns a + b. Integer overflow promotes to floating point.
func Add(a, b *num) cell.I {
	if a.exact && b.exact {
		s := a.i + b.i
		if (a.i^s)&(b.i^s) >= 0 {
			return Int(s)
		}
	}

	return Float(a.Float() + b.Float())
}

// Cmp compares a and b and returns -1, 0, or +1.
// The result is not ok if either is NaN. NaN is unordered.
func Cmp(a, b *num) (n int, ok bool) {
	if a.exact && b.exact {
		switch {
		case a.i < b.i:
			return -1, true
		case a.i > b.i:
			return 1, true
		}

		return 0, true
	}

	x, y := a.Float(), b.Float()

	switch {
	case x < y:
		return -1, true
	case x > y:
		return 1, true
	case x == y:
		return 0, true
	}

	return 0, false
}

// Div returns a / b. Dividing by an exact zero panics.
// Integer division that does not come out even is promoted to floating point.
func Div(a, b *num) cell.I {
	if b.exact && b.i == 0 {
		panic(errlang.New(errlang.DivideByZero, "Division by zero"))
	}

	if a.exact && b.exact && a.i%b.i == 0 {
		return Int(a.i / b.i)
	}

	return Float(a.Float() / b.Float())
}

// Mod returns the floored modulus of a and b after flooring each to an integer.
// The result has the same sign as b.
func Mod(a, b *num) cell.I {
	x, y := floor(a), floor(b)
	if y == 0 {
		panic(errlang.New(errlang.DivideByZero, "Division by zero"))
	}

	r := x % y
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}

	return Int(r)
}

// Mul returns a * b. Integer overflow promotes to floating point.
func Mul(a, b *num) cell.I {
	if a.exact && b.exact {
		p := a.i * b.i

		overflow := a.i != 0 && (p/a.i != b.i || (a.i == -1 && b.i == math.MinInt64))
		if !overflow {
			return Int(p)
		}
	}

	return Float(a.Float() * b.Float())
}

// Sub returns a - b. Integer overflow promotes to floating point.
func Sub(a, b *num) cell.I {
	if a.exact && b.exact {
		d := a.i - b.i
		if (a.i^b.i)&(a.i^d) >= 0 {
			return Int(d)
		}
	}

	return Float(a.Float() - b.Float())
}

// Is returns true if c is a num.
func Is(c cell.I) bool {
	_, ok := c.(*num)

	return ok
}

// To returns a num if c is a num; Otherwise it panics.
func To(c cell.I) *num {
	if t, ok := c.(*num); ok {
		return t
	}

	panic(errlang.New(errlang.Type, "%s cannot be used in a numeric context", c))
}

func floor(n *num) int64 {
	if n.exact {
		return n.i
	}

	return int64(math.Floor(n.f))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)
}

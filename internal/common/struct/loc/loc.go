// Released under an MIT license. See LICENSE.

// Package loc records where in its input a token was found.
package loc

import (
	"fmt"
)

// T (loc) is a position in a named input. Lines and characters count from 1.
type T struct {
	Char int
	Line int
	Name string
}

type loc = T

// String returns the location l in the familiar name:line:char form.
func (l *loc) String() string {
	if l == nil {
		return "unknown"
	}

	return fmt.Sprintf("%s:%d:%d", l.Name, l.Line, l.Char)
}

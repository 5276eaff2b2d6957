// Released under an MIT license. See LICENSE.

// Package format holds the settings that control how values are displayed.
package format

// T (format) is passed to every display call. There is no global state.
type T struct {
	Extended bool // Prefix each value with its type name.
}

type format = T

//nolint:gochecknoglobals
var (
	// Plain is the default display format.
	Plain = T{}

	// Extended labels every value with its type, e.g. "Number: 3".
	Extended = T{Extended: true}
)

// Label prefixes s with the type name n when extended display is on.
func (f format) Label(n, s string) string {
	if f.Extended {
		return n + ": " + s
	}

	return s
}

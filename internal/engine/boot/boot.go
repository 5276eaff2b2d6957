// Released under an MIT license. See LICENSE.

// Package boot provides what is necessary for bootstrapping blisp.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.blisp
var script string //nolint:gochecknoglobals

// Script returns the boot script for blisp.
func Script() string {
	return script
}

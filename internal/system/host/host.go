// Released under an MIT license. See LICENSE.

// Package host describes the system blisp is running on.
package host

import (
	"fmt"
	"runtime"
)

// Banner returns the line printed when the REPL starts.
func Banner(name, version string) string {
	return fmt.Sprintf("%s v%s on %s (%s) version %s",
		name, version, runtime.GOOS, runtime.GOARCH, Release(),
	)
}

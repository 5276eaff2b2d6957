// Released under an MIT license. See LICENSE.

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package host

import (
	"golang.org/x/sys/unix"
)

// Release returns the operating system release.
func Release() string {
	var u unix.Utsname

	if err := unix.Uname(&u); err != nil {
		return "unknown"
	}

	return unix.ByteSliceToString(u.Release[:])
}

// Released under an MIT license. See LICENSE.

//go:build !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd

package host

// Release returns the operating system release.
func Release() string {
	return "unknown"
}

//go:build !unix

package tty

import "errors"

// Size is unsupported on this platform.
func Size(uintptr) (cols, rows int, err error) {
	return 0, 0, errors.New("tty: size probe not supported on this platform")
}

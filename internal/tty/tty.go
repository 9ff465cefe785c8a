// Package tty probes the controlling terminal.
package tty

// Fallback dimensions used when no terminal answers.
const (
	FallbackCols = 80
	FallbackRows = 24
)

// SizeOr returns the terminal size on fd, or the fallback when the probe
// fails or reports a zero side.
func SizeOr(fd uintptr) (cols, rows int) {
	c, r, err := Size(fd)
	if err != nil || c <= 0 || r <= 0 {
		return FallbackCols, FallbackRows
	}
	return c, r
}

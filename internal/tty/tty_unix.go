//go:build unix

package tty

import "golang.org/x/sys/unix"

// Size returns the column and row count of the terminal on fd.
func Size(fd uintptr) (cols, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

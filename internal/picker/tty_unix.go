// ABOUTME: Controlling-terminal access on Unix
// ABOUTME: Stdin is spent on candidate lines, so key events come from /dev/tty

//go:build !windows

package picker

import "os"

func openTTY() (*os.File, error) {
	return os.OpenFile("/dev/tty", os.O_RDONLY, 0)
}

// ABOUTME: Console input access on Windows
// ABOUTME: CONIN$ is the console analogue of /dev/tty

//go:build windows

package picker

import "os"

func openTTY() (*os.File, error) {
	return os.OpenFile("CONIN$", os.O_RDONLY, 0)
}

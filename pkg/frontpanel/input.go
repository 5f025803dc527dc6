package frontpanel

import (
	"os"

	"golang.org/x/term"
)

// WaitKey blocks until the operator presses one key and reports whether it
// was a quit request ('q' or Ctrl-C). Stdin is put in raw mode for the
// read and restored before returning; when stdin is not a terminal (tests,
// pipes) it falls back to a plain one-byte read.
func WaitKey() (key byte, quit bool, err error) {
	fd := int(os.Stdin.Fd())

	if term.IsTerminal(fd) {
		oldState, rawErr := term.MakeRaw(fd)
		if rawErr != nil {
			return 0, false, rawErr
		}
		defer term.Restore(fd, oldState)
	}

	var buf [1]byte
	n, err := os.Stdin.Read(buf[:])
	if err != nil {
		return 0, true, err
	}
	if n == 0 {
		return 0, true, nil
	}

	key = buf[0]
	return key, key == 'q' || key == 0x03, nil
}

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Control characters handled while the terminal is in raw mode.
const (
	keyCtrlC = 0x03
	keyCtrlD = 0x04
	keyCtrlL = 0x0c
)

// ReadKeys puts stdin into raw mode and handles a few terminal niceties:
// ctrl-l clears the screen, ctrl-c and ctrl-d stop the watcher via onExit.
// Does nothing when stdin is not a terminal (e.g. under a supervisor).
// Blocks until stdin closes.
func ReadKeys(onExit func()) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to set raw terminal mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	buf := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(buf); err != nil {
			return nil
		}

		switch buf[0] {
		case keyCtrlC, keyCtrlD:
			term.Restore(fd, oldState)
			onExit()
			return nil
		case keyCtrlL:
			fmt.Print("\x1bc")
		}
	}
}

package editor

import (
	"os"
	"os/exec"
)

// enableRawMode puts the controlling terminal into raw, no-echo,
// read-one mode: every byte typed reaches the reader immediately and
// unprocessed, so the editor decides what to echo and what to treat as
// a control sequence. stty needs its stdin wired to the real controlling
// terminal to know which tty to operate on, not the editor's own input
// reader, which may be wrapping a pipe in tests.
func enableRawMode() error {
	cmd := exec.Command("stty", "raw", "-echo", "min", "1", "time", "0")
	cmd.Stdin = os.Stdin
	return cmd.Run()
}

// disableRawMode restores cooked mode. Called on every exit path from
// the read loop, including errors, so a crash never leaves the user's
// terminal unusable.
func disableRawMode() error {
	cmd := exec.Command("stty", "cooked")
	cmd.Stdin = os.Stdin
	return cmd.Run()
}

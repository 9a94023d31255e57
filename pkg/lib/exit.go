// Package lib holds the handful of process-lifecycle helpers shared
// across goshell's cmd/ subcommands.
package lib

import (
	"fmt"
	"os"
)

// Exit prints err to stderr prefixed with the command name and exits
// the process with code 1. Used for setup failures that happen before
// the REPL or a subcommand has anything meaningful to recover from —
// a bad config file or an unresolvable config directory.
func Exit(err error) {
	fmt.Fprintln(os.Stderr, "goshell:", err)
	os.Exit(1)
}

// Warnf prints a non-fatal warning to stderr, prefixed consistently
// with Exit's fatal messages.
func Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "goshell: "+format+"\n", args...)
}

package editor

// ansi escape sequences the editor writes directly to the terminal
// while drawing and erasing characters in raw mode.
const (
	ansiCRLF           = "\r\n"
	ansiClearLine      = "\r\x1b[K"
	ansiMoveCursorLeft = "\x1b[D"
	ansiBEL            = "\x07"
)

// Package editor implements the raw-mode line reader: a byte-at-a-time
// input loop with TAB completion, history navigation via arrow keys,
// backspace, and line submission.
package editor

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"goshell/internal/history"
	"goshell/internal/trie"
)

// seqState is the three-state escape-sequence recognizer: most bytes
// arrive in Normal; only an arrow-key sequence (ESC [ A/B) advances it.
type seqState int

const (
	seqNormal seqState = iota
	seqESCReceived
	seqBracketReceived
)

// tabContext remembers whether the previous TAB produced a multi-match
// listing, so that this TAB prints it instead of recomputing.
type tabContext struct {
	enabled     bool
	completions []string
}

func (t *tabContext) reset() {
	t.enabled = false
	t.completions = nil
}

// Editor drives one raw-mode read loop against in, echoing and editing
// on out. completions is rebuilt by the caller once per prompt cycle;
// cursor navigates hist without mutating it.
type Editor struct {
	in          *bufio.Reader
	out         io.Writer
	completions *trie.Trie
	cursor      *history.Cursor
	enableRaw   func() error
	disableRaw  func() error
}

// New returns an Editor reading from in and echoing to out, completing
// against completions and navigating hist via a fresh Cursor.
func New(in io.Reader, out io.Writer, completions *trie.Trie, hist *history.History) *Editor {
	return &Editor{
		in:          bufio.NewReader(in),
		out:         out,
		completions: completions,
		cursor:      history.NewCursor(hist),
		enableRaw:   enableRawMode,
		disableRaw:  disableRawMode,
	}
}

// ReadLine runs one raw-mode read cycle to completion: it returns the
// submitted line on Enter, or ok=false on Ctrl-C (the caller should
// re-prompt rather than treat it as EOF). Raw mode is restored before
// returning on every path, including a read error.
func (e *Editor) ReadLine(prompt string) (line string, ok bool, err error) {
	if rawErr := e.enableRaw(); rawErr != nil {
		return "", false, rawErr
	}
	defer e.disableRaw()

	var buf []byte
	var tc tabContext
	state := seqNormal

	for {
		b, readErr := e.in.ReadByte()
		if readErr != nil {
			return "", false, readErr
		}

		if tc.enabled && b != '\t' {
			tc.reset()
		}

		switch {
		case b == '\t' && tc.enabled:
			e.printCompletionList(prompt, tc.completions, string(buf))

		case b == '\t':
			buf, tc = e.tabComplete(prompt, buf)

		case b == '\n' || b == '\r':
			io.WriteString(e.out, ansiCRLF)
			return string(buf), true, nil

		case b == '\x03':
			io.WriteString(e.out, ansiCRLF)
			return "", false, nil

		case b == '\b' || b == '\x7F':
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				io.WriteString(e.out, ansiMoveCursorLeft+" "+ansiMoveCursorLeft)
			}

		case b == 0x1b && state == seqNormal:
			state = seqESCReceived

		case b == '[' && state == seqESCReceived:
			state = seqBracketReceived

		case b == 'A' && state == seqBracketReceived:
			state = seqNormal
			if entry, ok := e.cursor.Previous(); ok {
				buf = []byte(e.redraw(prompt, entry))
			}

		case b == 'B' && state == seqBracketReceived:
			state = seqNormal
			if entry, ok := e.cursor.Next(); ok {
				buf = []byte(e.redraw(prompt, entry))
			} else {
				buf = []byte(e.redraw(prompt, string(buf)))
			}

		default:
			state = seqNormal
			e.out.Write([]byte{b})
			buf = append(buf, b)
		}
	}
}

// tabComplete computes completions of buf as a prefix and applies the
// bell/auto-complete/common-extension rule, returning the (possibly
// rewritten) buffer and the tab context for a following listing TAB.
func (e *Editor) tabComplete(prompt string, buf []byte) ([]byte, tabContext) {
	prefix := string(buf)
	matches := e.completions.Completions(prefix)
	sort.Strings(matches)

	switch len(matches) {
	case 0:
		io.WriteString(e.out, ansiBEL)
		return buf, tabContext{}

	case 1:
		next := matches[0] + " "
		return []byte(e.redraw(prompt, next)), tabContext{}

	default:
		lcp := e.completions.LongestCommonExtension(prefix)
		if lcp == prefix {
			io.WriteString(e.out, ansiBEL)
			return buf, tabContext{enabled: true, completions: matches}
		}
		return []byte(e.redraw(prompt, lcp)), tabContext{enabled: true, completions: matches}
	}
}

// printCompletionList shows the pending multi-match listing, then
// redraws the prompt and the unchanged buffer on a fresh line, matching
// the second-TAB behavior of a real shell's completion menu.
func (e *Editor) printCompletionList(prompt string, completions []string, buf string) {
	io.WriteString(e.out, ansiCRLF+strings.Join(completions, "  ")+"\n\r"+prompt+buf)
}

// redraw clears the current line and reprints prompt+text, returning
// text as the new buffer contents.
func (e *Editor) redraw(prompt, text string) string {
	io.WriteString(e.out, ansiClearLine+prompt+text)
	return text
}

// Package writer routes a stage's stdout/stderr to the terminal, a
// file, or — for a streaming external child — a background worker
// pair that forwards the live process's output while it runs.
package writer

import (
	"io"
	"os"
	"os/exec"
	"sync/atomic"

	"goshell/internal/lexer"
)

// Writer directs output according to a single stage's redirection. A
// Writer's configuration is immutable once constructed; it may be
// shared with background workers without synchronization.
type Writer struct {
	redirection lexer.Redirection
	stdout      io.Writer
	stderr      io.Writer
}

// New builds a Writer for redirection, writing terminal output to
// stdout/stderr when no file redirection applies.
func New(redirection lexer.Redirection, stdout, stderr io.Writer) *Writer {
	return &Writer{redirection: redirection, stdout: stdout, stderr: stderr}
}

// OutputText writes s, plus a trailing newline on the terminal path, as
// stdout data, following the stage's redirection. Intended for a single
// complete value, not a stream of chunks.
func (w *Writer) OutputText(s string) {
	w.writeOnce(true, []byte(s), true)
}

// OutputBytes writes buf verbatim as stdout data, following the
// stage's redirection. A trailing newline is added on the terminal
// path only when buf doesn't already end in one.
func (w *Writer) OutputBytes(buf []byte) {
	w.writeOnce(true, buf, false)
}

// OutputErrorText writes s as stderr data, following the stage's
// redirection.
func (w *Writer) OutputErrorText(s string) {
	w.writeOnce(false, []byte(s), true)
}

// OutputErrorBytes writes buf verbatim as stderr data, following the
// stage's redirection.
func (w *Writer) OutputErrorBytes(buf []byte) {
	w.writeOnce(false, buf, false)
}

// writeOnce implements a single complete-value write: it opens (and, on
// append-mode, newline-separates from prior content) the target file
// fresh for this call. Used for builtins, which produce one value per
// invocation — this is what gives `echo -n hi >> f` run twice the
// inter-invocation newline described in the design.
func (w *Writer) writeOnce(isStdout bool, buf []byte, isText bool) {
	redir := w.redirection
	ownsFile := (isStdout && redir.Kind == lexer.RedirStdout) || (!isStdout && redir.Kind == lexer.RedirStderr)
	touchesOtherFile := (isStdout && redir.Kind == lexer.RedirStderr) || (!isStdout && redir.Kind == lexer.RedirStdout)

	if ownsFile {
		writeFileOnce(redir.Path, redir.Append, buf)
		return
	}
	if touchesOtherFile {
		touchFile(redir.Path)
	}

	dst := w.terminalStream(isStdout)
	dst.Write(buf)
	if isText {
		dst.Write([]byte("\n"))
	} else if len(buf) == 0 || buf[len(buf)-1] != '\n' {
		dst.Write([]byte("\n"))
	}
}

func (w *Writer) terminalStream(isStdout bool) io.Writer {
	if isStdout {
		return w.stdout
	}
	return w.stderr
}

func writeFileOnce(path string, appendMode bool, buf []byte) {
	flags := os.O_WRONLY | os.O_CREATE
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		os.Stderr.WriteString("Error opening file " + path + "\n")
		return
	}
	defer f.Close()

	if appendMode {
		if info, err := f.Stat(); err == nil && info.Size() > 0 {
			f.Write([]byte("\n"))
		}
	}
	f.Write(buf)
}

func touchFile(path string) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return
	}
	f.Close()
}

// StreamChild drains a live child's stdout and stderr through two
// background workers while the caller waits for it to exit, then
// returns the wait error (if any).
//
// The workers are deliberately abandoned rather than joined: on a pipe
// that closes cleanly they exit promptly on their own, but a child that
// leaves its pipe open after exit would otherwise stall the next
// prompt indefinitely. This trades guaranteed flush for liveness.
func (w *Writer) StreamChild(cmd *exec.Cmd, stdout, stderr io.ReadCloser) error {
	redir := w.redirection

	stdoutDst, closeStdout := w.streamDestination(true, redir)
	stderrDst, closeStderr := w.streamDestination(false, redir)
	defer closeStdout()
	defer closeStderr()

	var anyWritten, lastWasLF atomic.Bool
	lastWasLF.Store(true)

	go pump(stdout, stdoutDst, &anyWritten, &lastWasLF)
	go pump(stderr, stderrDst, &anyWritten, &lastWasLF)

	err := cmd.Wait()

	// Only the terminal path needs a synthetic trailing newline — a
	// redirected file just ends with whatever bytes the child wrote.
	if redir.Kind == lexer.RedirNone && anyWritten.Load() && !lastWasLF.Load() {
		w.stdout.Write([]byte("\n"))
	}
	return err
}

// streamDestination opens the destination for one direction of a
// streaming child exactly once — unlike writeOnce, repeated per-chunk
// reopening would corrupt a live stream with spurious newlines and
// truncations. It also touches (but does not write to) a redirection
// target aimed at the *other* stream, matching the one-shot routing
// matrix.
func (w *Writer) streamDestination(isStdout bool, redir lexer.Redirection) (io.Writer, func()) {
	ownsFile := (isStdout && redir.Kind == lexer.RedirStdout) || (!isStdout && redir.Kind == lexer.RedirStderr)
	touchesOtherFile := (isStdout && redir.Kind == lexer.RedirStderr) || (!isStdout && redir.Kind == lexer.RedirStdout)

	if touchesOtherFile {
		touchFile(redir.Path)
	}
	if !ownsFile {
		return w.terminalStream(isStdout), func() {}
	}

	flags := os.O_WRONLY | os.O_CREATE
	if redir.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(redir.Path, flags, 0o644)
	if err != nil {
		os.Stderr.WriteString("Error opening file " + redir.Path + "\n")
		return io.Discard, func() {}
	}
	if redir.Append {
		if info, err := f.Stat(); err == nil && info.Size() > 0 {
			f.Write([]byte("\n"))
		}
	}
	return f, func() { f.Close() }
}

// pump reads fixed-size chunks from r and forwards each verbatim to
// dst, tracking whether anything was written and whether the stream
// ended on a newline.
func pump(r io.ReadCloser, dst io.Writer, anyWritten, lastWasLF *atomic.Bool) {
	defer r.Close()
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			dst.Write(chunk)
			anyWritten.Store(true)
			lastWasLF.Store(chunk[len(chunk)-1] == '\n')
		}
		if err != nil {
			return
		}
	}
}

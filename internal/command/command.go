// Package command defines the stage input/output data model shared by
// the dispatcher, pipeline executor, and writer: what a stage can
// receive as stdin, and what kind of result it can produce.
package command

import (
	"io"
	"os/exec"
)

// InputKind tags which variant of Input is populated.
type InputKind int

const (
	// InputInherit means the stage reads from the shell's own stdin
	// (the terminal, when interactive).
	InputInherit InputKind = iota
	// InputBytes means the stage's stdin is an in-memory buffer,
	// written to the child's stdin pipe from a separate goroutine and
	// then closed; the child may already be running while it is written.
	InputBytes
	// InputPipe means the stage's stdin is the read end of a live OS
	// pipe inherited from the previous stage's running child.
	InputPipe
)

// Input is exactly one of Inherit, an in-memory buffer, or a native OS
// pipe handle, handed to a single stage.
type Input struct {
	Kind  InputKind
	Bytes []byte
	Pipe  io.ReadCloser
}

// Inherit returns the Inherit-input variant.
func Inherit() Input { return Input{Kind: InputInherit} }

// FromBytes wraps buf as a Bytes-input variant.
func FromBytes(buf []byte) Input { return Input{Kind: InputBytes, Bytes: buf} }

// FromPipe wraps an OS pipe read end as a Pipe-input variant.
func FromPipe(r io.ReadCloser) Input { return Input{Kind: InputPipe, Pipe: r} }

// OutputKind tags which variant of Output is populated.
type OutputKind int

const (
	OutputNone OutputKind = iota
	OutputStdoutText
	OutputStdoutBytes
	OutputStderrText
	OutputStream
)

// Output is what a single stage produced: nothing, a builtin's
// materialized text/bytes, or a live external process still running.
type Output struct {
	Kind   OutputKind
	Text   string
	Bytes  []byte
	Cmd    *exec.Cmd
	Stdout io.ReadCloser
	Stderr io.ReadCloser
}

func None() Output                  { return Output{Kind: OutputNone} }
func StdoutText(s string) Output    { return Output{Kind: OutputStdoutText, Text: s} }
func StdoutBytes(b []byte) Output   { return Output{Kind: OutputStdoutBytes, Bytes: b} }
func StderrText(s string) Output    { return Output{Kind: OutputStderrText, Text: s} }

// Stream wraps a spawned, not-yet-waited child process together with
// its stdout/stderr pipe handles.
func Stream(cmd *exec.Cmd, stdout, stderr io.ReadCloser) Output {
	return Output{Kind: OutputStream, Cmd: cmd, Stdout: stdout, Stderr: stderr}
}

// Package pipeline threads stdin between successive pipeline stages,
// dispatches each stage, and decides whether a stage's output should
// feed the next stage or be handed off to the writer.
package pipeline

import (
	"goshell/internal/command"
	"goshell/internal/dispatcher"
	"goshell/internal/lexer"
	"goshell/internal/writer"
)

// UnknownFunc is invoked when a stage's command resolves to Unknown,
// receiving the whole input line passed to Run so the "command not found"
// message can echo the full line rather than just argv[0].
type UnknownFunc func(rawLine string)

// NewWriterFunc builds a fresh writer for a stage's redirection. The
// pipeline asks for one lazily, per stage, only once it knows the
// stage actually needs to emit to the terminal/file rather than pipe.
type NewWriterFunc func(lexer.Redirection) *writer.Writer

// Run executes stages in order against the given raw line (used only
// for unknown-command messages).
func Run(rawLine string, stages []lexer.Stage, newWriter NewWriterFunc, onUnknown UnknownFunc) {
	next := command.Inherit()

	for i, stage := range stages {
		kind, _ := dispatcher.Classify(stage.Argv[0])
		if kind == dispatcher.KindUnknown {
			onUnknown(rawLine)
			next = command.Inherit()
			continue
		}

		out := dispatcher.Execute(stage.Argv, stage.Redirection, next)

		isLast := i == len(stages)-1
		if piped, carry := pipeable(out, stage.Redirection, isLast); piped {
			next = carry
			continue
		}

		route(out, newWriter(stage.Redirection))
		next = command.Inherit()
	}
}

// pipeable decides whether a stage's output can become the next
// stage's stdin, per the design's cancellation rule: redirecting a
// stage's stdout to a file cancels piping for that stage, even though
// a stderr-only redirection does not, since the data it would have
// piped went to a file instead.
func pipeable(out command.Output, redir lexer.Redirection, isLast bool) (bool, command.Input) {
	if isLast || redir.Kind == lexer.RedirStdout {
		return false, command.Input{}
	}

	switch out.Kind {
	case command.OutputStdoutText:
		return true, command.FromBytes([]byte(out.Text))
	case command.OutputStdoutBytes:
		return true, command.FromBytes(out.Bytes)
	case command.OutputStream:
		return true, command.FromPipe(out.Stdout)
	default:
		return false, command.Input{}
	}
}

// route hands a stage's materialized or live-streamed output to w.
// Stream output additionally blocks until the child exits.
func route(out command.Output, w *writer.Writer) {
	switch out.Kind {
	case command.OutputNone:
		return
	case command.OutputStdoutText:
		w.OutputText(out.Text)
	case command.OutputStdoutBytes:
		w.OutputBytes(out.Bytes)
	case command.OutputStderrText:
		w.OutputErrorText(out.Text)
	case command.OutputStream:
		w.StreamChild(out.Cmd, out.Stdout, out.Stderr)
	}
}

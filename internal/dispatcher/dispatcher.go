// Package dispatcher classifies a stage's command name as a builtin or
// an external executable, and runs it: builtins produce a materialized
// text/bytes result, externals are spawned with captured stdout/stderr
// pipes and handed back as a live stream.
package dispatcher

import (
	"os"
	"os/exec"

	"goshell/internal/command"
	"goshell/internal/lexer"
	"goshell/internal/shellpath"
)

// Kind tags which command variant argv[0] resolved to.
type Kind int

const (
	KindEcho Kind = iota
	KindExit
	KindType
	KindPwd
	KindCd
	KindExternal
	KindUnknown
)

// Classify inspects name and reports its Kind plus, for an external
// command, its resolved path on $PATH.
func Classify(name string) (Kind, string) {
	switch name {
	case "echo":
		return KindEcho, ""
	case "exit":
		return KindExit, ""
	case "type":
		return KindType, ""
	case "pwd":
		return KindPwd, ""
	case "cd":
		return KindCd, ""
	default:
		if path, ok := shellpath.Find(name); ok {
			return KindExternal, path
		}
		return KindUnknown, ""
	}
}

// Execute runs one stage's command with the given input, returning its
// output. Unknown commands produce no output; the caller is
// responsible for emitting the "command not found" message, since that
// message echoes the raw input line rather than just argv[0].
func Execute(argv []string, redir lexer.Redirection, in command.Input) command.Output {
	kind, path := Classify(argv[0])
	switch kind {
	case KindEcho:
		return execEcho(argv)
	case KindExit:
		return execExit(argv)
	case KindType:
		return execType(argv)
	case KindPwd:
		return execPwd(argv)
	case KindCd:
		return execCd(argv)
	case KindExternal:
		return execExternal(path, argv, in)
	default:
		return command.None()
	}
}

// execExternal spawns the resolved executable with stdout and stderr
// always captured into pipes — never inherited — so the writer
// controls where they end up. Stdin follows the pipeline's supplied
// CommandInput: inherited from the terminal, an in-memory buffer
// written then closed, or an OS pipe carried over from the previous
// stage's child.
func execExternal(path string, argv []string, in command.Input) command.Output {
	cmd := exec.Command(path, argv[1:]...)

	switch in.Kind {
	case command.InputBytes:
		stdin, err := cmd.StdinPipe()
		if err != nil {
			return command.StderrText(argv[0] + ": failed to execute")
		}
		go func() {
			stdin.Write(in.Bytes)
			stdin.Close()
		}()
	case command.InputPipe:
		cmd.Stdin = in.Pipe
	default:
		cmd.Stdin = os.Stdin
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return command.StderrText(argv[0] + ": failed to execute")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return command.StderrText(argv[0] + ": failed to execute")
	}

	if err := cmd.Start(); err != nil {
		return command.StderrText(argv[0] + ": failed to execute")
	}

	return command.Stream(cmd, stdout, stderr)
}

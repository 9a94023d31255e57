package dispatcher

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"goshell/internal/command"
	"goshell/internal/shellpath"
)

// execEcho joins its arguments with single spaces and always bakes in
// the trailing newline itself (as bytes, not via OutputText's terminal-
// only newline) so a piped `echo` hands the next stage the same bytes a
// terminal would have seen, including the newline. A leading "-n"
// suppresses it.
func execEcho(argv []string) command.Output {
	args := argv[1:]
	noNewline := false
	if len(args) > 0 && args[0] == "-n" {
		noNewline = true
		args = args[1:]
	}

	out := strings.Join(args, " ")
	if !noNewline {
		out += "\n"
	}
	return command.StdoutBytes([]byte(out))
}

// execExit terminates the process directly, since there is no pipeline
// stage left to resume once it runs. With no argument it exits 255;
// with one, it parses the code as an unsigned 8-bit integer.
func execExit(argv []string) command.Output {
	switch len(argv) {
	case 1:
		os.Exit(255)
	case 2:
		code, err := strconv.ParseUint(argv[1], 10, 8)
		if err != nil {
			return command.StderrText("exit: invalid code")
		}
		os.Exit(int(code))
	default:
		return command.StderrText("exit: expected 1 arg at most")
	}
	return command.None()
}

func execType(argv []string) command.Output {
	if len(argv) != 2 {
		return command.StderrText("type: expected 1 arg")
	}
	name := argv[1]
	kind, path := Classify(name)
	switch kind {
	case KindUnknown:
		return command.StderrText(name + ": not found")
	case KindExternal:
		return command.StdoutText(fmt.Sprintf("%s is %s", name, path))
	default:
		return command.StdoutText(fmt.Sprintf("%s is a shell builtin", name))
	}
}

func execPwd(argv []string) command.Output {
	if len(argv) != 1 {
		return command.StderrText("pwd: expected 0 args")
	}
	dir, err := os.Getwd()
	if err != nil {
		return command.StderrText("pwd: " + err.Error())
	}
	return command.StdoutText(dir)
}

// execCd changes the shell's working directory. With no argument it
// goes to $HOME; a leading "~" in an explicit path is expanded against
// $HOME as well.
func execCd(argv []string) command.Output {
	var target string
	switch len(argv) {
	case 1:
		target = "~"
	case 2:
		target = argv[1]
	default:
		return command.StderrText("cd: expected 1 arg at most")
	}

	dest := target
	if strings.HasPrefix(target, "~") {
		dest = shellpath.ExpandTilde(target)
	}

	if err := os.Chdir(dest); err != nil {
		return command.StderrText(fmt.Sprintf("cd: %s: No such file or directory", target))
	}
	return command.None()
}

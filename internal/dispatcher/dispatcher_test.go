package dispatcher

import (
	"os"
	"path/filepath"
	"testing"

	"goshell/internal/command"
	"goshell/internal/lexer"
)

func TestEcho(t *testing.T) {
	out := Execute([]string{"echo", "hello", "world"}, lexer.Redirection{}, command.Inherit())
	if out.Kind != command.OutputStdoutBytes || string(out.Bytes) != "hello world\n" {
		t.Errorf("out = %+v", out)
	}
}

func TestEchoDashNSuppressesNewline(t *testing.T) {
	out := Execute([]string{"echo", "-n", "hi"}, lexer.Redirection{}, command.Inherit())
	if out.Kind != command.OutputStdoutBytes || string(out.Bytes) != "hi" {
		t.Errorf("out = %+v", out)
	}
}

func TestTypeBuiltin(t *testing.T) {
	out := Execute([]string{"type", "echo"}, lexer.Redirection{}, command.Inherit())
	if out.Kind != command.OutputStdoutText || out.Text != "echo is a shell builtin" {
		t.Errorf("out = %+v", out)
	}
}

func TestTypeUnknown(t *testing.T) {
	out := Execute([]string{"type", "definitely-not-a-real-command"}, lexer.Redirection{}, command.Inherit())
	if out.Kind != command.OutputStderrText {
		t.Errorf("out = %+v", out)
	}
}

func TestTypeExternal(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "mytool")
	os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755)
	t.Setenv("PATH", dir)

	out := Execute([]string{"type", "mytool"}, lexer.Redirection{}, command.Inherit())
	if out.Kind != command.OutputStdoutText || out.Text != "mytool is "+exe {
		t.Errorf("out = %+v", out)
	}
}

func TestPwd(t *testing.T) {
	out := Execute([]string{"pwd"}, lexer.Redirection{}, command.Inherit())
	if out.Kind != command.OutputStdoutText {
		t.Errorf("out = %+v", out)
	}
	wd, _ := os.Getwd()
	if out.Text != wd {
		t.Errorf("pwd = %q, want %q", out.Text, wd)
	}
}

func TestCdNoArgGoesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	orig, _ := os.Getwd()
	defer os.Chdir(orig)

	out := Execute([]string{"cd"}, lexer.Redirection{}, command.Inherit())
	if out.Kind != command.OutputNone {
		t.Errorf("out = %+v", out)
	}
	wd, _ := os.Getwd()
	realHome, _ := filepath.EvalSymlinks(home)
	realWd, _ := filepath.EvalSymlinks(wd)
	if realWd != realHome {
		t.Errorf("cwd = %q, want %q", realWd, realHome)
	}
}

func TestCdMissingDirectory(t *testing.T) {
	out := Execute([]string{"cd", "/no/such/directory/at/all"}, lexer.Redirection{}, command.Inherit())
	if out.Kind != command.OutputStderrText {
		t.Errorf("out = %+v", out)
	}
}

func TestExitTooManyArgs(t *testing.T) {
	out := execExit([]string{"exit", "1", "2"})
	if out.Kind != command.OutputStderrText {
		t.Errorf("out = %+v", out)
	}
}

func TestExitInvalidCode(t *testing.T) {
	out := execExit([]string{"exit", "abc"})
	if out.Kind != command.OutputStderrText {
		t.Errorf("out = %+v", out)
	}
}

func TestUnknownCommand(t *testing.T) {
	kind, _ := Classify("definitely-not-a-real-command-xyz")
	if kind != KindUnknown {
		t.Errorf("Classify = %v, want Unknown", kind)
	}
}

func TestExternalCommandStreams(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "greet")
	os.WriteFile(exe, []byte("#!/bin/sh\necho hi\n"), 0o755)
	t.Setenv("PATH", dir)

	out := Execute([]string{"greet"}, lexer.Redirection{}, command.Inherit())
	if out.Kind != command.OutputStream {
		t.Fatalf("out.Kind = %v, want Stream", out.Kind)
	}
	data := make([]byte, 64)
	n, _ := out.Stdout.Read(data)
	out.Cmd.Wait()
	if string(data[:n]) != "hi\n" {
		t.Errorf("stdout = %q", string(data[:n]))
	}
}

package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"goshell/internal/lexer"
)

func TestOutputTextToTerminal(t *testing.T) {
	var out, errw bytes.Buffer
	w := New(lexer.Redirection{}, &out, &errw)
	w.OutputText("hello")
	if out.String() != "hello\n" {
		t.Errorf("out = %q", out.String())
	}
}

func TestOutputBytesNoDoubleNewline(t *testing.T) {
	var out, errw bytes.Buffer
	w := New(lexer.Redirection{}, &out, &errw)
	w.OutputBytes([]byte("hi\n"))
	if out.String() != "hi\n" {
		t.Errorf("out = %q, want single trailing newline", out.String())
	}
}

func TestOutputBytesAddsMissingNewline(t *testing.T) {
	var out, errw bytes.Buffer
	w := New(lexer.Redirection{}, &out, &errw)
	w.OutputBytes([]byte("hi"))
	if out.String() != "hi\n" {
		t.Errorf("out = %q", out.String())
	}
}

func TestStdoutRedirectionGoesToFileNotTerminal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out")
	var out, errw bytes.Buffer
	w := New(lexer.Redirection{Kind: lexer.RedirStdout, Path: path}, &out, &errw)
	w.OutputText("one two")

	if out.Len() != 0 {
		t.Errorf("terminal stdout should be empty, got %q", out.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "one two\n" {
		t.Errorf("file content = %q", string(data))
	}
}

func TestStderrRedirectionStillTouchesFileOnStdoutWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "err.log")
	var out, errw bytes.Buffer
	w := New(lexer.Redirection{Kind: lexer.RedirStderr, Path: path}, &out, &errw)
	w.OutputText("to terminal")

	if out.String() != "to terminal\n" {
		t.Errorf("stdout should still reach the terminal, got %q", out.String())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("stderr redirection target should be touched: %v", err)
	}
}

func TestAppendInjectsNewlineWhenFileNonEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	var out, errw bytes.Buffer

	w1 := New(lexer.Redirection{Kind: lexer.RedirStdout, Path: path, Append: true}, &out, &errw)
	w1.OutputBytes([]byte("hi"))

	w2 := New(lexer.Redirection{Kind: lexer.RedirStdout, Path: path, Append: true}, &out, &errw)
	w2.OutputBytes([]byte("hi"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hi\nhi" {
		t.Errorf("file content = %q, want %q", string(data), "hi\nhi")
	}
}

func TestTruncateOverwritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	if err := os.WriteFile(path, []byte("old content"), 0o644); err != nil {
		t.Fatal(err)
	}
	var out, errw bytes.Buffer
	w := New(lexer.Redirection{Kind: lexer.RedirStdout, Path: path}, &out, &errw)
	w.OutputText("new")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" {
		t.Errorf("file content = %q", string(data))
	}
}

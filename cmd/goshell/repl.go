package main

import (
	"fmt"
	"os"
	"strings"

	"goshell/internal/config"
	"goshell/internal/editor"
	"goshell/internal/history"
	"goshell/internal/lexer"
	"goshell/internal/pipeline"
	"goshell/internal/shellpath"
	"goshell/internal/writer"
	"goshell/pkg/lib"
)

// runREPL drives the read-lex-execute loop until the user submits exit,
// closes stdin, or the editor reports an unrecoverable read error.
func runREPL() error {
	cfg, err := config.Load()
	if err != nil {
		lib.Exit(err)
	}

	histPath, err := cfg.HistoryPath()
	if err != nil {
		lib.Exit(err)
	}
	hist := history.FromFile(histPath)

	for {
		// The completion index is rebuilt once per prompt cycle: cheap
		// relative to a read-and-dispatch cycle, and it keeps TAB
		// completion in sync with a $PATH that changed mid-session.
		completions := shellpath.BuildCompletionIndex()
		ed := editor.New(os.Stdin, os.Stdout, completions, hist)

		line, ok, err := ed.ReadLine(cfg.Prompt)
		if err != nil {
			return err
		}
		if !ok {
			// Ctrl-C: re-prompt rather than treat it as EOF.
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		hist.Push(line)
		if cfg.HistoryAppend {
			history.AppendOne(histPath, line)
		} else {
			hist.Write(histPath, false)
		}

		stages, err := lexer.Lex(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		pipeline.Run(line, stages, func(redir lexer.Redirection) *writer.Writer {
			return writer.New(redir, os.Stdout, os.Stderr)
		}, func(rawLine string) {
			fmt.Fprintln(os.Stdout, rawLine+": command not found")
		})
	}
}

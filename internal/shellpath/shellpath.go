// Package shellpath resolves external commands against $PATH and
// populates the completion index with builtin names and every
// executable reachable on the search path.
package shellpath

import (
	"os"
	"path/filepath"
	"strings"

	"goshell/internal/trie"
)

// Builtins lists the names the dispatcher treats as builtin commands,
// in the fixed order the completion index is seeded with them.
var Builtins = []string{"echo", "exit", "type", "pwd", "cd"}

// Find searches the colon-separated directories of $PATH for an
// executable file named cmd, returning its full path. It reports
// ("", false) if $PATH is unset or no entry resolves.
func Find(cmd string) (string, bool) {
	path := os.Getenv("PATH")
	if path == "" {
		return "", false
	}
	for _, dir := range strings.Split(path, ":") {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, cmd)
		if isExecutableFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode()&0o111 != 0
}

// AllExecutables returns the base name of every executable file found
// across the directories of $PATH. A name may appear once even if
// present in multiple directories.
func AllExecutables() []string {
	path := os.Getenv("PATH")
	if path == "" {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, dir := range strings.Split(path, ":") {
		if dir == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			name := e.Name()
			if seen[name] {
				continue
			}
			full := filepath.Join(dir, name)
			if isExecutableFile(full) {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}

// ExpandTilde expands a leading "~" in path against $HOME. If $HOME is
// unset, path is returned unchanged.
func ExpandTilde(path string) string {
	home := os.Getenv("HOME")
	if home == "" {
		return path
	}
	if !strings.HasPrefix(path, "~") {
		return path
	}
	return home + path[1:]
}

// BuildCompletionIndex populates a fresh trie with every builtin name
// and every executable currently reachable on $PATH. It is rebuilt once
// per prompt cycle so that changes to $PATH between prompts are picked
// up without filesystem watching.
func BuildCompletionIndex() *trie.Trie {
	t := trie.New()
	for _, b := range Builtins {
		t.Insert(b)
	}
	for _, exe := range AllExecutables() {
		t.Insert(exe)
	}
	return t
}

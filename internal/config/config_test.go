package config

import (
	"path/filepath"
	"testing"
)

func TestDirPrefersExplicitEnvVar(t *testing.T) {
	t.Setenv(envConfigDir, "/custom/goshell")
	dir, err := Dir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/custom/goshell" {
		t.Errorf("dir = %q", dir)
	}
}

func TestDirFallsBackToXDG(t *testing.T) {
	t.Setenv(envConfigDir, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	dir, err := Dir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/xdg", "goshell") {
		t.Errorf("dir = %q", dir)
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv(envConfigDir, filepath.Join(home, "nonexistent"))

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prompt != "$ " {
		t.Errorf("prompt = %q", cfg.Prompt)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(envConfigDir, dir)

	want := Config{Prompt: "> ", HistoryFile: "/tmp/h", HistoryAppend: false}
	if err := Save(want); err != nil {
		t.Fatal(err)
	}

	got, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestHistoryPathPrefersExplicitField(t *testing.T) {
	c := Config{HistoryFile: "/explicit/path"}
	p, err := c.HistoryPath()
	if err != nil {
		t.Fatal(err)
	}
	if p != "/explicit/path" {
		t.Errorf("p = %q", p)
	}
}

func TestHistoryPathHonorsHISTFILE(t *testing.T) {
	t.Setenv(envHistoryFile, "/from/histfile")
	c := Config{}
	p, err := c.HistoryPath()
	if err != nil {
		t.Fatal(err)
	}
	if p != "/from/histfile" {
		t.Errorf("p = %q", p)
	}
}

func TestHistoryPathFallsBackToConfigDir(t *testing.T) {
	t.Setenv(envConfigDir, "/cfgdir")
	t.Setenv(envHistoryFile, "")
	c := Config{}
	p, err := c.HistoryPath()
	if err != nil {
		t.Fatal(err)
	}
	if p != filepath.Join("/cfgdir", "history") {
		t.Errorf("p = %q", p)
	}
}

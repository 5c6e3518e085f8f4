package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simonhull/easyid3"
)

// run executes the root command with args and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSetGetDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mp3")

	// set creates the file and its tag from scratch.
	if _, err := run(t, "set", path, "title", "X"); err != nil {
		t.Fatalf("set title failed: %v", err)
	}
	if _, err := run(t, "set", path, "album", "Y"); err != nil {
		t.Fatalf("set album failed: %v", err)
	}

	out, err := run(t, "get", path, "title")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if out != "X\n" {
		t.Errorf("get output = %q, want %q", out, "X\n")
	}

	out, err = run(t, "dump", path)
	if err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	if out != "album=Y\ntitle=X\n" {
		t.Errorf("dump output = %q, want %q", out, "album=Y\ntitle=X\n")
	}
}

func TestDelAndStrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mp3")

	if _, err := run(t, "set", path, "title", "X"); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "set", path, "genre", "Rock"); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "del", path, "genre"); err != nil {
		t.Fatalf("del failed: %v", err)
	}
	out, err := run(t, "keys", path)
	if err != nil {
		t.Fatalf("keys failed: %v", err)
	}
	if out != "title\n" {
		t.Errorf("keys output = %q, want %q", out, "title\n")
	}

	if _, err := run(t, "strip", path); err != nil {
		t.Fatalf("strip failed: %v", err)
	}
	if _, err := run(t, "dump", path); err == nil {
		t.Error("dump after strip should fail: no tag left")
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := run(t, "--version")
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if !strings.Contains(out, easyid3.Version) {
		t.Errorf("version output = %q, want it to contain %q", out, easyid3.Version)
	}
	if !strings.Contains(out, "commit") {
		t.Errorf("version output = %q, want build metadata", out)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mp3")
	if _, err := run(t, "set", path, "title", "X"); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "get", path, "nonexistent"); err == nil {
		t.Error("get on unregistered key should fail")
	}
}

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestViewCmd(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "notes.txt")
	if err := os.WriteFile(path, []byte("alpha\nbeta\ngamma\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := NewViewCmd()
	cmd.SetArgs([]string{path})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("view command error = %v", err)
	}

	got := out.String()
	for _, want := range []string{"notes.txt", "alpha", "1 │", "3 │", "Size:", "Modified:"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestNumberLines(t *testing.T) {
	got := numberLines("first\nsecond\n")
	if !strings.Contains(got, "1 │ first") || !strings.Contains(got, "2 │ second") {
		t.Errorf("numberLines() = %q, missing numbered lines", got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("numberLines() = %q, trailing newline produced an empty numbered line", got)
	}
}

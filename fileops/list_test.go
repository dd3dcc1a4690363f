package fileops

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// listFixture creates a directory with one 5-byte file, one 3-byte file, a
// subdirectory, and a hidden file.
func listFixture(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	os.WriteFile(filepath.Join(tmpDir, "a.txt"), []byte("aaaaa"), 0644)
	os.WriteFile(filepath.Join(tmpDir, "Big.log"), []byte("bbb"), 0644)
	os.Mkdir(filepath.Join(tmpDir, "sub"), 0755)
	os.WriteFile(filepath.Join(tmpDir, "sub", "inner.txt"), []byte("inner"), 0644)
	os.WriteFile(filepath.Join(tmpDir, ".hidden"), []byte("h"), 0644)
	return tmpDir
}

func names(l Listing) []string {
	out := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		out[i] = e.Name
	}
	return out
}

func TestListDir_SortOrders(t *testing.T) {
	tmpDir := listFixture(t)

	tests := []struct {
		name string
		sort SortKey
		want []string
	}{
		{
			// Pure case-insensitive name compare, no dirs-first grouping.
			name: "name sort",
			sort: SortByName,
			want: []string{"a.txt", "Big.log", "sub"},
		},
		{
			// Directories sort as size zero, so sub lands last.
			name: "size sort",
			sort: SortBySize,
			want: []string{"a.txt", "Big.log", "sub"},
		},
		{
			// Directories first, then files grouped by extension.
			name: "type sort",
			sort: SortByType,
			want: []string{"sub", "Big.log", "a.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := ListDir(tmpDir, ListOptions{Sort: tt.sort})
			if err != nil {
				t.Fatalf("ListDir() error = %v", err)
			}
			got := names(l)
			if len(got) != len(tt.want) {
				t.Fatalf("ListDir() entries = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("entry[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestListDir_ModifiedSort(t *testing.T) {
	tmpDir := t.TempDir()
	old := filepath.Join(tmpDir, "old.txt")
	recent := filepath.Join(tmpDir, "recent.txt")
	os.WriteFile(old, []byte("1"), 0644)
	os.WriteFile(recent, []byte("2"), 0644)

	past := time.Now().Add(-24 * time.Hour)
	os.Chtimes(old, past, past)

	l, err := ListDir(tmpDir, ListOptions{Sort: SortByModified})
	if err != nil {
		t.Fatalf("ListDir() error = %v", err)
	}
	got := names(l)
	if got[0] != "recent.txt" || got[1] != "old.txt" {
		t.Errorf("modified sort = %v, want newest first", got)
	}
}

func TestListDir_Hidden(t *testing.T) {
	tmpDir := listFixture(t)

	l, err := ListDir(tmpDir, ListOptions{})
	if err != nil {
		t.Fatalf("ListDir() error = %v", err)
	}
	for _, e := range l.Entries {
		if e.Name == ".hidden" {
			t.Error("hidden entry listed without ShowHidden")
		}
		if e.Name == "." || e.Name == ".." {
			t.Errorf("self-reference %q listed", e.Name)
		}
	}

	l, err = ListDir(tmpDir, ListOptions{ShowHidden: true})
	if err != nil {
		t.Fatalf("ListDir() error = %v", err)
	}
	if len(l.Entries) != 4 {
		t.Errorf("ShowHidden listing has %d entries, want 4", len(l.Entries))
	}
}

func TestListDir_Summary(t *testing.T) {
	tmpDir := listFixture(t)

	l, err := ListDir(tmpDir, ListOptions{})
	if err != nil {
		t.Fatalf("ListDir() error = %v", err)
	}
	dirs, files, total := l.Summary()
	if dirs != 1 || files != 2 {
		t.Errorf("Summary() = %d dirs, %d files, want 1, 2", dirs, files)
	}
	// Directory sizes are excluded; 5 + 3 bytes of file content remain.
	if total != 8 {
		t.Errorf("Summary() total = %d, want 8", total)
	}
}

func TestListDir_Errors(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "f.txt")
	os.WriteFile(file, []byte("x"), 0644)

	if _, err := ListDir(file, ListOptions{}); !errors.Is(err, ErrExpectedDirectory) {
		t.Errorf("ListDir(file) error = %v, want ErrExpectedDirectory", err)
	}
	if _, err := ListDir(filepath.Join(tmpDir, "missing"), ListOptions{}); !os.IsNotExist(err) {
		t.Errorf("ListDir(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestParseSortKey(t *testing.T) {
	for _, valid := range []string{"name", "size", "MODIFIED", "Type"} {
		if _, err := ParseSortKey(valid); err != nil {
			t.Errorf("ParseSortKey(%q) unexpected error = %v", valid, err)
		}
	}
	if _, err := ParseSortKey("owner"); err == nil {
		t.Error("ParseSortKey(owner) expected error, got nil")
	}
}

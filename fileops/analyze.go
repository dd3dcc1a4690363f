package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"
)

// NoExtension is the histogram bucket for files without an extension.
const NoExtension = "no extension"

// topLargest bounds the Report.Largest ranking.
const topLargest = 10

// FileSize pairs a path with its size for the largest-file ranking.
type FileSize struct {
	Path string
	Size int64
}

// ExtensionCount is one row of the histogram view returned by TopExtensions.
type ExtensionCount struct {
	Ext   string
	Count int
}

// Report aggregates an unbounded-depth walk of one subtree. It is built once
// per Analyze call and not updated afterwards.
type Report struct {
	Root           string
	Files          int
	Dirs           int
	TotalSize      int64
	Extensions     map[string]int
	Largest        []FileSize
	OldestModified time.Time
	NewestModified time.Time
}

// Analyze walks every descendant of root and aggregates file and directory
// counts, total size, the extension histogram, and the ten largest files.
// Entries that fail to stat are skipped, counted in neither bucket, and the
// walk continues. The walk itself runs on parallel workers; ordering in the
// output is made deterministic by the path tie-break, never by walk order.
func Analyze(root string) (*Report, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrExpectedDirectory, root)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	r := &Report{Root: abs, Extensions: make(map[string]int)}
	var (
		mu         sync.Mutex
		candidates []FileSize
	)

	conf := fastwalk.Config{Follow: false}
	err = fastwalk.Walk(&conf, root, func(path string, d os.DirEntry, err error) error {
		if err != nil || path == root {
			return nil
		}
		if d.IsDir() {
			mu.Lock()
			r.Dirs++
			mu.Unlock()
			return nil
		}

		info, err := d.Info()
		if err != nil || !info.Mode().IsRegular() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext == "" {
			ext = NoExtension
		}
		mod := info.ModTime()

		mu.Lock()
		r.Files++
		r.TotalSize += info.Size()
		r.Extensions[ext]++
		candidates = append(candidates, FileSize{Path: path, Size: info.Size()})
		if r.OldestModified.IsZero() || mod.Before(r.OldestModified) {
			r.OldestModified = mod
		}
		if mod.After(r.NewestModified) {
			r.NewestModified = mod
		}
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Size != candidates[j].Size {
			return candidates[i].Size > candidates[j].Size
		}
		return candidates[i].Path < candidates[j].Path
	})
	if len(candidates) > topLargest {
		candidates = candidates[:topLargest]
	}
	r.Largest = candidates
	return r, nil
}

// TopExtensions returns up to n histogram buckets ordered by count
// descending, ties by extension ascending. The full histogram stays on the
// Report; this is the reporting view.
func (r *Report) TopExtensions(n int) []ExtensionCount {
	counts := make([]ExtensionCount, 0, len(r.Extensions))
	for ext, count := range r.Extensions {
		counts = append(counts, ExtensionCount{Ext: ext, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Ext < counts[j].Ext
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// AverageSize returns the floor of TotalSize over the file count, or zero
// when the report saw no files.
func (r *Report) AverageSize() int64 {
	if r.Files == 0 {
		return 0
	}
	return r.TotalSize / int64(r.Files)
}

package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SortKey selects the ordering of a Listing.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortBySize     SortKey = "size"
	SortByModified SortKey = "modified"
	SortByType     SortKey = "type"
)

// ParseSortKey maps a --sort flag value onto the SortKey set.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(s)); k {
	case SortByName, SortBySize, SortByModified, SortByType:
		return k, nil
	default:
		return "", fmt.Errorf("unknown sort key %q (want name, size, modified, or type)", s)
	}
}

// ListOptions controls directory enumeration.
type ListOptions struct {
	// ShowHidden includes entries whose name starts with a dot.
	ShowHidden bool
	// Sort selects the ordering; an empty value means SortByName.
	Sort SortKey
}

// Listing is an ordered snapshot of one directory level. It never recurses,
// and never contains the "." or ".." self-references.
type Listing struct {
	Path    string
	Sort    SortKey
	Entries []Entry
}

// ListDir enumerates the immediate children of dir, annotates each with
// metadata, and sorts by the selected key. Children whose metadata cannot be
// read are silently dropped from the listing; this differs from the tree
// walker, which reports them as markers.
func ListDir(dir string, opts ListOptions) (Listing, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return Listing{}, err
	}
	if !info.IsDir() {
		return Listing{}, fmt.Errorf("%w: %s", ErrExpectedDirectory, dir)
	}

	dirents, err := os.ReadDir(dir)
	if err != nil {
		return Listing{}, err
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}

	key := opts.Sort
	if key == "" {
		key = SortByName
	}

	l := Listing{Path: abs, Sort: key}
	for _, d := range dirents {
		if !opts.ShowHidden && strings.HasPrefix(d.Name(), ".") {
			continue
		}
		e := Stat(filepath.Join(dir, d.Name()))
		if e.Failed() {
			continue
		}
		l.Entries = append(l.Entries, e)
	}
	l.sortEntries()
	return l, nil
}

// sortEntries orders the listing by its sort key. Size and modified sort
// descending with case-insensitive name as the stable tie-break; name sort
// compares names alone; type sort puts directories first, then groups files
// by extension.
func (l *Listing) sortEntries() {
	es := l.Entries
	switch l.Sort {
	case SortBySize:
		sort.SliceStable(es, func(i, j int) bool {
			si, sj := sortSize(es[i]), sortSize(es[j])
			if si != sj {
				return si > sj
			}
			return lowerName(es[i]) < lowerName(es[j])
		})
	case SortByModified:
		sort.SliceStable(es, func(i, j int) bool {
			if !es[i].Modified.Equal(es[j].Modified) {
				return es[i].Modified.After(es[j].Modified)
			}
			return lowerName(es[i]) < lowerName(es[j])
		})
	case SortByType:
		sort.SliceStable(es, func(i, j int) bool {
			if es[i].IsDir != es[j].IsDir {
				return es[i].IsDir
			}
			if es[i].Ext != es[j].Ext {
				return es[i].Ext < es[j].Ext
			}
			return lowerName(es[i]) < lowerName(es[j])
		})
	default:
		sort.SliceStable(es, func(i, j int) bool {
			return lowerName(es[i]) < lowerName(es[j])
		})
	}
}

// sortSize treats directories as size zero so size ordering is defined for
// them; their on-disk block size is not meaningful in a listing.
func sortSize(e Entry) int64 {
	if e.IsDir {
		return 0
	}
	return e.Size
}

func lowerName(e Entry) string {
	return strings.ToLower(e.Name)
}

// Summary reports the directory count, file count, and total size of the
// listing. Directory sizes are excluded from the total.
func (l Listing) Summary() (dirs, files int, totalSize int64) {
	for _, e := range l.Entries {
		if e.IsDir {
			dirs++
			continue
		}
		files++
		totalSize += e.Size
	}
	return dirs, files, totalSize
}

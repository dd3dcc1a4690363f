package fileops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultTreeDepth bounds tree expansion when the caller does not choose one.
const DefaultTreeDepth = 3

// Node is one entry of a directory tree. A Node owns its children outright;
// the structure is a strict tree with no back-references or cycles.
type Node struct {
	Name     string
	IsDir    bool
	IsErr    bool // marker for an unreadable subdirectory, not a real entry
	Ext      string
	Children []*Node
}

// BuildTree walks root to maxDepth and returns an owned tree value. Depth is
// counted from zero at the root's children, so entries appear at depths
// strictly below maxDepth and a directory sitting at the boundary is listed
// but not expanded. An unreadable subdirectory produces a single error-marker
// child instead of aborting the walk.
func BuildTree(root string, maxDepth int, showHidden bool) (*Node, error) {
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

	n := &Node{Name: filepath.Base(abs), IsDir: true}
	addChildren(n, root, 0, maxDepth, showHidden)
	return n, nil
}

func addChildren(parent *Node, dir string, depth, maxDepth int, showHidden bool) {
	if depth >= maxDepth {
		return
	}

	dirents, err := os.ReadDir(dir)
	if err != nil {
		parent.Children = append(parent.Children, errorNode(err))
		return
	}

	// Directories before files, case-insensitive alphabetical within each group.
	sort.SliceStable(dirents, func(i, j int) bool {
		if dirents[i].IsDir() != dirents[j].IsDir() {
			return dirents[i].IsDir()
		}
		return strings.ToLower(dirents[i].Name()) < strings.ToLower(dirents[j].Name())
	})

	for _, d := range dirents {
		if !showHidden && strings.HasPrefix(d.Name(), ".") {
			continue
		}
		child := &Node{
			Name:  d.Name(),
			IsDir: d.IsDir(),
			Ext:   strings.ToLower(filepath.Ext(d.Name())),
		}
		parent.Children = append(parent.Children, child)
		if d.IsDir() {
			addChildren(child, filepath.Join(dir, d.Name()), depth+1, maxDepth, showHidden)
		}
	}
}

func errorNode(err error) *Node {
	if errors.Is(err, fs.ErrPermission) {
		return &Node{Name: "permission denied", IsErr: true}
	}
	return &Node{Name: err.Error(), IsErr: true}
}

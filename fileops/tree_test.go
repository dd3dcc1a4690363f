package fileops

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// treeFixture builds root/alpha/beta/deep.txt plus files at the upper levels.
func treeFixture(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	os.MkdirAll(filepath.Join(tmpDir, "alpha", "beta"), 0755)
	os.WriteFile(filepath.Join(tmpDir, "alpha", "beta", "deep.txt"), []byte("d"), 0644)
	os.WriteFile(filepath.Join(tmpDir, "alpha", "mid.txt"), []byte("m"), 0644)
	os.WriteFile(filepath.Join(tmpDir, "zeta.txt"), []byte("z"), 0644)
	os.WriteFile(filepath.Join(tmpDir, ".dotfile"), []byte("."), 0644)
	return tmpDir
}

// nodeDepth returns the maximum depth of any node below root, counting the
// root's children as depth zero.
func nodeDepth(n *Node) int {
	deepest := -1
	for _, c := range n.Children {
		d := nodeDepth(c) + 1
		if d > deepest {
			deepest = d
		}
	}
	return deepest
}

func findChild(n *Node, name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestBuildTree_DepthBound(t *testing.T) {
	tmpDir := treeFixture(t)

	for _, maxDepth := range []int{1, 2, 3, 5} {
		root, err := BuildTree(tmpDir, maxDepth, false)
		if err != nil {
			t.Fatalf("BuildTree() error = %v", err)
		}
		if got := nodeDepth(root); got > maxDepth {
			t.Errorf("maxDepth %d: deepest node at %d", maxDepth, got)
		}
	}
}

func TestBuildTree_BoundaryDirListedNotExpanded(t *testing.T) {
	tmpDir := treeFixture(t)

	root, err := BuildTree(tmpDir, 2, false)
	if err != nil {
		t.Fatalf("BuildTree() error = %v", err)
	}

	alpha := findChild(root, "alpha")
	if alpha == nil {
		t.Fatal("alpha not in tree")
	}
	beta := findChild(alpha, "beta")
	if beta == nil {
		t.Fatal("beta at the depth boundary is missing")
	}
	if len(beta.Children) != 0 {
		t.Errorf("beta expanded past the depth boundary: %d children", len(beta.Children))
	}
}

func TestBuildTree_Ordering(t *testing.T) {
	tmpDir := treeFixture(t)

	root, err := BuildTree(tmpDir, 3, false)
	if err != nil {
		t.Fatalf("BuildTree() error = %v", err)
	}

	// Directories come before files even though "alpha" > "zeta.txt" would
	// not hold under a pure name sort with dirs mixed in.
	if len(root.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(root.Children))
	}
	if root.Children[0].Name != "alpha" || !root.Children[0].IsDir {
		t.Errorf("first child = %q (dir=%v), want directory alpha", root.Children[0].Name, root.Children[0].IsDir)
	}
	if root.Children[1].Name != "zeta.txt" {
		t.Errorf("second child = %q, want zeta.txt", root.Children[1].Name)
	}
}

func TestBuildTree_Hidden(t *testing.T) {
	tmpDir := treeFixture(t)

	root, err := BuildTree(tmpDir, 1, true)
	if err != nil {
		t.Fatalf("BuildTree() error = %v", err)
	}
	if findChild(root, ".dotfile") == nil {
		t.Error("hidden file missing with showHidden")
	}

	root, err = BuildTree(tmpDir, 1, false)
	if err != nil {
		t.Fatalf("BuildTree() error = %v", err)
	}
	if findChild(root, ".dotfile") != nil {
		t.Error("hidden file present without showHidden")
	}
}

func TestBuildTree_Errors(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "f.txt")
	os.WriteFile(file, []byte("x"), 0644)

	if _, err := BuildTree(file, 3, false); !errors.Is(err, ErrExpectedDirectory) {
		t.Errorf("BuildTree(file) error = %v, want ErrExpectedDirectory", err)
	}
	if _, err := BuildTree(filepath.Join(tmpDir, "missing"), 3, false); !os.IsNotExist(err) {
		t.Errorf("BuildTree(missing) error = %v, want os.ErrNotExist", err)
	}
}

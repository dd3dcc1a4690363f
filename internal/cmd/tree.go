package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/fmx-dev/fmx/fileops"
	"github.com/spf13/cobra"
)

// NewTreeCmd creates and returns the tree subcommand for the fmx CLI.
// It renders a depth-bounded directory tree.
func NewTreeCmd() *cobra.Command {
	var (
		path   string
		depth  int
		hidden bool
	)

	cmd := &cobra.Command{
		Use:   "tree [PATH]",
		Short: "Display directory structure as a tree",
		Long: `Display a directory subtree, bounded by --depth.

Directories appear before files at each level, alphabetically within each
group. Directories at the depth boundary are listed but not expanded, and an
unreadable subdirectory shows a single error marker instead of aborting the
walk.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				path = args[0]
			}
			return runTree(cmd, path, depth, hidden)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", ".", "Directory path for tree view")
	cmd.Flags().IntVarP(&depth, "depth", "d", fileops.DefaultTreeDepth, "Maximum tree depth")
	cmd.Flags().BoolVarP(&hidden, "hidden", "a", false, "Show hidden files")

	return cmd
}

func runTree(cmd *cobra.Command, path string, depth int, hidden bool) error {
	out := cmd.OutOrStdout()

	root, err := fileops.BuildTree(path, depth, hidden)
	if err != nil {
		return fmt.Errorf("building tree for %s: %w", path, err)
	}

	fmt.Fprintf(out, "\n%s\n\n", titleStyle.Render(fmt.Sprintf("Directory Tree (depth: %d)", depth)))
	fmt.Fprintln(out, renderTree(root).String())
	return nil
}

func renderTree(n *fileops.Node) *tree.Tree {
	t := tree.Root(dirIcon + " " + dirStyle.Render(n.Name))
	addBranches(t, n)
	return t
}

func addBranches(t *tree.Tree, n *fileops.Node) {
	for _, c := range n.Children {
		switch {
		case c.IsErr:
			t.Child(errorStyle.Render(c.Name))
		case c.IsDir:
			branch := tree.Root(dirIcon + " " + dirStyle.Render(c.Name))
			addBranches(branch, c)
			t.Child(branch)
		default:
			t.Child(fileIcon(c.Ext) + " " + c.Name)
		}
	}
}

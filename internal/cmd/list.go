package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fmx-dev/fmx/fileops"
	"github.com/spf13/cobra"
)

// NewListCmd creates and returns the list subcommand for the fmx CLI.
// It renders one directory level as a grid or a detailed table.
func NewListCmd() *cobra.Command {
	var (
		path    string
		hidden  bool
		sortBy  string
		details bool
	)

	cmd := &cobra.Command{
		Use:   "list [PATH]",
		Short: "List directory contents",
		Long: `List the contents of a directory.

Entries are annotated with size, timestamps, and permissions, and sorted by
a selectable key. With --details a full table is rendered; otherwise entries
appear in a compact grid. A summary line with directory/file counts and the
total file size closes the output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				path = args[0]
			}
			return runList(cmd, path, hidden, sortBy, details)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", ".", "Directory path to list")
	cmd.Flags().BoolVarP(&hidden, "hidden", "a", false, "Show hidden files")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "name", "Sort by field (name, size, modified, type)")
	cmd.Flags().BoolVarP(&details, "details", "l", false, "Show detailed information")

	return cmd
}

func runList(cmd *cobra.Command, path string, hidden bool, sortBy string, details bool) error {
	out := cmd.OutOrStdout()

	key, err := fileops.ParseSortKey(sortBy)
	if err != nil {
		return err
	}

	listing, err := fileops.ListDir(path, fileops.ListOptions{ShowHidden: hidden, Sort: key})
	if err != nil {
		return fmt.Errorf("listing %s: %w", path, err)
	}

	fmt.Fprintf(out, "\n%s\n\n", titleStyle.Render("Contents of "+listing.Path))

	if len(listing.Entries) == 0 {
		fmt.Fprintln(out, warnStyle.Render("Directory is empty"))
		return nil
	}

	if details {
		tbl := newTable("", "Name", "Size", "Modified", "Permissions")
		for _, e := range listing.Entries {
			icon, name, size := dirIcon, dirStyle.Render(e.Name), "-"
			if !e.IsDir {
				icon, name, size = fileIcon(e.Ext), e.Name, formatSize(e.Size)
			}
			tbl.Row(icon, name, size, e.Modified.Format("2006-01-02 15:04"), e.Mode)
		}
		fmt.Fprintln(out, tbl.Render())
	} else {
		fmt.Fprintln(out, renderGrid(listing.Entries))
	}

	dirs, files, total := listing.Summary()
	fmt.Fprintf(out, "\n%s\n", dimStyle.Render(
		fmt.Sprintf("Summary: %d directories, %d files, %s total", dirs, files, formatSize(total))))
	return nil
}

// renderGrid lays entries out three per row.
func renderGrid(entries []fileops.Entry) string {
	const columns = 3
	cell := lipgloss.NewStyle().Width(30)

	var b strings.Builder
	for i, e := range entries {
		label := fileIcon(e.Ext) + " " + e.Name
		if e.IsDir {
			label = dirIcon + " " + dirStyle.Render(e.Name)
		}
		b.WriteString(cell.Render(label))
		if (i+1)%columns == 0 && i != len(entries)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

package cmd

import (
	"github.com/fmx-dev/fmx/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the fmx CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fmx",
		Short: "fmx - a terminal file manager with styled output",
		Long: `fmx is a command-line file manager with styled terminal output.

It lists, inspects, copies, moves, deletes, hashes, archives, extracts, and
analyzes files and directories, rendering results as tables, trees, and
panels.

Use subcommands to perform different operations:
  - list, tree, view, analyze: inspect files and directories
  - copy, move, delete: modify the filesystem (with confirmation prompts)
  - hash, archive, extract: digests and zip/tar archive handling`,
		Version: version.GetFullVersion(),
	}

	groupInspection := "inspection"
	groupOperations := "operations"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupInspection,
		Title: "Inspection Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupOperations,
		Title: "File Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	for _, c := range []*cobra.Command{NewListCmd(), NewTreeCmd(), NewViewCmd(), NewAnalyzeCmd()} {
		c.GroupID = groupInspection
		rootCmd.AddCommand(c)
	}
	for _, c := range []*cobra.Command{NewCopyCmd(), NewMoveCmd(), NewDeleteCmd()} {
		c.GroupID = groupOperations
		rootCmd.AddCommand(c)
	}
	for _, c := range []*cobra.Command{NewHashCmd(), NewArchiveCmd(), NewExtractCmd()} {
		c.GroupID = groupUtilities
		rootCmd.AddCommand(c)
	}

	return rootCmd
}

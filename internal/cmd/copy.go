package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fmx-dev/fmx/fileops"
	"github.com/spf13/cobra"
)

// NewCopyCmd creates and returns the copy subcommand for the fmx CLI.
// It copies a file, or a directory when --recursive is set.
func NewCopyCmd() *cobra.Command {
	var (
		recursive bool
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "copy SOURCE DESTINATION",
		Short: "Copy files or directories",
		Long: `Copy a file or directory.

A file is copied byte for byte, preserving mode and modification time.
Directories require --recursive, and a directory copy replaces an existing
destination rather than merging into it. When the destination exists a
confirmation prompt is shown unless --force is set.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(cmd, args[0], args[1], recursive, force)
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Copy directories recursively")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files without asking")

	return cmd
}

func runCopy(cmd *cobra.Command, source, destination string, recursive, force bool) error {
	out := cmd.OutOrStdout()

	if _, err := os.Stat(source); err != nil {
		return fmt.Errorf("copying %s: %w", source, err)
	}
	if _, err := os.Stat(destination); err == nil && !force {
		prompt := fmt.Sprintf("Destination %q exists. Overwrite?", destination)
		if !confirm(out, bufio.NewReader(cmd.InOrStdin()), prompt) {
			fmt.Fprintln(out, warnStyle.Render("Operation cancelled"))
			return nil
		}
	}

	fmt.Fprintf(out, "Copying: %s → %s\n", source, destination)
	if err := fileops.Copy(source, destination, recursive); err != nil {
		return err
	}
	fmt.Fprintln(out, successStyle.Render("Copy completed successfully"))
	return nil
}

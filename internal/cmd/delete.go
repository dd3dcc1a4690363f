package cmd

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/fmx-dev/fmx/fileops"
	"github.com/spf13/cobra"
)

// NewDeleteCmd creates and returns the delete subcommand for the fmx CLI.
// It deletes each given path independently.
func NewDeleteCmd() *cobra.Command {
	var (
		recursive bool
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "delete PATH...",
		Short: "Delete files or directories",
		Long: `Delete one or more files or directories.

Each path is handled independently: a missing path is a warning, a directory
without --recursive is refused, and a failure on one path never stops the
rest of the batch. Each deletion asks for confirmation unless --force is
set. The command exits nonzero if any path failed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, args, recursive, force)
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Delete directories recursively")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompts")

	return cmd
}

func runDelete(cmd *cobra.Command, paths []string, recursive, force bool) error {
	out := cmd.OutOrStdout()

	targets := paths
	if !force {
		in := bufio.NewReader(cmd.InOrStdin())
		targets = targets[:0:0]
		for _, path := range paths {
			if confirm(out, in, fmt.Sprintf("Delete %q?", path)) {
				targets = append(targets, path)
			} else {
				fmt.Fprintln(out, warnStyle.Render("Skipped: "+path))
			}
		}
	}

	var errs []error
	for _, res := range fileops.Delete(targets, recursive) {
		switch {
		case res.Missing:
			fmt.Fprintln(out, warnStyle.Render("Warning: "+res.Path+" does not exist"))
		case res.Err != nil:
			fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("Error deleting %s: %v", res.Path, res.Err)))
			errs = append(errs, res.Err)
		default:
			fmt.Fprintln(out, successStyle.Render("Deleted: "+res.Path))
		}
	}
	return errors.Join(errs...)
}

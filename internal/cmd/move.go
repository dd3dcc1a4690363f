package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fmx-dev/fmx/fileops"
	"github.com/spf13/cobra"
)

// NewMoveCmd creates and returns the move subcommand for the fmx CLI.
// It renames or relocates a file or directory.
func NewMoveCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "move SOURCE DESTINATION",
		Short: "Move or rename files and directories",
		Long: `Move or rename a file or directory.

Rename is attempted first; a move across devices degrades to copy followed
by removal of the original. When the destination exists a confirmation
prompt is shown unless --force is set.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMove(cmd, args[0], args[1], force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing destination without asking")

	return cmd
}

func runMove(cmd *cobra.Command, source, destination string, force bool) error {
	out := cmd.OutOrStdout()

	if _, err := os.Stat(source); err != nil {
		return fmt.Errorf("moving %s: %w", source, err)
	}
	if _, err := os.Stat(destination); err == nil && !force {
		prompt := fmt.Sprintf("Destination %q exists. Overwrite?", destination)
		if !confirm(out, bufio.NewReader(cmd.InOrStdin()), prompt) {
			fmt.Fprintln(out, warnStyle.Render("Operation cancelled"))
			return nil
		}
	}

	fmt.Fprintf(out, "Moving: %s → %s\n", source, destination)
	if err := fileops.Move(source, destination); err != nil {
		return err
	}
	fmt.Fprintln(out, successStyle.Render("Move completed successfully"))
	return nil
}

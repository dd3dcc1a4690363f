package cmd

import (
	"errors"
	"fmt"

	"github.com/fmx-dev/fmx/fileops"
	"github.com/spf13/cobra"
)

// NewArchiveCmd creates and returns the archive subcommand for the fmx CLI.
// It bundles input paths into a zip or tar-family archive.
func NewArchiveCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "archive ARCHIVE FILE...",
		Short: "Create archives from files and directories",
		Long: `Create an archive from one or more input paths.

A file is stored under its base name; a directory is walked and stored with
its own name as the top-level entry. Inputs that do not exist are skipped
with a warning.

The format is taken from the archive filename suffix (.zip, .tar, .tar.gz,
.tgz) and can be forced with --format.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArchive(cmd, args[0], args[1:], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Archive format (zip, tar, tar.gz)")

	return cmd
}

func runArchive(cmd *cobra.Command, archivePath string, inputs []string, format string) error {
	out := cmd.OutOrStdout()

	var f fileops.Format
	var err error
	if format != "" {
		f, err = fileops.ParseFormat(format)
	} else {
		f, err = fileops.DetectFormat(archivePath)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Creating %s archive: %s\n", f, archivePath)

	results, err := fileops.Create(archivePath, f, inputs)
	var errs []error
	for _, res := range results {
		switch {
		case res.Missing:
			fmt.Fprintln(out, warnStyle.Render("  Skipped: "+res.Path+" (not found)"))
		case res.Err != nil:
			fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("  Failed: %s: %v", res.Path, res.Err)))
			errs = append(errs, res.Err)
		default:
			fmt.Fprintln(out, successStyle.Render("  Added: "+res.Path))
		}
	}
	if err != nil {
		return fmt.Errorf("creating %s: %w", archivePath, err)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	fmt.Fprintln(out, successStyle.Render("Archive created: "+archivePath))
	return nil
}

package cmd

import (
	"fmt"

	"github.com/fmx-dev/fmx/fileops"
	"github.com/spf13/cobra"
)

// NewExtractCmd creates and returns the extract subcommand for the fmx CLI.
// It unpacks a zip or tar-family archive, or lists its contents.
func NewExtractCmd() *cobra.Command {
	var (
		destination string
		listOnly    bool
	)

	cmd := &cobra.Command{
		Use:   "extract ARCHIVE",
		Short: "Extract archives",
		Long: `Extract an archive into a destination directory.

The format is detected from the filename suffix (.zip, .tar, .tar.gz, .tgz)
and the destination is created if it does not exist. With --list the
archive's contents are printed instead of extracted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if listOnly {
				return runArchiveList(cmd, args[0])
			}
			return runExtract(cmd, args[0], destination)
		},
	}

	cmd.Flags().StringVarP(&destination, "destination", "d", ".", "Extraction destination")
	cmd.Flags().BoolVar(&listOnly, "list", false, "List archive contents without extracting")

	return cmd
}

func runExtract(cmd *cobra.Command, archivePath, destination string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Extracting: %s → %s\n", archivePath, destination)
	if err := fileops.Extract(archivePath, destination); err != nil {
		return fmt.Errorf("extracting %s: %w", archivePath, err)
	}
	fmt.Fprintln(out, successStyle.Render("Extraction completed successfully"))
	return nil
}

func runArchiveList(cmd *cobra.Command, archivePath string) error {
	out := cmd.OutOrStdout()

	entries, err := fileops.ListArchive(archivePath)
	if err != nil {
		return fmt.Errorf("listing %s: %w", archivePath, err)
	}

	tbl := newTable("Name", "Size")
	for _, e := range entries {
		size := "-"
		if !e.IsDir {
			size = formatSize(e.Size)
		}
		tbl.Row(e.Name, size)
	}
	fmt.Fprintln(out, tbl.Render())
	fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("%d entries", len(entries))))
	return nil
}

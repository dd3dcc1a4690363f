package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fmx-dev/fmx/fileops"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// topExtensionsShown bounds the extension table in the analyze output. The
// full histogram stays on the report.
const topExtensionsShown = 15

// NewAnalyzeCmd creates and returns the analyze subcommand for the fmx CLI.
// It aggregates statistics over a full directory subtree.
func NewAnalyzeCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "analyze [PATH]",
		Short: "Analyze directory statistics",
		Long: `Walk a directory subtree and report aggregate statistics.

The report covers file and directory counts, total and average size, the
distribution of file extensions, and the ten largest files. Entries that
cannot be read are skipped and the walk continues.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				path = args[0]
			}
			return runAnalyze(cmd, path)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", ".", "Directory to analyze")

	return cmd
}

func runAnalyze(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()

	spinner := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("analyzing"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				spinner.Add(1)
			}
		}
	}()

	report, err := fileops.Analyze(path)
	close(done)
	spinner.Finish()
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", path, err)
	}

	fmt.Fprintf(out, "\n%s\n\n", titleStyle.Render("Analysis of "+report.Root))

	summary := newTable("Metric", "Value")
	summary.Row("Total Directories", fmt.Sprintf("%d", report.Dirs))
	summary.Row("Total Files", fmt.Sprintf("%d", report.Files))
	summary.Row("Total Size", formatSize(report.TotalSize))
	summary.Row("Average File Size", formatSize(report.AverageSize()))
	if !report.OldestModified.IsZero() {
		summary.Row("Oldest File", report.OldestModified.Format("2006-01-02 15:04"))
		summary.Row("Newest File", report.NewestModified.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(out, summary.Render())

	if top := report.TopExtensions(topExtensionsShown); len(top) > 0 {
		types := newTable("Extension", "Count", "Percentage")
		for _, ec := range top {
			pct := float64(ec.Count) / float64(report.Files) * 100
			types.Row(ec.Ext, fmt.Sprintf("%d", ec.Count), fmt.Sprintf("%.1f%%", pct))
		}
		fmt.Fprintln(out, types.Render())
	}

	if len(report.Largest) > 0 {
		largest := newTable("File", "Size")
		for _, fs := range report.Largest {
			name := fs.Path
			if rel, err := filepath.Rel(report.Root, fs.Path); err == nil {
				name = rel
			}
			largest.Row(name, formatSize(fs.Size))
		}
		fmt.Fprintln(out, largest.Render())
	}
	return nil
}

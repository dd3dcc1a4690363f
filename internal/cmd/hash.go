package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fmx-dev/fmx/fileops"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// NewHashCmd creates and returns the hash subcommand for the fmx CLI.
// It computes a streaming digest of a single file.
func NewHashCmd() *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "hash FILE",
		Short: "Calculate a file hash",
		Long: `Calculate the digest of a file with a selectable algorithm.

The file is streamed in fixed-size chunks, so memory use stays bounded for
any file size. Supported algorithms: md5, sha1, sha256, sha512.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(cmd, args[0], algorithm)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "md5", "Hash algorithm (md5, sha1, sha256, sha512)")

	return cmd
}

func runHash(cmd *cobra.Command, path, algorithm string) error {
	out := cmd.OutOrStdout()

	alg, err := fileops.ParseAlgorithm(algorithm)
	if err != nil {
		return err
	}

	entry := fileops.Stat(path)
	if entry.Failed() {
		return fmt.Errorf("hashing %s: %s", path, entry.Err)
	}
	if entry.IsDir {
		return fmt.Errorf("%w: %s", fileops.ErrExpectedFile, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	bar := progressbar.NewOptions64(entry.Size,
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("hashing"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	)
	digest, err := fileops.Hash(io.TeeReader(file, bar), alg)
	bar.Finish()
	if err != nil {
		return fmt.Errorf("hashing %s: %w", path, err)
	}

	label := strings.ToUpper(string(alg))
	content := fmt.Sprintf("File: %s\nSize: %s\n%s: %s",
		entry.Name, formatSize(entry.Size), label, successStyle.Render(digest))
	fmt.Fprintln(out, panel("File Hash ("+label+")", content))
	return nil
}

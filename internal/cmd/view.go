package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/fmx-dev/fmx/fileops"
	"github.com/spf13/cobra"
)

// NewViewCmd creates and returns the view subcommand for the fmx CLI.
// It shows the first lines of a file with syntax highlighting.
func NewViewCmd() *cobra.Command {
	var (
		lines  int
		syntax string
	)

	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "View file contents with syntax highlighting",
		Long: `View the first lines of a file inside a highlighted panel.

The language is detected from the filename and can be overridden with
--syntax. Binary-looking or unknown content falls back to plain text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args[0], lines, syntax)
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 10, "Number of lines to display")
	cmd.Flags().StringVarP(&syntax, "syntax", "s", "", "Syntax highlighting language override")

	return cmd
}

func runView(cmd *cobra.Command, path string, lines int, syntax string) error {
	out := cmd.OutOrStdout()

	entry := fileops.Stat(path)
	if entry.Failed() {
		return fmt.Errorf("viewing %s: %s", path, entry.Err)
	}
	if !entry.IsFile {
		return fmt.Errorf("%w: %s", fileops.ErrExpectedFile, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	content := string(raw)
	allLines := strings.Split(content, "\n")
	truncated := lines < len(allLines)
	if truncated {
		content = strings.Join(allLines[:lines], "\n")
	}

	highlighted, err := highlight(content, filepath.Base(path), syntax)
	if err != nil {
		highlighted = content
	}

	title := entry.Name
	if truncated {
		title = fmt.Sprintf("%s (first %d lines)", entry.Name, lines)
	}
	fmt.Fprintln(out, panel(title, numberLines(highlighted)))
	fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("Size: %s | Modified: %s | Type: %s",
		formatSize(entry.Size), entry.Modified.Format("2006-01-02 15:04"), entry.ContentType)))
	if truncated {
		fmt.Fprintln(out, dimStyle.Render(
			fmt.Sprintf("... showing first %d of %d lines", lines, len(allLines))))
	}
	return nil
}

// numberLines prefixes each line with a right-aligned line number in a dim
// gutter, leaving the highlighted text itself untouched.
func numberLines(s string) string {
	s = strings.TrimSuffix(s, "\n")
	split := strings.Split(s, "\n")
	width := len(strconv.Itoa(len(split)))

	var b strings.Builder
	for i, line := range split {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(dimStyle.Render(fmt.Sprintf("%*d │ ", width, i+1)))
		b.WriteString(line)
	}
	return b.String()
}

// highlight renders source through chroma, picking the lexer from the
// override name when given, otherwise from the filename.
func highlight(source, filename, override string) (string, error) {
	lexer := lexers.Match(filename)
	if override != "" {
		if l := lexers.Get(override); l != nil {
			lexer = l
		}
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, it); err != nil {
		return "", err
	}
	return buf.String(), nil
}

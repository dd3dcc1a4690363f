package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// confirm asks a yes/no question on w and reads the answer from r. Anything
// other than an explicit "y" or "yes" declines, including a read failure on
// a closed or non-interactive input.
//
// Callers that prompt more than once per invocation must share a single
// bufio.Reader across the calls: wrapping the raw input again would discard
// whatever the previous wrapper had buffered past its answer.
func confirm(w io.Writer, r *bufio.Reader, prompt string) bool {
	fmt.Fprintf(w, "%s [y/N]: ", prompt)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

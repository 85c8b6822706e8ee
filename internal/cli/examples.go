// internal/cli/examples.go
package cli

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK signals that the user asked for the quickstart
// examples; the caller should print them and exit 0.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples writes a short quickstart for name to out.
func PrintExamples(out io.Writer, name string) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s — quickstart\n\n", name)
	_, _ = fmt.Fprintf(out, "  # Annotate an evidence stream with the default thresholds:\n")
	_, _ = fmt.Fprintf(out, "  %s evidence.tsv\n\n", name)
	_, _ = fmt.Fprintf(out, "  # Gzipped evidence on STDIN, one JSON object per site:\n")
	_, _ = fmt.Fprintf(out, "  zcat evidence.tsv.gz | %s -o jsonl -\n\n", name)
	_, _ = fmt.Fprintf(out, "  # Flag over-covered and strand-biased sites:\n")
	_, _ = fmt.Fprintf(out, "  %s --max-depth 500 --max-sb 10 evidence.tsv\n", name)
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}

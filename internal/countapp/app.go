// Package countapp is the countfastabases entrypoint: tab-delimited
// known and total base counts per contig, with a final total line.
package countapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"varanno/internal/fastacount"
	"varanno/internal/version"
	"varanno/internal/writers"
)

func usage(w io.Writer) {
	fmt.Fprintln(w, "countfastabases - count bases in FASTA input")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "usage:")
	fmt.Fprintln(w, "  countfastabases fasta_file1[.gz] [[fasta_file2]...]")
	fmt.Fprintln(w, "  countfastabases < fasta_file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Prints one 'contig<TAB>known<TAB>total' line per contig and a")
	fmt.Fprintln(w, "final total line, where known={ACGTacgt}.")
}

// RunContext runs the counter over argv (files, or stdin when empty).
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	files := make([]string, 0, len(argv))
	for _, a := range argv {
		switch a {
		case "-h", "--help":
			usage(outw)
			return 0
		case "-v", "--version":
			fmt.Fprintf(outw, "countfastabases version %s\n", version.Version)
			return 0
		default:
			files = append(files, a)
		}
	}
	if len(files) == 0 {
		files = []string{"-"}
	}

	var all []fastacount.ContigCount
	for _, f := range files {
		counts, err := fastacount.CountPath(ctx, f)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return 130
			}
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		all = append(all, counts...)
	}

	for _, c := range all {
		if _, err := fmt.Fprintf(outw, "%s\t%d\t%d\n", c.Name, c.Known, c.Total); err != nil {
			return flushCode(err, stderr)
		}
	}
	known, total := fastacount.Totals(all)
	if _, err := fmt.Fprintf(outw, "total\t%d\t%d\n", known, total); err != nil {
		return flushCode(err, stderr)
	}
	return flushCode(outw.Flush(), stderr)
}

func flushCode(err error, stderr io.Writer) int {
	if err == nil || writers.IsBrokenPipe(err) {
		return 0
	}
	_, _ = fmt.Fprintln(stderr, err)
	return 3
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

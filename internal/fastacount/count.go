// Package fastacount counts known reference bases in FASTA input.
// Known bases are ACGT in either case; everything else (N, IUPAC
// ambiguity codes, gaps) only counts toward the total.
package fastacount

import (
	"context"
	"io"

	"varanno-core/fasta"
)

var isBase = [256]bool{
	'A': true, 'C': true, 'G': true, 'T': true,
	'a': true, 'c': true, 'g': true, 't': true,
}

// ContigCount is the per-contig tally.
type ContigCount struct {
	Name  string
	Known uint64
	Total uint64
}

// CountReader tallies known/total bases per contig from r.
func CountReader(ctx context.Context, r io.Reader) ([]ContigCount, error) {
	var out []ContigCount
	err := fasta.ScanCtx(ctx, r,
		func(id string) error {
			out = append(out, ContigCount{Name: id})
			return nil
		},
		func(line []byte) error {
			if len(out) == 0 {
				// Sequence before any header; count it under an
				// unnamed contig like a headerless stream.
				out = append(out, ContigCount{Name: ""})
			}
			c := &out[len(out)-1]
			c.Total += uint64(len(line))
			for _, b := range line {
				if isBase[b] {
					c.Known++
				}
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CountPath opens path (stdin/gzip aware) and tallies it.
func CountPath(ctx context.Context, path string) ([]ContigCount, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return CountReader(ctx, rc)
}

// Totals sums the per-contig tallies.
func Totals(list []ContigCount) (known, total uint64) {
	for _, c := range list {
		known += c.Known
		total += c.Total
	}
	return known, total
}

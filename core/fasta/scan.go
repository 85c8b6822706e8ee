// Package fasta streams FASTA input line by line without buffering
// whole records, which keeps base-counting memory flat regardless of
// contig size.
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// ScanCtx scans FASTA from r and calls onHeader for each record header
// (the ID token, without '>') and onSeq for each sequence line (already
// whitespace-trimmed, possibly empty lines skipped). It is cancelable
// between lines. A non-nil error from either callback stops the scan.
func ScanCtx(ctx context.Context, r io.Reader, onHeader func(id string) error, onSeq func(line []byte) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := onHeader(parseHeaderID(line[1:])); err != nil {
				return err
			}
			continue
		}
		if err := onSeq(bytes.TrimSpace(line)); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return nil
}

// ScanPathCtx opens path (stdin/gzip aware) and scans it with ScanCtx.
func ScanPathCtx(ctx context.Context, path string, onHeader func(id string) error, onSeq func(line []byte) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return ScanCtx(ctx, rc, onHeader, onSeq)
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}

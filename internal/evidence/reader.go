// Package evidence streams per-position pileup evidence rows.
//
// Wire format is tab-separated, one position per line, strictly
// ascending:
//
//	pos	ref	calls	gqx	sb
//
// calls is the ordered string of observed bases ("." for none); gqx and
// sb are optional trailing columns ("." for missing). Lines starting
// with '#' are skipped.
package evidence

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"varanno-core/pileup"
)

// Row is one position's evidence.
type Row struct {
	Pos   int64
	Ref   pileup.BaseID
	Calls []pileup.Call

	GQX    float64
	HasGQX bool
	SB     float64
	HasSB  bool
}

// Info returns the ordered pileup for the row.
func (r Row) Info() pileup.PosInfo { return pileup.PosInfo{Calls: r.Calls} }

// ForEachRow scans evidence rows from r and calls emit for each one,
// enforcing strictly ascending positions. Cancelable between lines.
func ForEachRow(ctx context.Context, r io.Reader, emit func(Row) error) error {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, 16*1024*1024)

	lineNo := 0
	var lastPos int64
	havePos := false

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		row, err := parseRow(line)
		if err != nil {
			return fmt.Errorf("evidence line %d: %w", lineNo, err)
		}
		if havePos && row.Pos <= lastPos {
			return fmt.Errorf("evidence line %d: position %d not ascending (previous %d)", lineNo, row.Pos, lastPos)
		}
		lastPos, havePos = row.Pos, true
		if err := emit(row); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("evidence scan: %w", err)
	}
	return nil
}

// ForEachRowPath opens path (stdin/gzip aware) and scans it.
func ForEachRowPath(ctx context.Context, path string, emit func(Row) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return ForEachRow(ctx, rc, emit)
}

func parseRow(line string) (Row, error) {
	f := strings.Split(line, "\t")
	if len(f) < 2 {
		return Row{}, fmt.Errorf("want at least pos and ref, got %d fields", len(f))
	}
	pos, err := strconv.ParseInt(f[0], 10, 64)
	if err != nil {
		return Row{}, fmt.Errorf("bad position %q: %w", f[0], err)
	}
	if len(f[1]) != 1 {
		return Row{}, fmt.Errorf("bad ref allele %q", f[1])
	}
	row := Row{Pos: pos, Ref: pileup.BaseFromByte(f[1][0])}

	if len(f) > 2 && f[2] != "." {
		row.Calls = make([]pileup.Call, 0, len(f[2]))
		for i := 0; i < len(f[2]); i++ {
			row.Calls = append(row.Calls, pileup.Call{Base: pileup.BaseFromByte(f[2][i])})
		}
	}
	if len(f) > 3 && f[3] != "." {
		v, err := strconv.ParseFloat(f[3], 64)
		if err != nil {
			return Row{}, fmt.Errorf("bad gqx %q: %w", f[3], err)
		}
		row.GQX, row.HasGQX = v, true
	}
	if len(f) > 4 && f[4] != "." {
		v, err := strconv.ParseFloat(f[4], 64)
		if err != nil {
			return Row{}, fmt.Errorf("bad sb %q: %w", f[4], err)
		}
		row.SB, row.HasSB = v, true
	}
	return row, nil
}

package output

import (
	"fmt"
	"io"

	"varanno-core/gvcf"

	"varanno/internal/annotator"
)

func writeRow(w io.Writer, s annotator.Site) error {
	gt := "."
	if s.Smod.ModifiedGT != gvcf.GTNone {
		gt = s.Smod.ModifiedGT.Label()
	}
	_, err := fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%t\t%s\t%s\n",
		s.Pos, s.Ref, s.Depth, s.UsedDepth, s.AllRef,
		s.Smod.Filters.EncodeFilters(), gt)
	return err
}

// StreamText streams sites from a channel as TSV rows.
func StreamText(w io.Writer, in <-chan annotator.Site, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for s := range in {
		if err := writeRow(w, s); err != nil {
			return err
		}
	}
	return nil
}

// WriteText writes a slice of sites as TSV rows (parity with streaming).
func WriteText(w io.Writer, list []annotator.Site, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, s := range list {
		if err := writeRow(w, s); err != nil {
			return err
		}
	}
	return nil
}

package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"varanno/internal/annotator"
	"varanno/internal/jsonlutil"
	"varanno/internal/output"
)

// StartSiteWriter spins up a writer goroutine for annotated sites.
// Formats: text (streaming TSV), json (buffered array), jsonl
// (streaming, one object per line).
func StartSiteWriter(out io.Writer, format string, header bool, bufSize int) (chan<- annotator.Site, <-chan error) {
	if format == "jsonl" {
		return jsonlutil.Start[annotator.Site](out, bufSize,
			func(enc *json.Encoder, s annotator.Site) error {
				return enc.Encode(output.ToAPI(s))
			},
			IsBrokenPipe,
		)
	}

	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan annotator.Site, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case "json":
			var buf []annotator.Site
			for s := range in {
				buf = append(buf, s)
			}
			err = output.WriteJSON(out, buf)

		case "text":
			err = output.StreamText(out, in, header)

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		// Drain so producers never block on an early writer failure.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}

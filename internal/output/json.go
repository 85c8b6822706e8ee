package output

import (
	"io"

	"varanno/internal/annotator"
	"varanno/internal/jsonutil"
	"varanno/pkg/api"
)

// WriteJSON writes all sites as one indented JSON array (v1 schema).
func WriteJSON(w io.Writer, list []annotator.Site) error {
	rows := make([]api.SiteV1, 0, len(list))
	for _, s := range list {
		rows = append(rows, ToAPI(s))
	}
	return jsonutil.EncodePretty(w, rows)
}

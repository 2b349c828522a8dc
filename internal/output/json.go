package output

import (
	"encoding/json"
	"io"

	"prdesign/pkg/api"
)

// WriteJSON writes a single JSON array of v1 reports (pretty-indented).
func WriteJSON(w io.Writer, list []api.ReportV1) error {
	if list == nil {
		list = []api.ReportV1{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

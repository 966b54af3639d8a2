package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"docscan/internal/scan"
)

// csvHeader names the exported fields, one column per match-record field
// shown to the user.
var csvHeader = []string{"document", "page", "keyword", "context"}

// WriteCSV serializes the raw table view as RFC 4180 CSV. encoding/csv
// quotes embedded separators and line breaks, so context snippets survive a
// round trip through the export. An empty match set yields a header-only
// file.
func WriteCSV(w io.Writer, matches []scan.Match) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, m := range matches {
		row := []string{m.Document, strconv.Itoa(m.Page), m.Keyword, m.Context}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"docscan/internal/document"
)

// CSVParser handles CSV files. Rows are flattened to "header: cell" lines
// so keyword context stays labeled with its column.
type CSVParser struct{}

func (p *CSVParser) Parse(data []byte, filename string) (*document.Document, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return &document.Document{Name: filename}, nil
	}

	// First row is headers.
	headers := records[0]

	var body strings.Builder
	for _, row := range records[1:] {
		var line strings.Builder
		for j, cell := range row {
			if j > 0 {
				line.WriteString(", ")
			}
			if j < len(headers) {
				line.WriteString(headers[j] + ": " + cell)
			} else {
				line.WriteString(cell)
			}
		}
		if body.Len() > 0 {
			body.WriteString("\n")
		}
		body.WriteString(line.String())
	}

	return singlePage(filename, body.String()), nil
}

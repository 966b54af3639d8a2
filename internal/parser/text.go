package parser

import (
	"strings"
	"unicode/utf8"

	"docscan/internal/document"
)

// TextParser handles plain text files. The file body is kept verbatim
// (modulo line-ending normalization) so match offsets point into the
// original text.
type TextParser struct{}

func (p *TextParser) Parse(data []byte, filename string) (*document.Document, error) {
	if !utf8.Valid(data) {
		return nil, errNotText
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return singlePage(filename, text), nil
}

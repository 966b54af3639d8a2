package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"docscan/internal/document"
)

// Parser converts raw document bytes into pages of plain text.
type Parser interface {
	Parse(data []byte, filename string) (*document.Document, error)
}

// SupportedExtensions lists file extensions this service can scan.
var SupportedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".csv":  true,
	".html": true,
	".htm":  true,
	".pdf":  true,
	".docx": true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".csv":
		return &CSVParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// Options tunes parser behavior that comes from service configuration.
type Options struct {
	PDFFallbackPdftotext bool
}

// ParseFile extracts the page text of a single uploaded file. Any failure,
// including an unsupported format, is reported as an *UnreadableError so the
// caller can skip the document and keep scanning the rest of the batch.
func ParseFile(data []byte, filename string, opts Options) (*document.Document, error) {
	p, err := ForFile(filename)
	if err != nil {
		return nil, &UnreadableError{Filename: filename, Err: err}
	}
	if pp, ok := p.(*PDFParser); ok {
		pp.FallbackPdftotext = opts.PDFFallbackPdftotext
	}
	doc, err := p.Parse(data, filename)
	if err != nil {
		return nil, &UnreadableError{Filename: filename, Err: err}
	}
	return doc, nil
}

// singlePage wraps extracted body text into a one-page document, used by
// formats without a page concept.
func singlePage(filename, text string) *document.Document {
	doc := &document.Document{Name: filename}
	text = strings.TrimSpace(text)
	if text != "" {
		doc.Pages = []document.Page{{Number: 1, Text: text}}
	}
	return doc
}

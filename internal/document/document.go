package document

// Document is one uploaded file reduced to plain page text.
type Document struct {
	Name  string // Upload filename with any path components stripped.
	Pages []Page // Ordered pages; unpaginated formats produce a single page.
}

// Page is a single page of extracted text.
type Page struct {
	Number int // 1-based page number.
	Text   string
}

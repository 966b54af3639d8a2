package scan

import (
	"regexp"
	"unicode/utf8"
)

// Occurrence is one keyword hit within a single page of text.
type Occurrence struct {
	Offset  int    // Byte offset of the match in the page text.
	Context string // Surrounding text, clipped at page bounds.
}

// matcher finds case-insensitive occurrences of a single keyword.
type matcher struct {
	keyword string
	re      *regexp.Regexp
}

func newMatcher(keyword string) *matcher {
	return &matcher{
		keyword: keyword,
		re:      regexp.MustCompile(`(?i)` + regexp.QuoteMeta(keyword)),
	}
}

// find returns every non-overlapping occurrence of the keyword in text,
// left to right, each with window characters of context on both sides.
func (m *matcher) find(text string, window int) []Occurrence {
	locs := m.re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	occs := make([]Occurrence, 0, len(locs))
	for _, loc := range locs {
		occs = append(occs, Occurrence{
			Offset:  loc[0],
			Context: snippet(text, loc[0], loc[1], window),
		})
	}
	return occs
}

// snippet slices up to window characters of context on each side of the
// match span [start, end), truncating silently at the text boundaries.
// The window counts runes, not bytes.
func snippet(text string, start, end, window int) string {
	lo := start
	for i := 0; i < window && lo > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:lo])
		lo -= size
	}
	hi := end
	for i := 0; i < window && hi < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[hi:])
		hi += size
	}
	return text[lo:hi]
}

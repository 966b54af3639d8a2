// Package report derives the display views and the tabular export from a
// scan session's match records. Each view is computed on demand from the
// same canonical record set, so the views can never drift apart.
package report

import (
	"cmp"
	"slices"

	"docscan/internal/scan"
)

// DocumentGroup collects one document's matches, ordered by (page, offset).
type DocumentGroup struct {
	Document string       `json:"document"`
	Matches  []scan.Match `json:"matches"`
}

// KeywordGroup collects one keyword's matches, ordered by
// (document name, page, offset).
type KeywordGroup struct {
	Keyword string       `json:"keyword"`
	Matches []scan.Match `json:"matches"`
}

// ByDocument groups the session's matches per document, in upload order.
// Documents without matches produce no group.
func ByDocument(s *scan.Session) []DocumentGroup {
	byDoc := make(map[string][]scan.Match)
	for _, m := range s.Matches {
		byDoc[m.Document] = append(byDoc[m.Document], m)
	}

	groups := make([]DocumentGroup, 0, len(byDoc))
	for _, name := range s.Documents {
		matches, ok := byDoc[name]
		if !ok {
			continue
		}
		delete(byDoc, name) // A name uploaded twice forms a single group.
		slices.SortStableFunc(matches, func(a, b scan.Match) int {
			if c := cmp.Compare(a.Page, b.Page); c != 0 {
				return c
			}
			return cmp.Compare(a.Offset, b.Offset)
		})
		groups = append(groups, DocumentGroup{Document: name, Matches: matches})
	}
	return groups
}

// ByKeyword groups the session's matches per keyword, in keyword-list order.
// Keywords without matches produce no group.
func ByKeyword(s *scan.Session) []KeywordGroup {
	byKw := make(map[string][]scan.Match)
	for _, m := range s.Matches {
		byKw[m.Keyword] = append(byKw[m.Keyword], m)
	}

	groups := make([]KeywordGroup, 0, len(byKw))
	for _, kw := range s.Keywords {
		matches, ok := byKw[kw]
		if !ok {
			continue
		}
		slices.SortStableFunc(matches, func(a, b scan.Match) int {
			if c := cmp.Compare(a.Document, b.Document); c != 0 {
				return c
			}
			if c := cmp.Compare(a.Page, b.Page); c != 0 {
				return c
			}
			return cmp.Compare(a.Offset, b.Offset)
		})
		groups = append(groups, KeywordGroup{Keyword: kw, Matches: matches})
	}
	return groups
}

// Table returns the flat match set in canonical insertion order, ready for
// tabular display or export.
func Table(s *scan.Session) []scan.Match {
	return slices.Clone(s.Matches)
}

package scan

import (
	"time"

	"github.com/google/uuid"

	"docscan/internal/document"
)

// Match is one keyword occurrence in one document page. Records are
// immutable once created and live for the duration of their session.
type Match struct {
	Document string `json:"document"`
	Page     int    `json:"page"`
	Keyword  string `json:"keyword"`
	Context  string `json:"context"`
	Offset   int    `json:"offset"`
}

// SkippedDocument names an upload that could not be scanned and why.
type SkippedDocument struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Session is one complete scan run: the uploaded batch, the active keyword
// list, and every match record produced. A new upload always produces a new
// session; nothing is persisted between runs.
type Session struct {
	ID            string            `json:"session_id"`
	CreatedAt     time.Time         `json:"created_at"`
	Keywords      []string          `json:"keywords"`
	ContextWindow int               `json:"context_window"`
	Documents     []string          `json:"documents"` // Upload order.
	Skipped       []SkippedDocument `json:"skipped"`
	Matches       []Match           `json:"-"` // Canonical flat set, insertion order.
}

// Run scans every page of every document for the configured keywords and
// returns the completed session. The match set is built in canonical order:
// document upload order, then page, then keyword-list order, then offset.
func Run(cfg Config, docs []*document.Document, skipped []SkippedDocument) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	matchers := make([]*matcher, len(cfg.Keywords))
	for i, kw := range cfg.Keywords {
		matchers[i] = newMatcher(kw)
	}

	s := &Session{
		ID:            uuid.NewString(),
		CreatedAt:     time.Now(),
		Keywords:      cfg.Keywords,
		ContextWindow: cfg.ContextWindow,
		Skipped:       skipped,
	}

	for _, doc := range docs {
		s.Documents = append(s.Documents, doc.Name)
		for _, page := range doc.Pages {
			for _, m := range matchers {
				for _, occ := range m.find(page.Text, cfg.ContextWindow) {
					s.Matches = append(s.Matches, Match{
						Document: doc.Name,
						Page:     page.Number,
						Keyword:  m.keyword,
						Context:  occ.Context,
						Offset:   occ.Offset,
					})
				}
			}
		}
	}
	return s, nil
}

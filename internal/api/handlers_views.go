package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"docscan/internal/report"
	"docscan/internal/scan"
)

func sessionSummary(s *scan.Session) map[string]any {
	return map[string]any{
		"session_id":     s.ID,
		"created_at":     s.CreatedAt,
		"keywords":       s.Keywords,
		"context_window": s.ContextWindow,
		"documents":      s.Documents,
		"skipped":        s.Skipped,
		"total_matches":  len(s.Matches),
		"views": map[string]string{
			"by_document": fmt.Sprintf("/api/scan/%s/by-document", s.ID),
			"by_keyword":  fmt.Sprintf("/api/scan/%s/by-keyword", s.ID),
			"table":       fmt.Sprintf("/api/scan/%s/table", s.ID),
			"export":      fmt.Sprintf("/api/scan/%s/export.csv", s.ID),
		},
	}
}

// session loads the session named in the URL, or writes a 404.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *scan.Session {
	id := chi.URLParam(r, "sessionID")
	sess := s.store.Get(id)
	if sess == nil {
		jsonError(w, "session not found", http.StatusNotFound)
		return nil
	}
	return sess
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	writeJSON(w, sessionSummary(sess))
}

func (s *Server) handleByDocument(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	writeJSON(w, map[string]any{
		"session_id": sess.ID,
		"groups":     report.ByDocument(sess),
	})
}

func (s *Server) handleByKeyword(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	writeJSON(w, map[string]any{
		"session_id": sess.ID,
		"groups":     report.ByKeyword(sess),
	})
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	matches := report.Table(sess)
	writeJSON(w, map[string]any{
		"session_id": sess.ID,
		"total":      len(matches),
		"matches":    matches,
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if sess == nil {
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="keyword_scan_results.csv"`)
	if err := report.WriteCSV(w, report.Table(sess)); err != nil {
		s.log.Error("csv export failed", "session_id", sess.ID, "error", err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

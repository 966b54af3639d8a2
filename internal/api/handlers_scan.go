package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"docscan/internal/document"
	"docscan/internal/metrics"
	"docscan/internal/parser"
	"docscan/internal/scan"
)

// handleScan accepts a multipart batch of documents, runs one synchronous
// scan, and stores the resulting session for the view and export endpoints.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	cfg, err := s.scanConfig(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	var (
		docs    []*document.Document
		skipped []scan.SkippedDocument
	)

	for _, fh := range files {
		filename := sanitizeFilename(fh.Filename)
		data, err := readUpload(fh, s.cfg.MaxUploadBytes)
		if err != nil {
			skipped = append(skipped, scan.SkippedDocument{Name: filename, Reason: err.Error()})
			continue
		}

		if parser.IsArchive(filename) {
			members, err := parser.ExpandArchive(data, filename)
			if err != nil {
				// A corrupt archive costs only its own contents.
				skipped = append(skipped, scan.SkippedDocument{Name: filename, Reason: err.Error()})
				continue
			}
			for _, m := range members {
				s.addDocument(&docs, &skipped, m.Data, sanitizeFilename(m.Name))
			}
			continue
		}

		s.addDocument(&docs, &skipped, data, filename)
	}

	session, err := scan.Run(cfg, docs, skipped)
	if err != nil {
		var cfgErr *scan.ConfigError
		if errors.As(err, &cfgErr) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.store.Put(session)
	metrics.RecordScan(len(session.Documents), len(session.Skipped), len(session.Matches), time.Since(start))

	s.log.Info("scan completed",
		"session_id", session.ID,
		"documents", len(session.Documents),
		"skipped", len(session.Skipped),
		"matches", len(session.Matches),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sessionSummary(session))
}

// scanConfig resolves the keyword list and context window for one request,
// falling back to the configured defaults when a field is absent.
func (s *Server) scanConfig(r *http.Request) (scan.Config, error) {
	cfg := scan.Config{
		Keywords:      s.cfg.DefaultKeywords,
		ContextWindow: s.cfg.DefaultContextWindow,
	}

	if vals, ok := r.MultipartForm.Value["keywords"]; ok && len(vals) > 0 {
		cfg.Keywords = scan.ParseKeywords(vals[0])
	}

	if v := r.FormValue("context_window"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid context_window: %q is not a number", v)
		}
		cfg.ContextWindow = n
	}
	if cfg.ContextWindow > s.cfg.MaxContextWindow {
		return cfg, fmt.Errorf("invalid context_window: must be at most %d", s.cfg.MaxContextWindow)
	}

	return cfg, nil
}

// addDocument parses one file into the batch, or records it as skipped.
func (s *Server) addDocument(docs *[]*document.Document, skipped *[]scan.SkippedDocument, data []byte, filename string) {
	doc, err := parser.ParseFile(data, filename, parser.Options{
		PDFFallbackPdftotext: s.cfg.PDFFallbackPdftotext,
	})
	if err != nil {
		*skipped = append(*skipped, scan.SkippedDocument{Name: filename, Reason: err.Error()})
		return
	}
	*docs = append(*docs, doc)
}

func readUpload(fh *multipart.FileHeader, maxBytes int64) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file")
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("file exceeds max size (%d bytes)", maxBytes)
	}
	return data, nil
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}

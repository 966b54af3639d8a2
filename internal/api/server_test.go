package api

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docscan/internal/config"
	"docscan/internal/scan"
)

func testServer(apiKey string) *Server {
	cfg := config.Config{
		Port:                 "0",
		APIKey:               apiKey,
		MaxUploadBytes:       10 << 20,
		DefaultKeywords:      []string{"traffic", "parking"},
		DefaultContextWindow: 60,
		MaxContextWindow:     200,
		SessionTTL:           time.Hour,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(scan.NewStore(cfg.SessionTTL), log, cfg)
}

type uploadFile struct {
	name string
	data []byte
}

func multipartBody(t *testing.T, fields map[string]string, files []uploadFile) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		fw, err := mw.CreateFormFile("files", f.name)
		require.NoError(t, err)
		_, err = fw.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func postScan(t *testing.T, srv *Server, fields map[string]string, files []uploadFile) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, fields, files)
	req := httptest.NewRequest(http.MethodPost, "/api/scan", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHandleScan(t *testing.T) {
	t.Run("scans an uploaded text file and stores a session", func(t *testing.T) {
		srv := testServer("")
		rec := postScan(t, srv,
			map[string]string{"keywords": "school, housing", "context_window": "10"},
			[]uploadFile{{name: "plan.txt", data: []byte("Plans for a new school building and housing on the edge of town.")}},
		)

		require.Equal(t, http.StatusCreated, rec.Code)
		out := decode(t, rec)
		assert.EqualValues(t, 2, out["total_matches"])
		assert.Equal(t, []any{"plan.txt"}, out["documents"])
		assert.Empty(t, out["skipped"])
		require.NotEmpty(t, out["session_id"])
	})

	t.Run("unreadable document is skipped and the batch continues", func(t *testing.T) {
		srv := testServer("")
		rec := postScan(t, srv,
			map[string]string{"keywords": "traffic"},
			[]uploadFile{
				{name: "broken.pdf", data: []byte("not a real pdf")},
				{name: "ok.txt", data: []byte("heavy traffic expected")},
			},
		)

		require.Equal(t, http.StatusCreated, rec.Code)
		out := decode(t, rec)
		assert.EqualValues(t, 1, out["total_matches"])
		assert.Equal(t, []any{"ok.txt"}, out["documents"])

		skipped, ok := out["skipped"].([]any)
		require.True(t, ok)
		require.Len(t, skipped, 1)
		assert.Equal(t, "broken.pdf", skipped[0].(map[string]any)["name"])
	})

	t.Run("zip archive is expanded into its members", func(t *testing.T) {
		srv := testServer("")
		rec := postScan(t, srv,
			map[string]string{"keywords": "parking"},
			[]uploadFile{{name: "batch.zip", data: zipOf(t, map[string]string{
				"a.txt": "parking on site",
				"b.txt": "no relevant text",
			})}},
		)

		require.Equal(t, http.StatusCreated, rec.Code)
		out := decode(t, rec)
		assert.EqualValues(t, 1, out["total_matches"])
		docs, ok := out["documents"].([]any)
		require.True(t, ok)
		assert.Len(t, docs, 2)
	})

	t.Run("corrupt zip costs only its own contents", func(t *testing.T) {
		srv := testServer("")
		rec := postScan(t, srv,
			map[string]string{"keywords": "traffic"},
			[]uploadFile{
				{name: "broken.zip", data: []byte("not a zip")},
				{name: "ok.txt", data: []byte("traffic calming measures")},
			},
		)

		require.Equal(t, http.StatusCreated, rec.Code)
		out := decode(t, rec)
		assert.EqualValues(t, 1, out["total_matches"])
		skipped := out["skipped"].([]any)
		require.Len(t, skipped, 1)
		assert.Equal(t, "broken.zip", skipped[0].(map[string]any)["name"])
	})

	t.Run("rejects non-positive context window", func(t *testing.T) {
		srv := testServer("")
		rec := postScan(t, srv,
			map[string]string{"keywords": "traffic", "context_window": "0"},
			[]uploadFile{{name: "a.txt", data: []byte("x")}},
		)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects context window above the configured maximum", func(t *testing.T) {
		srv := testServer("")
		rec := postScan(t, srv,
			map[string]string{"keywords": "traffic", "context_window": "500"},
			[]uploadFile{{name: "a.txt", data: []byte("x")}},
		)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("requires at least one file", func(t *testing.T) {
		srv := testServer("")
		rec := postScan(t, srv, map[string]string{"keywords": "traffic"}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty keywords field yields an empty scan", func(t *testing.T) {
		srv := testServer("")
		rec := postScan(t, srv,
			map[string]string{"keywords": ""},
			[]uploadFile{{name: "a.txt", data: []byte("traffic everywhere")}},
		)
		require.Equal(t, http.StatusCreated, rec.Code)
		out := decode(t, rec)
		assert.EqualValues(t, 0, out["total_matches"])
	})
}

func TestViewsAndExport(t *testing.T) {
	srv := testServer("")
	rec := postScan(t, srv,
		map[string]string{"keywords": "school, housing", "context_window": "10"},
		[]uploadFile{{name: "plan.txt", data: []byte("Plans for a new school building and housing on the edge of town.")}},
	)
	require.Equal(t, http.StatusCreated, rec.Code)
	sessionID := decode(t, rec)["session_id"].(string)

	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		return rec
	}

	t.Run("summary", func(t *testing.T) {
		rec := get("/api/scan/" + sessionID)
		require.Equal(t, http.StatusOK, rec.Code)
		out := decode(t, rec)
		assert.EqualValues(t, 2, out["total_matches"])
	})

	t.Run("by-document view", func(t *testing.T) {
		rec := get("/api/scan/" + sessionID + "/by-document")
		require.Equal(t, http.StatusOK, rec.Code)
		out := decode(t, rec)
		groups := out["groups"].([]any)
		require.Len(t, groups, 1)
		assert.Equal(t, "plan.txt", groups[0].(map[string]any)["document"])
	})

	t.Run("by-keyword view", func(t *testing.T) {
		rec := get("/api/scan/" + sessionID + "/by-keyword")
		require.Equal(t, http.StatusOK, rec.Code)
		out := decode(t, rec)
		groups := out["groups"].([]any)
		require.Len(t, groups, 2)
		assert.Equal(t, "school", groups[0].(map[string]any)["keyword"])
		assert.Equal(t, "housing", groups[1].(map[string]any)["keyword"])
	})

	t.Run("table view", func(t *testing.T) {
		rec := get("/api/scan/" + sessionID + "/table")
		require.Equal(t, http.StatusOK, rec.Code)
		out := decode(t, rec)
		assert.EqualValues(t, 2, out["total"])
	})

	t.Run("csv export", func(t *testing.T) {
		rec := get("/api/scan/" + sessionID + "/export.csv")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

		rows, err := csv.NewReader(rec.Body).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"document", "page", "keyword", "context"}, rows[0])
		assert.Equal(t, "school", rows[1][2])
	})

	t.Run("unknown session is 404", func(t *testing.T) {
		rec := get("/api/scan/no-such-session/table")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAuth(t *testing.T) {
	t.Run("scan endpoints require the configured key", func(t *testing.T) {
		srv := testServer("sekrit")

		req := httptest.NewRequest(http.MethodGet, "/api/scan/xyz", nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		req = httptest.NewRequest(http.MethodGet, "/api/scan/xyz", nil)
		req.Header.Set("Authorization", "Bearer sekrit")
		rec = httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("health stays public", func(t *testing.T) {
		srv := testServer("sekrit")
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct{ in, want string }{
		{"report.pdf", "report.pdf"},
		{"../../etc/passwd", "passwd"},
		{"dir/file.txt", "file.txt"},
		{"", "unnamed"},
		{".", "unnamed"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFilename(tt.in), "input %q", tt.in)
	}
}

func zipOf(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = io.Copy(w, strings.NewReader(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

package api

import (
	"bytes"
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

	"github.com/dgallion1/docvox/internal/config"
	"github.com/dgallion1/docvox/internal/msgs"
	"github.com/dgallion1/docvox/internal/navigator"
	"github.com/dgallion1/docvox/internal/parser"
	"github.com/dgallion1/docvox/internal/session"
	"github.com/dgallion1/docvox/internal/stats"
)

const testKey = "secret"

const testPage = `<html><head><title>Links</title></head><body>` +
	`<h1>Menu</h1>` +
	`<ul id="menu"><li><a href="/a">Alpha</a></li><li><a href="/b">Beta</a></li><li><a href="/c">Gamma</a></li></ul>` +
	`<p>First sentence. Second sentence.</p>` +
	`</body></html>`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	mgr := session.NewManager(session.NewStore(time.Hour), msgs.MustNew("en"), navigator.DefaultSettings(), parser.Options{}, log)
	cfg := config.Config{DocvoxAPIKey: testKey, MaxUploadBytes: 1 << 20}
	return NewServer(mgr, stats.NewLatency(time.Hour), log, cfg)
}

func do(t *testing.T, s *Server, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Authorization", "Bearer "+testKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func upload(t *testing.T, s *Server, filename, content string) string {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	rec := do(t, s, http.MethodPost, "/api/documents", &buf, mw.FormDataContentType())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		SessionID string `json:"session_id"`
		Title     string `json:"title"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

func TestHealthIsPublic(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAuthRequired(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats/nav", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/stats/nav", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOpenRejectsUnsupportedType(t *testing.T) {
	s := newTestServer(t)
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("file", "image.png")
	fw.Write([]byte{0x89, 'P', 'N', 'G'})
	mw.Close()

	rec := do(t, s, http.MethodPost, "/api/documents", &buf, mw.FormDataContentType())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported file type")
}

func TestMoveAndSeek(t *testing.T) {
	s := newTestServer(t)
	id := upload(t, s, "links.html", testPage)

	rec := do(t, s, http.MethodPost, "/api/documents/"+id+"/move",
		strings.NewReader(`{"granularity":"word","direction":"forward"}`), "application/json")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res navigator.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, "Menu", res.Text)
	assert.False(t, res.End)
	require.NotNil(t, res.Description)

	rec = do(t, s, http.MethodPost, "/api/documents/"+id+"/seek",
		strings.NewReader(`{"xpath":"//p"}`), "application/json")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, s, http.MethodPost, "/api/documents/"+id+"/move",
		strings.NewReader(`{"granularity":"sentence"}`), "application/json")
	require.Equal(t, http.StatusOK, rec.Code)
	res = navigator.Result{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, "First sentence.", res.Text)
}

func TestMoveRejectsBadGranularity(t *testing.T) {
	s := newTestServer(t)
	id := upload(t, s, "links.html", testPage)

	rec := do(t, s, http.MethodPost, "/api/documents/"+id+"/move",
		strings.NewReader(`{"granularity":"chapter"}`), "application/json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSeekNoMatch(t *testing.T) {
	s := newTestServer(t)
	id := upload(t, s, "links.html", testPage)

	rec := do(t, s, http.MethodPost, "/api/documents/"+id+"/seek",
		strings.NewReader(`{"xpath":"//table"}`), "application/json")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/documents/"+id+"/seek",
		strings.NewReader(`{"xpath":"//["}`), "application/json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCollectionSummarizesLinks(t *testing.T) {
	s := newTestServer(t)
	id := upload(t, s, "links.html", testPage)

	rec := do(t, s, http.MethodGet, "/api/documents/"+id+"/collection?xpath=//ul", nil, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Descriptions []struct {
			Text       string `json:"text"`
			Annotation string `json:"annotation"`
		} `json:"descriptions"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Descriptions, 4)
	assert.Equal(t, "Link collection with 3 items", resp.Descriptions[0].Annotation)
	assert.Equal(t, "Alpha", resp.Descriptions[1].Text)
	assert.Empty(t, resp.Descriptions[1].Annotation)
}

func TestChunksAndStats(t *testing.T) {
	s := newTestServer(t)
	id := upload(t, s, "notes.md", "# Notes\n\nOne. Two.\n")

	rec := do(t, s, http.MethodGet, "/api/documents/"+id+"/chunks?granularity=sentence", nil, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp struct {
		Chunks []struct {
			Text string `json:"text"`
		} `json:"chunks"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Chunks)

	rec = do(t, s, http.MethodGet, "/api/stats/nav", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"chunks"`)
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestServer(t)
	id := upload(t, s, "a.txt", "Plain text body.")

	rec := do(t, s, http.MethodGet, "/api/documents/"+id, nil, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var snap session.Snapshot
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&snap))
	assert.Equal(t, id, snap.ID)
	assert.Equal(t, "a.txt", snap.Filename)

	rec = do(t, s, http.MethodDelete, "/api/documents/"+id, nil, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, s, http.MethodGet, "/api/documents/"+id, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"../../etc/passwd": "passwd",
		"report.pdf":       "report.pdf",
		"":                 "unnamed",
		`a\b.txt`:          "a_b.txt",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizeFilename(in), in)
	}
}

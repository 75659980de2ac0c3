package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-parser/internal/convert"
)

// newTestServer builds a server without database, matcher, or LLM fallback
// and returns its handler mounted on an httptest server.
func newTestServer(t *testing.T, cfg Config) *httptest.Server {
	t.Helper()
	s, err := New(cfg)
	require.NoError(t, err)
	ts := httptest.NewServer(s.httpServer.Handler)
	t.Cleanup(ts.Close)
	t.Cleanup(s.rateLimiter.Stop)
	return ts
}

// uploadRequest builds a multipart request with a single file field.
func uploadRequest(t *testing.T, url, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeError(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body["error"]
}

func TestHandleHealth(t *testing.T) {
	ts := newTestServer(t, Config{})

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"status":"ok"`)
}

func TestHandleParse_UnsupportedFormat(t *testing.T) {
	ts := newTestServer(t, Config{})

	req := uploadRequest(t, ts.URL+"/api/v1/parse", "resume.txt", []byte("plain text"))
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp), "unsupported")
}

func TestHandleParse_CorruptDocument(t *testing.T) {
	ts := newTestServer(t, Config{})

	req := uploadRequest(t, ts.URL+"/api/v1/parse", "resume.docx", []byte("not a zip archive"))
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleParse_MissingFileField(t *testing.T) {
	ts := newTestServer(t, Config{})

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("name", "value"))
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/v1/parse", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp), "file")
}

func TestHandleParse_NotMultipart(t *testing.T) {
	ts := newTestServer(t, Config{})

	resp, err := http.Post(ts.URL+"/api/v1/parse", "application/json", bytes.NewBufferString("{}"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleMatch_NoMatcherConfigured(t *testing.T) {
	ts := newTestServer(t, Config{})

	req := uploadRequest(t, ts.URL+"/api/v1/match", "resume.pdf", []byte("x"))
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp), "matcher")
}

func TestHandleListRuns_NoDatabase(t *testing.T) {
	ts := newTestServer(t, Config{})

	resp, err := http.Get(ts.URL + "/runs")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t, Config{})

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/v1/parse", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "unsupported format",
			err:  &convert.UnsupportedFormatError{Format: ".txt"},
			want: http.StatusUnsupportedMediaType,
		},
		{
			name: "no extractable text",
			err:  &convert.NoExtractableTextError{Path: "scan.pdf"},
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "conversion failure",
			err:  &convert.ConversionError{Message: "opening PDF"},
			want: http.StatusBadRequest,
		},
		{
			name: "wrapped conversion failure",
			err:  errors.Join(errors.New("outer"), &convert.ConversionError{Message: "inner"}),
			want: http.StatusBadRequest,
		},
		{
			name: "unknown error",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

package matcher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-parser/internal/types"
)

func testDocument() *types.ExtractedDocument {
	doc := types.NewExtractedDocument("raw text")
	doc.Name = "Taha Lamhandi"
	doc.Skills = []string{"Python", "React"}
	return doc
}

func TestMatch(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(PredictResponse{
			Success:   true,
			TotalJobs: 250,
			Algorithm: "ML Enhanced (TF-IDF + Skill Matching)",
			Matches: []JobMatch{
				{JobTitle: "Backend Engineer", Company: "Acme", MatchScore: 87.5},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.Match(context.Background(), testDocument(), 5)
	require.NoError(t, err)

	assert.Equal(t, "/api/predict-jobs", gotPath)
	assert.Equal(t, float64(5), gotBody["topK"])
	cvData, ok := gotBody["cvData"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Taha Lamhandi", cvData["name"])

	assert.True(t, resp.Success)
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, "Backend Engineer", resp.Matches[0].JobTitle)
	assert.InDelta(t, 87.5, resp.Matches[0].MatchScore, 0.001)
}

func TestMatchDefaultTopK(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(PredictResponse{Success: true})
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).Match(context.Background(), testDocument(), 0)
	require.NoError(t, err)
	assert.Equal(t, float64(DefaultTopK), gotBody["topK"])
	assert.NotNil(t, resp.Matches)
}

func TestMatchValidation(t *testing.T) {
	client := NewClient("http://localhost:0")

	t.Run("nil document", func(t *testing.T) {
		_, err := client.Match(context.Background(), nil, 5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid match request")
	})

	t.Run("topK out of range", func(t *testing.T) {
		_, err := client.Match(context.Background(), testDocument(), 500)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid match request")
	})
}

func TestMatchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Match(context.Background(), testDocument(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	assert.NoError(t, NewClient(srv.URL).Health(context.Background()))
}

func TestHealthUnreachable(t *testing.T) {
	assert.Error(t, NewClient("http://127.0.0.1:1").Health(context.Background()))
}

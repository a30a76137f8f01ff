package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/careerai/interview-service/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resumeMatchFor(serverURL string) ResumeMatchService {
	cfg := &config.Config{}
	cfg.Evaluator.BaseURL = serverURL
	cfg.Evaluator.TimeoutSeconds = 5
	return NewResumeMatchService(cfg, NewSkillExtractorService())
}

func TestResumeMatch_RemoteAnalysis(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/analyze", r.URL.Path)

		var req analyzeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req.ResumeText)
		assert.NotEmpty(t, req.JobDescription)

		json.NewEncoder(w).Encode(analyzeResponse{
			Score:           82,
			MatchedKeywords: []string{"python", "docker"},
			MissingKeywords: []string{"kubernetes"},
			Summary:         "Strong overlap with the role.",
		})
	}))
	defer server.Close()

	svc := resumeMatchFor(server.URL)

	match, err := svc.Match(context.Background(), "Backend Engineer", "Python and docker background.", "python, docker and kubernetes")
	require.NoError(t, err)

	assert.Equal(t, 82.0, match.Score)
	assert.Equal(t, []string{"python", "docker"}, match.MatchedKeywords)
	assert.Equal(t, "Strong overlap with the role.", match.Summary)
}

func TestResumeMatch_FallsBackToLocalOverlap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc := resumeMatchFor(server.URL)

	// Description yields python and docker; the resume covers python only.
	match, err := svc.Match(context.Background(), "Backend Engineer", "Five years of python services.", "python and docker")
	require.NoError(t, err)

	assert.Equal(t, 50.0, match.Score)
	assert.Equal(t, []string{"python"}, match.MatchedKeywords)
	assert.Equal(t, []string{"docker"}, match.MissingKeywords)
	assert.Contains(t, match.Summary, "Backend Engineer")
}

func TestResumeMatch_NoSkillsInDescription(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc := resumeMatchFor(server.URL)

	match, err := svc.Match(context.Background(), "Coordinator", "Organized and dependable.", "A role at our office")
	require.NoError(t, err)

	// Neutral score when the description contains no known skill terms.
	assert.Equal(t, 50.0, match.Score)
	assert.Empty(t, match.MatchedKeywords)
	assert.Empty(t, match.MissingKeywords)
}

func TestResumeMatch_RequiresInputs(t *testing.T) {
	svc := resumeMatchFor("http://localhost:0")

	_, err := svc.Match(context.Background(), "Engineer", " ", "python role")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Match(context.Background(), "Engineer", "resume body", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestResumeMatch_ClampsRemoteScore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(analyzeResponse{Score: 180})
	}))
	defer server.Close()

	svc := resumeMatchFor(server.URL)

	match, err := svc.Match(context.Background(), "Engineer", "python background", "python role")
	require.NoError(t, err)

	assert.Equal(t, 100.0, match.Score)
}

package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/careerai/interview-service/config"
	"github.com/careerai/interview-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func remoteEvaluatorFor(serverURL string) Evaluator {
	cfg := &config.Config{}
	cfg.Evaluator.BaseURL = serverURL
	cfg.Evaluator.TimeoutSeconds = 5
	return NewRemoteEvaluator(cfg)
}

func TestRemoteEvaluator_EvaluateAnswer(t *testing.T) {
	var received evaluateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/interview/evaluate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		json.NewEncoder(w).Encode(evaluateResponse{
			Score:          78,
			Feedback:       "Concrete and relevant.",
			Strengths:      []string{"Example-driven"},
			Improvements:   []string{"Quantify impact"},
			KeywordsFound:  []string{"docker"},
			KeywordsMissed: []string{"kubernetes"},
		})
	}))
	defer server.Close()

	evaluator := remoteEvaluatorFor(server.URL)
	question := &model.Question{
		ID:               "q1",
		Text:             "How do you deploy services?",
		Category:         model.CategoryTechnical,
		ExpectedKeywords: []string{"docker", "kubernetes"},
	}
	sc := SessionContext{JobRole: "DevOps Engineer", JobDescription: "docker and kubernetes"}

	eval, err := evaluator.EvaluateAnswer(context.Background(), question, "We ship containers through a docker pipeline.", sc)
	require.NoError(t, err)

	assert.Equal(t, 78.0, eval.Score)
	assert.Equal(t, "Concrete and relevant.", eval.Feedback)
	assert.Equal(t, []string{"kubernetes"}, eval.KeywordsMissed)

	assert.Equal(t, "How do you deploy services?", received.QuestionText)
	assert.Equal(t, model.CategoryTechnical, received.Category)
	assert.Equal(t, "DevOps Engineer", received.JobRole)
	assert.Equal(t, []string{"docker", "kubernetes"}, received.ExpectedKeywords)
}

func TestRemoteEvaluator_Summarize(t *testing.T) {
	tech := 74.0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/interview/summary", r.URL.Path)
		json.NewEncoder(w).Encode(summaryResponse{
			OverallScore:    74,
			ReadinessLevel:  model.ReadinessMedium,
			StrongAreas:     []string{"Technical depth"},
			WeakAreas:       []string{"Behavioral structure"},
			CategoryScores:  map[string]*float64{model.CategoryTechnical: &tech},
			Recommendations: []string{"Use the STAR format"},
			FeedbackSummary: "Solid technical showing.",
		})
	}))
	defer server.Close()

	evaluator := remoteEvaluatorFor(server.URL)

	summary, err := evaluator.Summarize(context.Background(), SessionContext{JobRole: "Engineer"}, []AnsweredQuestion{
		{Category: model.CategoryTechnical, Score: 74},
	})
	require.NoError(t, err)

	assert.Equal(t, 74.0, summary.OverallScore)
	assert.Equal(t, model.ReadinessMedium, summary.ReadinessLevel)
	require.NotNil(t, summary.CategoryScores[model.CategoryTechnical])
	assert.Equal(t, 74.0, *summary.CategoryScores[model.CategoryTechnical])
}

func TestRemoteEvaluator_NonSuccessStatusIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	evaluator := remoteEvaluatorFor(server.URL)

	_, err := evaluator.EvaluateAnswer(context.Background(), &model.Question{ID: "q1"}, "answer text", SessionContext{})

	assert.ErrorIs(t, err, errEvaluatorUnavailable)
}

func TestRemoteEvaluator_ConnectionRefusedIsUnavailable(t *testing.T) {
	// A server that is immediately closed leaves a port nothing listens on.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	evaluator := remoteEvaluatorFor(server.URL)

	_, err := evaluator.EvaluateAnswer(context.Background(), &model.Question{ID: "q1"}, "answer text", SessionContext{})

	assert.ErrorIs(t, err, errEvaluatorUnavailable)
}

func TestRemoteEvaluator_MalformedBodyIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	evaluator := remoteEvaluatorFor(server.URL)

	_, err := evaluator.Summarize(context.Background(), SessionContext{}, nil)

	assert.ErrorIs(t, err, errEvaluatorUnavailable)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/careerai/interview-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEvaluator returns canned results and counts invocations.
type stubEvaluator struct {
	evaluation     *Evaluation
	summary        *model.SessionSummary
	err            error
	evaluateCalls  int
	summarizeCalls int
}

func (s *stubEvaluator) EvaluateAnswer(_ context.Context, _ *model.Question, _ string, _ SessionContext) (*Evaluation, error) {
	s.evaluateCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.evaluation, nil
}

func (s *stubEvaluator) Summarize(_ context.Context, _ SessionContext, _ []AnsweredQuestion) (*model.SessionSummary, error) {
	s.summarizeCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.summary, nil
}

func TestFailoverEvaluator_PrefersRemote(t *testing.T) {
	remote := &stubEvaluator{evaluation: &Evaluation{Score: 88, Feedback: "Strong answer"}}
	fallback := NewFallbackEvaluator(NewSummaryService())
	evaluator := NewFailoverEvaluator(remote, fallback)

	eval, err := evaluator.EvaluateAnswer(context.Background(), &model.Question{ID: "q1"}, "answer", SessionContext{})

	require.NoError(t, err)
	assert.Equal(t, 88.0, eval.Score)
	assert.Equal(t, 1, remote.evaluateCalls)
}

func TestFailoverEvaluator_DegradesWhenRemoteUnavailable(t *testing.T) {
	remote := &stubEvaluator{err: fmt.Errorf("%w: connection refused", errEvaluatorUnavailable)}
	evaluator := NewFailoverEvaluator(remote, NewFallbackEvaluator(NewSummaryService()))

	eval, err := evaluator.EvaluateAnswer(context.Background(), &model.Question{ID: "q1"}, "answer", SessionContext{})

	require.NoError(t, err)
	assert.Equal(t, fallbackScore, eval.Score)
	assert.Equal(t, 1, remote.evaluateCalls)
}

func TestFailoverEvaluator_DegradesOnAnyRemoteError(t *testing.T) {
	remote := &stubEvaluator{err: errors.New("unexpected parse failure")}
	evaluator := NewFailoverEvaluator(remote, NewFallbackEvaluator(NewSummaryService()))

	eval, err := evaluator.EvaluateAnswer(context.Background(), &model.Question{ID: "q1"}, "answer", SessionContext{})

	require.NoError(t, err)
	assert.Equal(t, fallbackScore, eval.Score)
}

func TestFailoverEvaluator_SummarizeDegrades(t *testing.T) {
	remote := &stubEvaluator{err: fmt.Errorf("%w: timeout", errEvaluatorUnavailable)}
	evaluator := NewFailoverEvaluator(remote, NewFallbackEvaluator(NewSummaryService()))

	summary, err := evaluator.Summarize(context.Background(), SessionContext{JobRole: "Engineer"}, []AnsweredQuestion{
		{Category: model.CategoryTechnical, Score: 70},
	})

	require.NoError(t, err)
	assert.Equal(t, 70.0, summary.OverallScore)
	assert.Equal(t, 1, remote.summarizeCalls)
}

func TestFailoverEvaluator_NilRemoteGoesStraightToFallback(t *testing.T) {
	evaluator := NewFailoverEvaluator(nil, NewFallbackEvaluator(NewSummaryService()))

	eval, err := evaluator.EvaluateAnswer(context.Background(), &model.Question{ID: "q1"}, "answer", SessionContext{})

	require.NoError(t, err)
	assert.Equal(t, fallbackScore, eval.Score)
}

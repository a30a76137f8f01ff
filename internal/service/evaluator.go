package service

import (
	"context"
	"errors"

	"github.com/careerai/interview-service/internal/model"
	"github.com/rs/zerolog/log"
)

// Evaluation is the scored result for a single answer.
type Evaluation struct {
	Score          float64  `json:"score"`
	Feedback       string   `json:"feedback"`
	Strengths      []string `json:"strengths"`
	Improvements   []string `json:"improvements"`
	KeywordsFound  []string `json:"keywords_found"`
	KeywordsMissed []string `json:"keywords_missed"`
}

// SessionContext carries the role and job description to the evaluator so
// scoring can be grounded in the target position.
type SessionContext struct {
	JobRole        string
	JobDescription string
}

// AnsweredQuestion is the per-answer input to summarization.
type AnsweredQuestion struct {
	Category     string   `json:"category"`
	Score        float64  `json:"score"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

// Evaluator scores individual answers and summarizes completed sessions.
// Implementations may fail with errEvaluatorUnavailable; the failover
// decorator is the only caller that composes them into an infallible whole.
type Evaluator interface {
	EvaluateAnswer(ctx context.Context, question *model.Question, answerText string, sc SessionContext) (*Evaluation, error)
	Summarize(ctx context.Context, sc SessionContext, answers []AnsweredQuestion) (*model.SessionSummary, error)
}

// failoverEvaluator tries the remote evaluator first and degrades to the
// local fallback on any failure, so a session is never blocked by a
// downstream outage. This is the central failure-handling decision of the
// engine.
type failoverEvaluator struct {
	remote   Evaluator
	fallback Evaluator
}

// NewFailoverEvaluator composes a remote evaluator with the local fallback.
func NewFailoverEvaluator(remote, fallback Evaluator) Evaluator {
	return &failoverEvaluator{remote: remote, fallback: fallback}
}

func (f *failoverEvaluator) EvaluateAnswer(ctx context.Context, question *model.Question, answerText string, sc SessionContext) (*Evaluation, error) {
	if f.remote != nil {
		eval, err := f.remote.EvaluateAnswer(ctx, question, answerText, sc)
		if err == nil {
			return eval, nil
		}
		logEvaluatorFailure("evaluate", err)
	}
	return f.fallback.EvaluateAnswer(ctx, question, answerText, sc)
}

func (f *failoverEvaluator) Summarize(ctx context.Context, sc SessionContext, answers []AnsweredQuestion) (*model.SessionSummary, error) {
	if f.remote != nil {
		summary, err := f.remote.Summarize(ctx, sc, answers)
		if err == nil {
			return summary, nil
		}
		logEvaluatorFailure("summarize", err)
	}
	return f.fallback.Summarize(ctx, sc, answers)
}

func logEvaluatorFailure(op string, err error) {
	if errors.Is(err, errEvaluatorUnavailable) {
		log.Warn().Err(err).Str("op", op).Msg("Remote evaluator unavailable, using local fallback")
		return
	}
	log.Error().Err(err).Str("op", op).Msg("Remote evaluator failed, using local fallback")
}

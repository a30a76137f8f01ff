package service

import (
	"context"

	"github.com/careerai/interview-service/internal/model"
)

// fallbackScore is the fixed score assigned when no remote evaluator could
// assess an answer.
const fallbackScore = 65.0

const fallbackFeedback = "Your answer was recorded. Detailed AI evaluation was unavailable for this question, so a neutral score was assigned."

// fallbackEvaluator is the deterministic local evaluator. It never fails:
// the failover decorator relies on that to keep sessions progressing while
// the remote evaluator is down.
type fallbackEvaluator struct {
	summaries SummaryService
}

func NewFallbackEvaluator(summaries SummaryService) Evaluator {
	return &fallbackEvaluator{summaries: summaries}
}

func (f *fallbackEvaluator) EvaluateAnswer(_ context.Context, _ *model.Question, _ string, _ SessionContext) (*Evaluation, error) {
	return &Evaluation{
		Score:          fallbackScore,
		Feedback:       fallbackFeedback,
		Strengths:      []string{},
		Improvements:   []string{},
		KeywordsFound:  []string{},
		KeywordsMissed: []string{},
	}, nil
}

func (f *fallbackEvaluator) Summarize(_ context.Context, sc SessionContext, answers []AnsweredQuestion) (*model.SessionSummary, error) {
	return f.summaries.BuildFallback(sc, answers), nil
}

package service

import (
	"fmt"
	"math"

	"github.com/careerai/interview-service/internal/model"
)

// SummaryService is the aggregator behind session completion. It computes
// the local fallback summary and normalizes whatever a remote evaluator
// returns: scores clamped to [0,100], all three category keys present, and
// a human-readable feedback summary.
type SummaryService interface {
	BuildFallback(sc SessionContext, answers []AnsweredQuestion) *model.SessionSummary
	Normalize(sc SessionContext, summary *model.SessionSummary) *model.SessionSummary
}

type summaryService struct{}

func NewSummaryService() SummaryService {
	return &summaryService{}
}

// BuildFallback computes the deterministic local summary: overall score is
// the arithmetic mean of recorded answer scores, per-category score is that
// category's mean or nil when it has no answers.
func (s *summaryService) BuildFallback(sc SessionContext, answers []AnsweredQuestion) *model.SessionSummary {
	categoryTotals := make(map[string]float64)
	categoryCounts := make(map[string]int)

	total := 0.0
	for _, a := range answers {
		total += a.Score
		categoryTotals[a.Category] += a.Score
		categoryCounts[a.Category]++
	}

	overall := 0.0
	if len(answers) > 0 {
		overall = roundScore(total / float64(len(answers)))
	}

	categoryScores := make(map[string]*float64, len(model.Categories))
	for _, cat := range model.Categories {
		if count := categoryCounts[cat]; count > 0 {
			avg := roundScore(categoryTotals[cat] / float64(count))
			categoryScores[cat] = &avg
		} else {
			categoryScores[cat] = nil
		}
	}

	summary := &model.SessionSummary{
		OverallScore:   overall,
		ReadinessLevel: readinessLevel(overall),
		CategoryScores: categoryScores,
		StrongAreas:    []string{},
		WeakAreas:      []string{},
	}

	if overall > 70 {
		summary.StrongAreas = append(summary.StrongAreas, "Consistent answer quality across the session")
		summary.Recommendations = []string{"Keep practicing with varied questions to maintain your level"}
	} else {
		summary.WeakAreas = append(summary.WeakAreas, "Answer depth and specificity")
		summary.Recommendations = []string{"Practice structuring answers with concrete examples and measurable outcomes"}
	}
	summary.FeedbackSummary = feedbackSummaryText(sc.JobRole, overall, summary.ReadinessLevel)

	return summary
}

// Normalize enforces the aggregator's guarantees on a summary produced by a
// remote evaluator.
func (s *summaryService) Normalize(sc SessionContext, summary *model.SessionSummary) *model.SessionSummary {
	summary.OverallScore = clampScore(summary.OverallScore)

	switch summary.ReadinessLevel {
	case model.ReadinessLow, model.ReadinessMedium, model.ReadinessHigh:
	default:
		summary.ReadinessLevel = readinessLevel(summary.OverallScore)
	}

	normalized := make(map[string]*float64, len(model.Categories))
	for _, cat := range model.Categories {
		if score, ok := summary.CategoryScores[cat]; ok && score != nil {
			clamped := clampScore(*score)
			normalized[cat] = &clamped
		} else {
			normalized[cat] = nil
		}
	}
	summary.CategoryScores = normalized

	if summary.StrongAreas == nil {
		summary.StrongAreas = []string{}
	}
	if summary.WeakAreas == nil {
		summary.WeakAreas = []string{}
	}
	if summary.Recommendations == nil {
		summary.Recommendations = []string{}
	}
	if summary.FeedbackSummary == "" {
		summary.FeedbackSummary = feedbackSummaryText(sc.JobRole, summary.OverallScore, summary.ReadinessLevel)
	}
	return summary
}

func readinessLevel(overallScore float64) string {
	switch {
	case overallScore >= 80:
		return model.ReadinessHigh
	case overallScore >= 60:
		return model.ReadinessMedium
	default:
		return model.ReadinessLow
	}
}

func feedbackSummaryText(role string, score float64, readiness string) string {
	return fmt.Sprintf("You scored %.0f/100 for the %s role. Interview readiness: %s.", score, role, readiness)
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func roundScore(score float64) float64 {
	return math.Round(score*100) / 100
}

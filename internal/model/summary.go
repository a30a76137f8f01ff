package model

// Readiness levels derived from the overall score.
const (
	ReadinessLow    = "Low"
	ReadinessMedium = "Medium"
	ReadinessHigh   = "High"
)

// SessionSummary is computed once at completion and stored on the session as
// a JSON column. CategoryScores always carries all three category keys; a
// nil value marks a category with zero answers.
type SessionSummary struct {
	OverallScore    float64             `json:"overall_score"`
	ReadinessLevel  string              `json:"readiness_level"`
	StrongAreas     []string            `json:"strong_areas"`
	WeakAreas       []string            `json:"weak_areas"`
	CategoryScores  map[string]*float64 `json:"category_scores"`
	Recommendations []string            `json:"recommendations"`
	FeedbackSummary string              `json:"feedback_summary"`
}

package dto

import "time"

// QuestionResponseDTO exposes a session question to the respondent.
// Expected keywords are intentionally absent: they drive scoring only.
type QuestionResponseDTO struct {
	ID             string  `json:"id"`
	Text           string  `json:"text"`
	Category       string  `json:"category"`
	Difficulty     string  `json:"difficulty"`
	RelatedSkill   *string `json:"related_skill,omitempty"`
	OrderInSession int     `json:"order_in_session"`
}

// AnswerResponseDTO is one evaluated answer.
type AnswerResponseDTO struct {
	ID             uint      `json:"id"`
	QuestionID     string    `json:"question_id"`
	Text           string    `json:"text"`
	Score          *float64  `json:"score,omitempty"`
	Feedback       string    `json:"feedback,omitempty"`
	Strengths      []string  `json:"strengths"`
	Improvements   []string  `json:"improvements"`
	KeywordsFound  []string  `json:"keywords_found"`
	KeywordsMissed []string  `json:"keywords_missed"`
	AnsweredAt     time.Time `json:"answered_at"`
}

// SummaryResponseDTO is the final readiness assessment of a completed
// session.
type SummaryResponseDTO struct {
	OverallScore    float64             `json:"overall_score"`
	ReadinessLevel  string              `json:"readiness_level"`
	StrongAreas     []string            `json:"strong_areas"`
	WeakAreas       []string            `json:"weak_areas"`
	CategoryScores  map[string]*float64 `json:"category_scores"`
	Recommendations []string            `json:"recommendations"`
	FeedbackSummary string              `json:"feedback_summary"`
}

// SessionResponseDTO is the full session state.
type SessionResponseDTO struct {
	ID              string                `json:"id"`
	TargetRole      string                `json:"target_role"`
	JobDescription  string                `json:"job_description"`
	Difficulty      string                `json:"difficulty"`
	ResumeRef       *string               `json:"resume_ref,omitempty"`
	ExtractedSkills []string              `json:"extracted_skills"`
	Status          string                `json:"status"`
	CurrentIndex    int                   `json:"current_index"`
	Questions       []QuestionResponseDTO `json:"questions"`
	Answers         []AnswerResponseDTO   `json:"answers"`
	Summary         *SummaryResponseDTO   `json:"summary,omitempty"`
	StartedAt       time.Time             `json:"started_at"`
	CompletedAt     *time.Time            `json:"completed_at,omitempty"`
}

// SessionSummaryDTO is the listing form of a session.
type SessionSummaryDTO struct {
	ID           string     `json:"id"`
	TargetRole   string     `json:"target_role"`
	Difficulty   string     `json:"difficulty"`
	Status       string     `json:"status"`
	CurrentIndex int        `json:"current_index"`
	OverallScore *float64   `json:"overall_score,omitempty"`
	StartedAt    time.Time  `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// SubmitAnswerResponseDTO reports the evaluation plus session progress.
// IsReadyToComplete flips once every question has an answer.
type SubmitAnswerResponseDTO struct {
	Evaluation        AnswerResponseDTO    `json:"evaluation"`
	NextQuestion      *QuestionResponseDTO `json:"next_question,omitempty"`
	HasMoreQuestions  bool                 `json:"has_more_questions"`
	IsReadyToComplete bool                 `json:"is_ready_to_complete"`
}

// ResumeMatchResponseDTO is the resume-vs-description analysis result.
type ResumeMatchResponseDTO struct {
	Score           float64  `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
	Summary         string   `json:"summary"`
}

// HealthResponseDTO reports service liveness.
type HealthResponseDTO struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

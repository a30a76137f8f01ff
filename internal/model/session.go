package model

import (
	"time"

	"gorm.io/gorm"
)

// Session statuses. A session starts in_progress and terminates at completed;
// there is no abandoned state, expiry belongs to the persistence layer.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Session difficulties.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Session is the aggregate root of one mock-interview attempt. Questions are
// fixed at creation; Answers grow monotonically, at most one per question.
type Session struct {
	ID              string          `gorm:"primarykey;size:64" json:"id"`
	TargetRole      string          `json:"target_role" gorm:"not null"`
	JobDescription  string          `json:"job_description" gorm:"type:text;not null"`
	Difficulty      string          `json:"difficulty" gorm:"default:'medium'"`
	ResumeRef       *string         `json:"resume_ref,omitempty"`
	ExtractedSkills []string        `json:"extracted_skills" gorm:"serializer:json"`
	Status          string          `json:"status" gorm:"default:'in_progress';index"`
	CurrentIndex    int             `json:"current_index"`
	Questions       []Question      `json:"questions,omitempty" gorm:"foreignKey:SessionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Answers         []Answer        `json:"answers,omitempty" gorm:"foreignKey:SessionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Summary         *SessionSummary `json:"summary,omitempty" gorm:"serializer:json"`
	StartedAt       time.Time       `json:"started_at"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`
}

// QuestionByID returns the session question with the given id, or nil.
func (s *Session) QuestionByID(questionID string) *Question {
	for i := range s.Questions {
		if s.Questions[i].ID == questionID {
			return &s.Questions[i]
		}
	}
	return nil
}

// AnswerFor returns the recorded answer for a question, or nil if the
// question has not been answered yet.
func (s *Session) AnswerFor(questionID string) *Answer {
	for i := range s.Answers {
		if s.Answers[i].QuestionID == questionID {
			return &s.Answers[i]
		}
	}
	return nil
}

// NextQuestion returns the first unanswered question in session order, or
// nil when every question has an answer.
func (s *Session) NextQuestion() *Question {
	for i := range s.Questions {
		if s.AnswerFor(s.Questions[i].ID) == nil {
			return &s.Questions[i]
		}
	}
	return nil
}

// RemainingQuestions counts questions that still have no answer.
func (s *Session) RemainingQuestions() int {
	return len(s.Questions) - len(s.Answers)
}

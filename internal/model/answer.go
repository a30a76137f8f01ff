package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer is created exactly once per question within a session.
// Resubmission for the same question is rejected by the interview service.
type Answer struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	SessionID      string         `json:"session_id" gorm:"not null;index;size:64"`
	QuestionID     string         `json:"question_id" gorm:"not null;index;size:64"`
	Text           string         `json:"text" gorm:"type:text;not null"`
	Score          *float64       `json:"score,omitempty"`
	Feedback       string         `json:"feedback,omitempty" gorm:"type:text"`
	Strengths      []string       `json:"strengths" gorm:"serializer:json"`
	Improvements   []string       `json:"improvements" gorm:"serializer:json"`
	KeywordsFound  []string       `json:"keywords_found" gorm:"serializer:json"`
	KeywordsMissed []string       `json:"keywords_missed" gorm:"serializer:json"`
	AnsweredAt     time.Time      `json:"answered_at"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

package model

import (
	"time"

	"gorm.io/gorm"
)

// Question categories.
const (
	CategoryBehavioral  = "behavioral"
	CategoryTechnical   = "technical"
	CategorySituational = "situational"
)

// Categories lists all question categories in their canonical order.
var Categories = []string{CategoryBehavioral, CategoryTechnical, CategorySituational}

// Question is an immutable per-session copy of a bank template. Expected
// keywords drive scoring only and are never serialized to the respondent.
type Question struct {
	ID               string         `gorm:"primarykey;size:64" json:"id"`
	SessionID        string         `json:"session_id" gorm:"not null;index;size:64"`
	Text             string         `json:"text" gorm:"type:text;not null"`
	Category         string         `json:"category" gorm:"not null"`
	Difficulty       string         `json:"difficulty" gorm:"not null"`
	ExpectedKeywords []string       `json:"-" gorm:"serializer:json"`
	RelatedSkill     *string        `json:"related_skill,omitempty"`
	OrderInSession   int            `json:"order_in_session" gorm:"not null"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

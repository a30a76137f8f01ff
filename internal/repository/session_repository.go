package repository

import (
	"github.com/careerai/interview-service/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionRepository interface {
	Create(session *model.Session) error
	Update(session *model.Session) error
	RecordAnswer(session *model.Session, answer *model.Answer) error
	FindByID(id string) (*model.Session, error)
	FindByIDWithDetails(id string) (*model.Session, error)
	FindRecent(limit int) ([]model.Session, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *model.Session) error {
	// GORM creates the associated questions along with the session.
	return r.db.Create(session).Error
}

// Update persists session fields only. Questions are immutable after
// creation and answers are written through RecordAnswer, so associations
// are deliberately omitted.
func (r *sessionRepository) Update(session *model.Session) error {
	return r.db.Omit(clause.Associations).Save(session).Error
}

// RecordAnswer writes an answer and the session's progress as one
// transaction, so a failed session update never leaves an orphaned answer
// behind.
func (r *sessionRepository) RecordAnswer(session *model.Session, answer *model.Answer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(answer).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(session).Error
	})
}

func (r *sessionRepository) FindByID(id string) (*model.Session, error) {
	var session model.Session
	if err := r.db.First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) FindByIDWithDetails(id string) (*model.Session, error) {
	var session model.Session
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_in_session ASC")
		}).
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.answered_at ASC")
		}).
		First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) FindRecent(limit int) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.Order("started_at DESC").Limit(limit).Find(&sessions).Error
	return sessions, err
}

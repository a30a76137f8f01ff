package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/careerai/interview-service/internal/model"
	"github.com/careerai/interview-service/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// minAnswerLength is the minimum trimmed answer length accepted by
// SubmitAnswer.
const minAnswerLength = 20

// StartSessionInput carries everything needed to open a session.
type StartSessionInput struct {
	TargetRole     string
	JobDescription string
	Difficulty     string
	TotalQuestions int
	ResumeRef      *string
}

// SubmitAnswerResult reports the evaluation outcome plus where the session
// stands afterwards. IsReadyToComplete means every question has an answer;
// Complete itself only requires one.
type SubmitAnswerResult struct {
	Answer            *model.Answer
	NextQuestion      *model.Question
	HasMoreQuestions  bool
	IsReadyToComplete bool
}

// InterviewService owns the session lifecycle: in_progress at creation, one
// answer per question, and a single terminal completion transition. All
// validation happens before any state mutation.
type InterviewService interface {
	Start(ctx context.Context, input StartSessionInput) (*model.Session, error)
	SubmitAnswer(ctx context.Context, sessionID, questionID, text string) (*SubmitAnswerResult, error)
	Complete(ctx context.Context, sessionID string) (*model.Session, error)
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	ListSessions(ctx context.Context, limit int) ([]model.Session, error)
}

type interviewService struct {
	sessionRepo repository.SessionRepository
	selector    QuestionSelectorService
	evaluator   Evaluator
	summaries   SummaryService
}

func NewInterviewService(
	sessionRepo repository.SessionRepository,
	selector QuestionSelectorService,
	evaluator Evaluator,
	summaries SummaryService,
) InterviewService {
	return &interviewService{
		sessionRepo: sessionRepo,
		selector:    selector,
		evaluator:   evaluator,
		summaries:   summaries,
	}
}

func (s *interviewService) Start(ctx context.Context, input StartSessionInput) (*model.Session, error) {
	role := strings.TrimSpace(input.TargetRole)
	if role == "" {
		return nil, fmt.Errorf("%w: target role is required", ErrInvalidInput)
	}

	jobDescription := strings.TrimSpace(input.JobDescription)
	if jobDescription == "" {
		// A description can be synthesized from the role alone.
		jobDescription = fmt.Sprintf("%s position", role)
	}

	difficulty := input.Difficulty
	switch difficulty {
	case "":
		difficulty = model.DifficultyMedium
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
	default:
		return nil, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidInput, input.Difficulty)
	}

	generated, err := s.selector.GenerateQuestions(role, jobDescription, input.TotalQuestions)
	if err != nil {
		return nil, err
	}

	session := &model.Session{
		ID:              uuid.NewString(),
		TargetRole:      role,
		JobDescription:  jobDescription,
		Difficulty:      difficulty,
		ResumeRef:       input.ResumeRef,
		ExtractedSkills: generated.Skills.All(),
		Status:          model.StatusInProgress,
		CurrentIndex:    0,
		StartedAt:       time.Now(),
	}
	for i := range generated.Questions {
		generated.Questions[i].SessionID = session.ID
	}
	session.Questions = generated.Questions

	if err := s.sessionRepo.Create(session); err != nil {
		log.Error().Err(err).Str("role", role).Msg("Failed to persist new session")
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	log.Info().Str("session_id", session.ID).Str("role", role).Int("questions", len(session.Questions)).Msg("Interview session started")
	return session, nil
}

func (s *interviewService) SubmitAnswer(ctx context.Context, sessionID, questionID, text string) (*SubmitAnswerResult, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	// Guards run in full before any call to the evaluator or any write.
	if session.Status == model.StatusCompleted {
		return nil, fmt.Errorf("%w: session %s", ErrAlreadyCompleted, sessionID)
	}
	question := session.QuestionByID(questionID)
	if question == nil {
		return nil, fmt.Errorf("%w: question %s is not part of session %s", ErrNotFound, questionID, sessionID)
	}
	if session.AnswerFor(questionID) != nil {
		return nil, fmt.Errorf("%w: question %s", ErrAlreadyAnswered, questionID)
	}
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minAnswerLength {
		return nil, fmt.Errorf("%w: answer must be at least %d characters", ErrInvalidInput, minAnswerLength)
	}

	sc := SessionContext{JobRole: session.TargetRole, JobDescription: session.JobDescription}
	evaluation, err := s.evaluator.EvaluateAnswer(ctx, question, trimmed, sc)
	if err != nil {
		// The failover evaluator degrades internally; reaching here means an
		// unclassified failure that must surface unchanged.
		log.Error().Err(err).Str("session_id", sessionID).Msg("Answer evaluation failed")
		return nil, fmt.Errorf("failed to evaluate answer: %w", err)
	}

	score := clampScore(evaluation.Score)
	answer := &model.Answer{
		SessionID:      session.ID,
		QuestionID:     question.ID,
		Text:           trimmed,
		Score:          &score,
		Feedback:       evaluation.Feedback,
		Strengths:      evaluation.Strengths,
		Improvements:   evaluation.Improvements,
		KeywordsFound:  evaluation.KeywordsFound,
		KeywordsMissed: evaluation.KeywordsMissed,
		AnsweredAt:     time.Now(),
	}
	// The answer and the session progress go into one transaction: a failed
	// write must not leave a persisted answer the client believes rejected.
	session.CurrentIndex = len(session.Answers) + 1
	if err := s.sessionRepo.RecordAnswer(session, answer); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("Failed to persist answer")
		return nil, fmt.Errorf("failed to record answer: %w", err)
	}
	session.Answers = append(session.Answers, *answer)

	remaining := session.RemainingQuestions()
	return &SubmitAnswerResult{
		Answer:            answer,
		NextQuestion:      session.NextQuestion(),
		HasMoreQuestions:  remaining > 0,
		IsReadyToComplete: remaining == 0,
	}, nil
}

func (s *interviewService) Complete(ctx context.Context, sessionID string) (*model.Session, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status == model.StatusCompleted {
		return nil, fmt.Errorf("%w: session %s", ErrAlreadyCompleted, sessionID)
	}
	if len(session.Answers) == 0 {
		return nil, fmt.Errorf("%w: session %s", ErrNoAnswers, sessionID)
	}

	sc := SessionContext{JobRole: session.TargetRole, JobDescription: session.JobDescription}
	summary, err := s.evaluator.Summarize(ctx, sc, answeredQuestions(session))
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("Session summarization failed")
		return nil, fmt.Errorf("failed to summarize session: %w", err)
	}
	summary = s.summaries.Normalize(sc, summary)

	now := time.Now()
	session.Summary = summary
	session.CompletedAt = &now
	session.Status = model.StatusCompleted

	if err := s.sessionRepo.Update(session); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("Failed to persist completed session")
		return nil, fmt.Errorf("failed to complete session: %w", err)
	}

	log.Info().
		Str("session_id", sessionID).
		Float64("overall_score", summary.OverallScore).
		Str("readiness", summary.ReadinessLevel).
		Msg("Interview session completed")
	return session, nil
}

func (s *interviewService) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	return s.loadSession(sessionID)
}

func (s *interviewService) ListSessions(ctx context.Context, limit int) ([]model.Session, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	sessions, err := s.sessionRepo.FindRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

func (s *interviewService) loadSession(sessionID string) (*model.Session, error) {
	session, err := s.sessionRepo.FindByIDWithDetails(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
		}
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	return session, nil
}

// answeredQuestions projects the session's answers into summarization input,
// resolving each answer's category through its question.
func answeredQuestions(session *model.Session) []AnsweredQuestion {
	out := make([]AnsweredQuestion, 0, len(session.Answers))
	for _, a := range session.Answers {
		category := model.CategoryTechnical
		if q := session.QuestionByID(a.QuestionID); q != nil {
			category = q.Category
		}
		score := 0.0
		if a.Score != nil {
			score = *a.Score
		}
		out = append(out, AnsweredQuestion{
			Category:     category,
			Score:        score,
			Strengths:    a.Strengths,
			Improvements: a.Improvements,
		})
	}
	return out
}

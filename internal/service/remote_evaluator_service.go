package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/careerai/interview-service/config"
	"github.com/careerai/interview-service/internal/model"
	"github.com/rs/zerolog/log"
)

// remoteEvaluator calls the external ml-service. Any transport failure,
// timeout, or non-2xx status surfaces as errEvaluatorUnavailable so the
// failover decorator can substitute the local fallback.
type remoteEvaluator struct {
	baseURL string
	client  *http.Client
}

// NewRemoteEvaluator builds the HTTP evaluator. The client timeout bounds
// every call so a slow ml-service degrades instead of hanging the session.
func NewRemoteEvaluator(cfg *config.Config) Evaluator {
	timeout := time.Duration(cfg.Evaluator.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &remoteEvaluator{
		baseURL: cfg.Evaluator.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type evaluateRequest struct {
	QuestionText     string   `json:"question_text"`
	Category         string   `json:"category"`
	AnswerText       string   `json:"answer_text"`
	ExpectedKeywords []string `json:"expected_keywords"`
	JobRole          string   `json:"job_role"`
	JobDescription   string   `json:"job_description"`
}

type evaluateResponse struct {
	Score          float64  `json:"score"`
	Feedback       string   `json:"feedback"`
	Strengths      []string `json:"strengths"`
	Improvements   []string `json:"improvements"`
	KeywordsFound  []string `json:"keywords_found"`
	KeywordsMissed []string `json:"keywords_missed"`
}

type summaryRequest struct {
	JobRole        string             `json:"job_role"`
	JobDescription string             `json:"job_description"`
	Answers        []AnsweredQuestion `json:"answers"`
}

type summaryResponse struct {
	OverallScore    float64             `json:"overall_score"`
	ReadinessLevel  string              `json:"readiness_level"`
	StrongAreas     []string            `json:"strong_areas"`
	WeakAreas       []string            `json:"weak_areas"`
	CategoryScores  map[string]*float64 `json:"category_scores"`
	Recommendations []string            `json:"recommendations"`
	FeedbackSummary string              `json:"feedback_summary"`
}

func (r *remoteEvaluator) EvaluateAnswer(ctx context.Context, question *model.Question, answerText string, sc SessionContext) (*Evaluation, error) {
	reqBody := evaluateRequest{
		QuestionText:     question.Text,
		Category:         question.Category,
		AnswerText:       answerText,
		ExpectedKeywords: question.ExpectedKeywords,
		JobRole:          sc.JobRole,
		JobDescription:   sc.JobDescription,
	}

	var resp evaluateResponse
	if err := r.post(ctx, "/interview/evaluate", reqBody, &resp); err != nil {
		return nil, err
	}

	return &Evaluation{
		Score:          resp.Score,
		Feedback:       resp.Feedback,
		Strengths:      resp.Strengths,
		Improvements:   resp.Improvements,
		KeywordsFound:  resp.KeywordsFound,
		KeywordsMissed: resp.KeywordsMissed,
	}, nil
}

func (r *remoteEvaluator) Summarize(ctx context.Context, sc SessionContext, answers []AnsweredQuestion) (*model.SessionSummary, error) {
	reqBody := summaryRequest{
		JobRole:        sc.JobRole,
		JobDescription: sc.JobDescription,
		Answers:        answers,
	}

	var resp summaryResponse
	if err := r.post(ctx, "/interview/summary", reqBody, &resp); err != nil {
		return nil, err
	}

	return &model.SessionSummary{
		OverallScore:    resp.OverallScore,
		ReadinessLevel:  resp.ReadinessLevel,
		StrongAreas:     resp.StrongAreas,
		WeakAreas:       resp.WeakAreas,
		CategoryScores:  resp.CategoryScores,
		Recommendations: resp.Recommendations,
		FeedbackSummary: resp.FeedbackSummary,
	}, nil
}

func (r *remoteEvaluator) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal evaluator request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build evaluator request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", errEvaluatorUnavailable, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("Evaluator returned non-2xx status")
		return fmt.Errorf("%w: %s returned status %d", errEvaluatorUnavailable, path, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read %s response: %v", errEvaluatorUnavailable, path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decode %s response: %v", errEvaluatorUnavailable, path, err)
	}
	return nil
}

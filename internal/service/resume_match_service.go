package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/careerai/interview-service/config"
	"github.com/rs/zerolog/log"
)

// ResumeMatch reports how well a resume covers a job description.
type ResumeMatch struct {
	Score           float64  `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
	Summary         string   `json:"summary"`
}

// ResumeMatchService scores resume text against a job description. File
// parsing happens upstream; this service only sees extracted text.
type ResumeMatchService interface {
	Match(ctx context.Context, role, resumeText, jobDescription string) (*ResumeMatch, error)
}

type resumeMatchService struct {
	baseURL   string
	client    *http.Client
	extractor SkillExtractorService
}

func NewResumeMatchService(cfg *config.Config, extractor SkillExtractorService) ResumeMatchService {
	timeout := time.Duration(cfg.Evaluator.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &resumeMatchService{
		baseURL:   cfg.Evaluator.BaseURL,
		client:    &http.Client{Timeout: timeout},
		extractor: extractor,
	}
}

type analyzeRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

type analyzeResponse struct {
	Score           float64  `json:"score"`
	MissingKeywords []string `json:"missing_keywords"`
	MatchedKeywords []string `json:"matched_keywords"`
	Summary         string   `json:"summary"`
}

// Match prefers the ml-service /analyze endpoint and degrades to a local
// dictionary-overlap score on any failure, mirroring the interview
// evaluator's two-tier design.
func (s *resumeMatchService) Match(ctx context.Context, role, resumeText, jobDescription string) (*ResumeMatch, error) {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobDescription) == "" {
		return nil, fmt.Errorf("%w: resume text and job description are required", ErrInvalidInput)
	}

	match, err := s.remoteAnalyze(ctx, resumeText, jobDescription)
	if err != nil {
		log.Warn().Err(err).Msg("Resume analysis service unavailable, using local keyword overlap")
		match = s.localMatch(resumeText, jobDescription)
	}

	if match.Summary == "" {
		match.Summary = fmt.Sprintf("Your resume matches %.0f%% of the %s job description.", match.Score, role)
	}
	return match, nil
}

func (s *resumeMatchService) remoteAnalyze(ctx context.Context, resumeText, jobDescription string) (*ResumeMatch, error) {
	payload, err := json.Marshal(analyzeRequest{ResumeText: resumeText, JobDescription: jobDescription})
	if err != nil {
		return nil, fmt.Errorf("marshal analyze request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/analyze", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build analyze request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: /analyze: %v", errEvaluatorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: /analyze returned status %d", errEvaluatorUnavailable, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read /analyze response: %v", errEvaluatorUnavailable, err)
	}
	var parsed analyzeResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decode /analyze response: %v", errEvaluatorUnavailable, err)
	}

	return &ResumeMatch{
		Score:           clampScore(parsed.Score),
		MatchedKeywords: parsed.MatchedKeywords,
		MissingKeywords: parsed.MissingKeywords,
		Summary:         parsed.Summary,
	}, nil
}

// localMatch scores coverage of the job description's dictionary skills by
// the resume text.
func (s *resumeMatchService) localMatch(resumeText, jobDescription string) *ResumeMatch {
	skills := s.extractor.ExtractSkills(jobDescription).All()
	loweredResume := strings.ToLower(resumeText)

	matched := []string{}
	missing := []string{}
	for _, skill := range skills {
		if strings.Contains(loweredResume, skill) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	score := 50.0
	if len(skills) > 0 {
		score = roundScore(float64(len(matched)) / float64(len(skills)) * 100)
	}
	return &ResumeMatch{
		Score:           score,
		MatchedKeywords: matched,
		MissingKeywords: missing,
	}
}

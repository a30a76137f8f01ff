package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/careerai/interview-service/config"
	"github.com/careerai/interview-service/internal/model"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// geminiEvaluator is an alternative remote evaluator backed by Gemini,
// selected with EVALUATOR_PROVIDER=gemini. Like the ml-service client it
// reports errEvaluatorUnavailable on any failure and lets the failover
// decorator handle degradation.
type geminiEvaluator struct {
	client    *genai.GenerativeModel
	summaries SummaryService
}

func NewGeminiEvaluator(cfg *config.Config, summaries SummaryService) (Evaluator, error) {
	if cfg.Evaluator.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Gemini evaluator will be non-functional.")
		return &geminiEvaluator{client: nil, summaries: summaries}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Evaluator.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiEvaluator{
		client:    client.GenerativeModel("gemini-1.5-flash"),
		summaries: summaries,
	}, nil
}

func (g *geminiEvaluator) EvaluateAnswer(ctx context.Context, question *model.Question, answerText string, sc SessionContext) (*Evaluation, error) {
	if g.client == nil {
		return nil, fmt.Errorf("%w: gemini client not initialized", errEvaluatorUnavailable)
	}

	var prompt strings.Builder
	prompt.WriteString("You are an experienced interviewer evaluating a mock interview answer.\n")
	prompt.WriteString(fmt.Sprintf("The candidate is applying for the role: %s.\n", sc.JobRole))
	if sc.JobDescription != "" {
		prompt.WriteString("Job description:\n---\n")
		prompt.WriteString(sc.JobDescription)
		prompt.WriteString("\n---\n")
	}
	prompt.WriteString(fmt.Sprintf("\nQuestion category: %s\nQuestion: %s\n", question.Category, question.Text))
	if question.Category == model.CategoryBehavioral {
		prompt.WriteString("For behavioral questions, evaluate the use of the STAR structure (Situation, Task, Action, Result).\n")
	}
	prompt.WriteString("\nCandidate's answer:\n---\n")
	prompt.WriteString(answerText)
	prompt.WriteString("\n---\n\n")
	prompt.WriteString(`Provide your evaluation strictly in this format:
Score: [a number from 0 to 100]
Feedback:
[2-4 sentences of constructive feedback]
`)

	raw, err := g.generate(ctx, prompt.String())
	if err != nil {
		return nil, err
	}

	scoreStr, feedback, err := parseScoreAndFeedback(raw)
	if err != nil {
		log.Warn().Err(err).Str("raw", raw).Msg("Failed to parse Gemini evaluation response")
		return nil, fmt.Errorf("%w: %v", errEvaluatorUnavailable, err)
	}
	score, err := strconv.ParseFloat(scoreStr, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: could not parse score %q", errEvaluatorUnavailable, scoreStr)
	}

	found, missed := matchAnswerKeywords(answerText, question.ExpectedKeywords)
	eval := &Evaluation{
		Score:          clampScore(score),
		Feedback:       feedback,
		Strengths:      []string{},
		Improvements:   []string{},
		KeywordsFound:  found,
		KeywordsMissed: missed,
	}
	if len(missed) > 0 {
		eval.Improvements = append(eval.Improvements, fmt.Sprintf("Consider addressing: %s", strings.Join(missed, ", ")))
	}
	if len(found) >= len(missed) && len(found) > 0 {
		eval.Strengths = append(eval.Strengths, "Good coverage of key concepts")
	}
	return eval, nil
}

// Summarize computes the structural summary locally and asks Gemini only for
// the narrative parts: the feedback summary and recommendations.
func (g *geminiEvaluator) Summarize(ctx context.Context, sc SessionContext, answers []AnsweredQuestion) (*model.SessionSummary, error) {
	if g.client == nil {
		return nil, fmt.Errorf("%w: gemini client not initialized", errEvaluatorUnavailable)
	}

	base := g.summaries.BuildFallback(sc, answers)

	var prompt strings.Builder
	prompt.WriteString("You are an interview coach writing a closing assessment of a mock interview.\n")
	prompt.WriteString(fmt.Sprintf("Role: %s. Overall score: %.0f/100. Readiness: %s.\n", sc.JobRole, base.OverallScore, base.ReadinessLevel))
	prompt.WriteString("Per-answer results (category, score):\n")
	for _, a := range answers {
		prompt.WriteString(fmt.Sprintf("- %s: %.0f\n", a.Category, a.Score))
	}
	prompt.WriteString(`
Respond strictly in this format:
Summary: [2-3 sentence assessment addressed to the candidate]
Recommendations:
- [recommendation 1]
- [recommendation 2]
- [recommendation 3]
`)

	raw, err := g.generate(ctx, prompt.String())
	if err != nil {
		return nil, err
	}

	summaryText, recommendations, err := parseSummaryAndRecommendations(raw)
	if err != nil {
		log.Warn().Err(err).Str("raw", raw).Msg("Failed to parse Gemini summary response")
		return nil, fmt.Errorf("%w: %v", errEvaluatorUnavailable, err)
	}

	base.FeedbackSummary = summaryText
	if len(recommendations) > 0 {
		base.Recommendations = recommendations
	}
	return base, nil
}

func (g *geminiEvaluator) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error")
		return "", fmt.Errorf("%w: %v", errEvaluatorUnavailable, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: gemini returned no content", errEvaluatorUnavailable)
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("%w: gemini returned no text content", errEvaluatorUnavailable)
	}
	return text.String(), nil
}

func parseScoreAndFeedback(rawResponse string) (scoreStr string, feedbackStr string, err error) {
	scorePrefix := "Score:"
	feedbackPrefix := "Feedback:"

	scoreIndex := strings.Index(rawResponse, scorePrefix)
	if scoreIndex == -1 {
		return "", rawResponse, fmt.Errorf("response does not contain 'Score:' prefix")
	}

	endOfScoreLine := strings.Index(rawResponse[scoreIndex:], "\n")
	if endOfScoreLine == -1 {
		scoreStr = strings.TrimSpace(rawResponse[scoreIndex+len(scorePrefix):])
	} else {
		scoreStr = strings.TrimSpace(rawResponse[scoreIndex+len(scorePrefix) : scoreIndex+endOfScoreLine])
	}

	feedbackIndex := strings.Index(rawResponse, feedbackPrefix)
	if feedbackIndex != -1 && feedbackIndex > scoreIndex {
		feedbackStr = strings.TrimSpace(rawResponse[feedbackIndex+len(feedbackPrefix):])
	} else if endOfScoreLine != -1 {
		feedbackStr = strings.TrimSpace(rawResponse[scoreIndex+endOfScoreLine+1:])
	}
	if feedbackStr == "" {
		feedbackStr = "Feedback not found in the expected format after the score."
	}

	if parts := strings.Fields(scoreStr); len(parts) > 0 {
		scoreStr = parts[0]
	}
	return scoreStr, feedbackStr, nil
}

func parseSummaryAndRecommendations(rawResponse string) (string, []string, error) {
	summaryPrefix := "Summary:"
	recPrefix := "Recommendations:"

	summaryIndex := strings.Index(rawResponse, summaryPrefix)
	if summaryIndex == -1 {
		return "", nil, fmt.Errorf("response does not contain 'Summary:' prefix")
	}

	rest := rawResponse[summaryIndex+len(summaryPrefix):]
	summaryText := rest
	var recommendations []string

	if recIndex := strings.Index(rest, recPrefix); recIndex != -1 {
		summaryText = rest[:recIndex]
		for _, line := range strings.Split(rest[recIndex+len(recPrefix):], "\n") {
			line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "-"))
			if line != "" {
				recommendations = append(recommendations, line)
			}
		}
	}
	return strings.TrimSpace(summaryText), recommendations, nil
}

// matchAnswerKeywords splits expected keywords into those present in the
// answer (case-insensitive substring) and those missing.
func matchAnswerKeywords(answerText string, expected []string) (found []string, missed []string) {
	found = []string{}
	missed = []string{}
	lowered := strings.ToLower(answerText)
	for _, kw := range expected {
		if strings.Contains(lowered, strings.ToLower(kw)) {
			found = append(found, kw)
		} else {
			missed = append(missed, kw)
		}
	}
	return found, missed
}

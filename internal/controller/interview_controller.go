package controller

import (
	"net/http"
	"strconv"

	"github.com/careerai/interview-service/internal/dto"
	"github.com/careerai/interview-service/internal/model"
	"github.com/careerai/interview-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type InterviewController struct {
	interviews  service.InterviewService
	resumeMatch service.ResumeMatchService
}

func NewInterviewController(interviews service.InterviewService, resumeMatch service.ResumeMatchService) *InterviewController {
	return &InterviewController{interviews: interviews, resumeMatch: resumeMatch}
}

// StartSession godoc
// @Summary Start an interview session
// @Description Generates a question set from the role and job description and opens a new session.
// @Tags Interviews
// @Accept json
// @Produce json
// @Param session body dto.StartSessionRequest true "Role, job description, difficulty, optional resume reference"
// @Success 201 {object} dto.SessionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input or no questions could be generated"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews [post]
func (c *InterviewController) StartSession(ctx *gin.Context) {
	var req dto.StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("StartSession: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	session, err := c.interviews.Start(ctx.Request.Context(), service.StartSessionInput{
		TargetRole:     req.TargetRole,
		JobDescription: req.JobDescription,
		Difficulty:     req.Difficulty,
		TotalQuestions: req.TotalQuestions,
		ResumeRef:      req.ResumeRef,
	})
	if err != nil {
		respondError(ctx, err, "Failed to start interview session")
		return
	}
	ctx.JSON(http.StatusCreated, sessionToDTO(session))
}

// GetSession godoc
// @Summary Read an interview session
// @Description Returns the full session state with questions, answers and, once completed, the summary.
// @Tags Interviews
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews/{session_id} [get]
func (c *InterviewController) GetSession(ctx *gin.Context) {
	session, err := c.interviews.GetSession(ctx.Request.Context(), ctx.Param("session_id"))
	if err != nil {
		respondError(ctx, err, "Failed to read interview session")
		return
	}
	ctx.JSON(http.StatusOK, sessionToDTO(session))
}

// ListSessions godoc
// @Summary List recent interview sessions
// @Tags Interviews
// @Produce json
// @Param limit query int false "Maximum number of sessions (default 20)"
// @Success 200 {array} dto.SessionSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews [get]
func (c *InterviewController) ListSessions(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid limit format"})
			return
		}
		limit = parsed
	}

	sessions, err := c.interviews.ListSessions(ctx.Request.Context(), limit)
	if err != nil {
		respondError(ctx, err, "Failed to list interview sessions")
		return
	}

	summaries := make([]dto.SessionSummaryDTO, 0, len(sessions))
	for i := range sessions {
		summaries = append(summaries, sessionToSummaryDTO(&sessions[i]))
	}
	ctx.JSON(http.StatusOK, summaries)
}

// SubmitAnswer godoc
// @Summary Submit an answer for a session question
// @Description Evaluates the answer (with local fallback when the evaluator is down), records it, and reports session progress.
// @Tags Interviews
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param answer body dto.SubmitAnswerRequest true "Question ID and answer text"
// @Success 200 {object} dto.SubmitAnswerResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Answer too short"
// @Failure 404 {object} dto.ErrorResponse "Session or question not found"
// @Failure 409 {object} dto.ErrorResponse "Question already answered or session already completed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews/{session_id}/answers [post]
func (c *InterviewController) SubmitAnswer(ctx *gin.Context) {
	var req dto.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAnswer: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.interviews.SubmitAnswer(ctx.Request.Context(), ctx.Param("session_id"), req.QuestionID, req.Text)
	if err != nil {
		respondError(ctx, err, "Failed to submit answer")
		return
	}

	resp := dto.SubmitAnswerResponseDTO{
		Evaluation:        answerToDTO(result.Answer),
		HasMoreQuestions:  result.HasMoreQuestions,
		IsReadyToComplete: result.IsReadyToComplete,
	}
	if result.NextQuestion != nil {
		next := questionToDTO(result.NextQuestion)
		resp.NextQuestion = &next
	}
	ctx.JSON(http.StatusOK, resp)
}

// CompleteSession godoc
// @Summary Complete an interview session
// @Description Aggregates all evaluations into the final summary and moves the session to its terminal state.
// @Tags Interviews
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "No answers submitted yet"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session already completed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews/{session_id}/complete [post]
func (c *InterviewController) CompleteSession(ctx *gin.Context) {
	session, err := c.interviews.Complete(ctx.Request.Context(), ctx.Param("session_id"))
	if err != nil {
		respondError(ctx, err, "Failed to complete interview session")
		return
	}
	ctx.JSON(http.StatusOK, sessionToDTO(session))
}

// MatchResume godoc
// @Summary Score a resume against a job description
// @Tags Resume
// @Accept json
// @Produce json
// @Param match body dto.ResumeMatchRequest true "Role, resume text and job description"
// @Success 200 {object} dto.ResumeMatchResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing resume text or job description"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /resume/match [post]
func (c *InterviewController) MatchResume(ctx *gin.Context) {
	var req dto.ResumeMatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("MatchResume: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	match, err := c.resumeMatch.Match(ctx.Request.Context(), req.Role, req.ResumeText, req.JobDescription)
	if err != nil {
		respondError(ctx, err, "Failed to analyze resume")
		return
	}

	var resp dto.ResumeMatchResponseDTO
	if err := copier.Copy(&resp, match); err != nil {
		log.Error().Err(err).Msg("MatchResume: Failed to copy result to DTO")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error preparing response"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Health godoc
// @Summary Service health
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponseDTO
// @Router /healthz [get]
func (c *InterviewController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponseDTO{Status: "healthy", Version: "1.0.0"})
}

func respondError(ctx *gin.Context, err error, message string) {
	status := service.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg(message)
	} else {
		log.Warn().Err(err).Str("path", ctx.FullPath()).Msg(message)
	}
	ctx.JSON(status, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
}

func sessionToDTO(session *model.Session) dto.SessionResponseDTO {
	var resp dto.SessionResponseDTO
	if err := copier.Copy(&resp, session); err != nil {
		log.Error().Err(err).Str("session_id", session.ID).Msg("Failed to copy session to DTO")
	}

	// copier cannot see ExpectedKeywords drop; rebuild the nested lists so
	// the response shape is explicit.
	resp.Questions = make([]dto.QuestionResponseDTO, 0, len(session.Questions))
	for i := range session.Questions {
		resp.Questions = append(resp.Questions, questionToDTO(&session.Questions[i]))
	}
	resp.Answers = make([]dto.AnswerResponseDTO, 0, len(session.Answers))
	for i := range session.Answers {
		resp.Answers = append(resp.Answers, answerToDTO(&session.Answers[i]))
	}
	if session.ExtractedSkills == nil {
		resp.ExtractedSkills = []string{}
	}
	if session.Summary != nil {
		var summary dto.SummaryResponseDTO
		if err := copier.Copy(&summary, session.Summary); err == nil {
			resp.Summary = &summary
		}
	}
	return resp
}

func sessionToSummaryDTO(session *model.Session) dto.SessionSummaryDTO {
	summary := dto.SessionSummaryDTO{
		ID:           session.ID,
		TargetRole:   session.TargetRole,
		Difficulty:   session.Difficulty,
		Status:       session.Status,
		CurrentIndex: session.CurrentIndex,
		StartedAt:    session.StartedAt,
		CompletedAt:  session.CompletedAt,
	}
	if session.Summary != nil {
		score := session.Summary.OverallScore
		summary.OverallScore = &score
	}
	return summary
}

func questionToDTO(question *model.Question) dto.QuestionResponseDTO {
	return dto.QuestionResponseDTO{
		ID:             question.ID,
		Text:           question.Text,
		Category:       question.Category,
		Difficulty:     question.Difficulty,
		RelatedSkill:   question.RelatedSkill,
		OrderInSession: question.OrderInSession,
	}
}

func answerToDTO(answer *model.Answer) dto.AnswerResponseDTO {
	resp := dto.AnswerResponseDTO{
		ID:             answer.ID,
		QuestionID:     answer.QuestionID,
		Text:           answer.Text,
		Score:          answer.Score,
		Feedback:       answer.Feedback,
		Strengths:      answer.Strengths,
		Improvements:   answer.Improvements,
		KeywordsFound:  answer.KeywordsFound,
		KeywordsMissed: answer.KeywordsMissed,
		AnsweredAt:     answer.AnsweredAt,
	}
	if resp.Strengths == nil {
		resp.Strengths = []string{}
	}
	if resp.Improvements == nil {
		resp.Improvements = []string{}
	}
	if resp.KeywordsFound == nil {
		resp.KeywordsFound = []string{}
	}
	if resp.KeywordsMissed == nil {
		resp.KeywordsMissed = []string{}
	}
	return resp
}

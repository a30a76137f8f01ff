package dto

// StartSessionRequest opens a new interview session. JobDescription may be
// omitted; the service synthesizes one from the role.
type StartSessionRequest struct {
	TargetRole     string  `json:"target_role" binding:"required"`
	JobDescription string  `json:"job_description"`
	Difficulty     string  `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	TotalQuestions int     `json:"total_questions" binding:"omitempty,min=4,max=12"`
	ResumeRef      *string `json:"resume_ref"`
}

// SubmitAnswerRequest records one answer for one session question.
type SubmitAnswerRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	Text       string `json:"text" binding:"required"`
}

// ResumeMatchRequest scores resume text against a job description. Text
// extraction from files happens before this API is called.
type ResumeMatchRequest struct {
	Role           string `json:"role" binding:"required"`
	ResumeText     string `json:"resume_text" binding:"required"`
	JobDescription string `json:"job_description" binding:"required"`
}

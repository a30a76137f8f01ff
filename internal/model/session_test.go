package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSession() *Session {
	return &Session{
		ID:     "s1",
		Status: StatusInProgress,
		Questions: []Question{
			{ID: "q1", OrderInSession: 1},
			{ID: "q2", OrderInSession: 2},
			{ID: "q3", OrderInSession: 3},
		},
		Answers: []Answer{
			{QuestionID: "q1"},
		},
	}
}

func TestSession_QuestionByID(t *testing.T) {
	s := sampleSession()

	require.NotNil(t, s.QuestionByID("q2"))
	assert.Equal(t, "q2", s.QuestionByID("q2").ID)
	assert.Nil(t, s.QuestionByID("unknown"))
}

func TestSession_AnswerFor(t *testing.T) {
	s := sampleSession()

	assert.NotNil(t, s.AnswerFor("q1"))
	assert.Nil(t, s.AnswerFor("q2"))
}

func TestSession_NextQuestion(t *testing.T) {
	s := sampleSession()

	next := s.NextQuestion()
	require.NotNil(t, next)
	assert.Equal(t, "q2", next.ID)

	s.Answers = append(s.Answers, Answer{QuestionID: "q2"}, Answer{QuestionID: "q3"})
	assert.Nil(t, s.NextQuestion())
}

func TestSession_RemainingQuestions(t *testing.T) {
	s := sampleSession()

	assert.Equal(t, 2, s.RemainingQuestions())

	s.Answers = append(s.Answers, Answer{QuestionID: "q2"})
	assert.Equal(t, 1, s.RemainingQuestions())
}

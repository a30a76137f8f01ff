package service

import (
	"errors"
	"net/http"
)

// Business error taxonomy. Controllers map these to HTTP statuses via
// HTTPStatus; anything unclassified is treated as an internal failure.
var (
	// ErrInvalidInput covers a missing role and a too-short answer text.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound covers unknown session and question id references.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyAnswered rejects a second answer for the same question.
	ErrAlreadyAnswered = errors.New("question already answered")
	// ErrAlreadyCompleted rejects any mutation of a completed session.
	ErrAlreadyCompleted = errors.New("session already completed")
	// ErrNoAnswers rejects completing a session with zero answers.
	ErrNoAnswers = errors.New("session has no answers")
	// ErrGenerationFailure signals the selector produced zero questions.
	ErrGenerationFailure = errors.New("question generation produced no questions")

	// errEvaluatorUnavailable is internal only: the failover evaluator
	// consumes it and substitutes the local fallback, so it never reaches
	// a caller.
	errEvaluatorUnavailable = errors.New("evaluator unavailable")
)

// HTTPStatus returns the status code a controller should respond with for a
// business error.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrNoAnswers), errors.Is(err, ErrGenerationFailure):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyAnswered), errors.Is(err, ErrAlreadyCompleted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

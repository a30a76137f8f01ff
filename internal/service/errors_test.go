package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid input", ErrInvalidInput, http.StatusBadRequest},
		{"no answers", ErrNoAnswers, http.StatusBadRequest},
		{"generation failure", ErrGenerationFailure, http.StatusBadRequest},
		{"not found", ErrNotFound, http.StatusNotFound},
		{"already answered", ErrAlreadyAnswered, http.StatusConflict},
		{"already completed", ErrAlreadyCompleted, http.StatusConflict},
		{"unclassified", errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, HTTPStatus(tc.err))
		})
	}
}

func TestHTTPStatus_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("%w: question q1", ErrAlreadyAnswered)
	assert.Equal(t, http.StatusConflict, HTTPStatus(wrapped))

	doubleWrapped := fmt.Errorf("submit failed: %w", fmt.Errorf("%w: session s1", ErrNotFound))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(doubleWrapped))
}

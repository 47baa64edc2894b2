package service

import (
	"errors"
	"strings"
)

var (
	ErrExamNotFound     = errors.New("exam not found")
	ErrResultNotFound   = errors.New("result not found")
	ErrDuplicateAttempt = errors.New("exam already attempted")
	ErrExamInactive     = errors.New("exam is not active")
)

// ValidationError lists every problem found in exam authoring input.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid exam: " + strings.Join(e.Problems, "; ")
}

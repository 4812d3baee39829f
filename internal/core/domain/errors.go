package domain

import "errors"

var (
	ErrPollNotFound = errors.New("poll not found")

	ErrTitleRequired     = &ValidationError{Field: "title", Message: "Title is required"}
	ErrQuestionsRequired = &ValidationError{Field: "questions", Message: "Questions are required"}
	ErrResponsesRequired = &ValidationError{Field: "responses", Message: "Responses are required"}
)

// ValidationError reports a required field that was missing or empty on create.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

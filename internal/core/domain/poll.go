package domain

import "time"

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeRating         QuestionType = "rating"
	QuestionTypeText           QuestionType = "text"
)

// IsKnown reports whether the aggregator has a rule for t.
func (t QuestionType) IsKnown() bool {
	switch t {
	case QuestionTypeMultipleChoice, QuestionTypeRating, QuestionTypeText:
		return true
	}
	return false
}

type Poll struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
	CreatedAt   time.Time  `json:"created_at"`
	Active      bool       `json:"active"`
}

// Question is embedded in a Poll. Answers refer to it by its position.
type Question struct {
	Question string       `json:"question"`
	Type     QuestionType `json:"type"`
	Options  []string     `json:"options,omitempty"`
}

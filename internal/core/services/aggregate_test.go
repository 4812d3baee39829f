package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/bookclub-poll/internal/core/domain"
)

func ratingPoll() *domain.Poll {
	return &domain.Poll{
		ID:    "poll-1",
		Title: "Book Pick",
		Questions: []domain.Question{
			{Question: "Rate it", Type: domain.QuestionTypeRating, Options: []string{"1", "2", "3", "4", "5"}},
		},
	}
}

func answers(values ...map[string]string) []*domain.Response {
	out := make([]*domain.Response, 0, len(values))
	for _, v := range values {
		out = append(out, &domain.Response{PollID: "poll-1", Responses: v})
	}
	return out
}

func TestAggregateNoResponses(t *testing.T) {
	poll := &domain.Poll{
		ID:    "poll-1",
		Title: "Empty",
		Questions: []domain.Question{
			{Question: "Pick", Type: domain.QuestionTypeMultipleChoice, Options: []string{"a", "b"}},
			{Question: "Rate", Type: domain.QuestionTypeRating},
			{Question: "Say", Type: domain.QuestionTypeText},
		},
	}

	summary := Aggregate(poll, nil)

	assert.Equal(t, "poll-1", summary.PollID)
	assert.Equal(t, "Empty", summary.PollTitle)
	assert.Equal(t, 0, summary.TotalResponses)
	require.Len(t, summary.Questions, 3)
	for i, q := range summary.Questions {
		assert.Equal(t, poll.Questions[i].Question, q.Question)
		assert.Equal(t, poll.Questions[i].Type, q.Type)
		assert.NotNil(t, q.Answers)
		assert.Empty(t, q.Answers)
		assert.Nil(t, q.TextResponses)
	}
}

func TestAggregateRatingScenario(t *testing.T) {
	summary := Aggregate(ratingPoll(), answers(
		map[string]string{"0": "5"},
		map[string]string{"0": "5"},
	))

	assert.Equal(t, 2, summary.TotalResponses)
	require.Len(t, summary.Questions, 1)
	assert.Equal(t, map[string]int{"5": 2}, summary.Questions[0].Answers)
	assert.Nil(t, summary.Questions[0].TextResponses)
}

func TestAggregateTextScenario(t *testing.T) {
	poll := ratingPoll()
	poll.Questions[0].Type = domain.QuestionTypeText

	summary := Aggregate(poll, answers(
		map[string]string{"0": "Great book"},
		map[string]string{"0": ""},
	))

	assert.Equal(t, 2, summary.TotalResponses)
	assert.Equal(t, []string{"Great book"}, summary.Questions[0].TextResponses)
	assert.Empty(t, summary.Questions[0].Answers)
}

func TestAggregateMultipleChoiceCounts(t *testing.T) {
	poll := &domain.Poll{
		ID: "poll-1",
		Questions: []domain.Question{
			{Question: "Pick", Type: domain.QuestionTypeMultipleChoice, Options: []string{"Yes", "No"}},
			{Question: "Why", Type: domain.QuestionTypeText},
		},
	}
	responses := answers(
		map[string]string{"0": "Yes", "1": "loved it"},
		map[string]string{"0": "yes"},
		map[string]string{"0": "No", "1": "too long"},
		map[string]string{"0": "Yes"},
		map[string]string{"1": "no vote"},
		map[string]string{"0": ""},
	)

	summary := Aggregate(poll, responses)

	assert.Equal(t, 6, summary.TotalResponses)

	pick := summary.Questions[0]
	assert.Equal(t, map[string]int{"Yes": 2, "yes": 1, "No": 1}, pick.Answers)

	total := 0
	for _, n := range pick.Answers {
		total += n
	}
	assert.Equal(t, 4, total)

	why := summary.Questions[1]
	assert.Empty(t, why.Answers)
	assert.Equal(t, []string{"loved it", "too long", "no vote"}, why.TextResponses)
}

func TestAggregateIgnoresOutOfRangeKeys(t *testing.T) {
	summary := Aggregate(ratingPoll(), answers(
		map[string]string{"1": "5", "x": "3", "00": "2"},
	))

	assert.Equal(t, 1, summary.TotalResponses)
	assert.Empty(t, summary.Questions[0].Answers)
}

func TestAggregateUnknownTypeIsNoop(t *testing.T) {
	poll := &domain.Poll{
		ID: "poll-1",
		Questions: []domain.Question{
			{Question: "Typo", Type: domain.QuestionType("multiple-choice")},
		},
	}

	summary := Aggregate(poll, answers(map[string]string{"0": "a"}))

	require.Len(t, summary.Questions, 1)
	assert.Equal(t, domain.QuestionType("multiple-choice"), summary.Questions[0].Type)
	assert.Empty(t, summary.Questions[0].Answers)
	assert.Nil(t, summary.Questions[0].TextResponses)
}

func TestAggregateIsDeterministic(t *testing.T) {
	poll := ratingPoll()
	responses := answers(
		map[string]string{"0": "3"},
		map[string]string{"0": "4"},
		map[string]string{"0": "3"},
	)

	first := Aggregate(poll, responses)
	second := Aggregate(poll, responses)

	assert.Equal(t, first, second)
	assert.Equal(t, map[string]string{"0": "3"}, responses[0].Responses)
}

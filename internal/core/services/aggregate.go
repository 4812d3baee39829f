package services

import (
	"strconv"

	"github.com/vncsmyrnk/bookclub-poll/internal/core/domain"
)

// Aggregate tallies responses per question of poll. Answers are looked up by
// the decimal index of the question; absent or empty answers are skipped.
// It performs no I/O and does not modify its inputs.
func Aggregate(poll *domain.Poll, responses []*domain.Response) *domain.ResultsSummary {
	summary := &domain.ResultsSummary{
		PollID:         poll.ID,
		PollTitle:      poll.Title,
		TotalResponses: len(responses),
		Questions:      make([]domain.QuestionResult, 0, len(poll.Questions)),
	}

	for i, q := range poll.Questions {
		result := domain.QuestionResult{
			Question: q.Question,
			Type:     q.Type,
			Answers:  make(map[string]int),
		}
		key := strconv.Itoa(i)

		for _, resp := range responses {
			if resp == nil {
				continue
			}
			answer := resp.Responses[key]
			if answer == "" {
				continue
			}

			switch q.Type {
			case domain.QuestionTypeMultipleChoice, domain.QuestionTypeRating:
				result.Answers[answer]++
			case domain.QuestionTypeText:
				result.TextResponses = append(result.TextResponses, answer)
			default:
				// no rule for unknown types
			}
		}

		summary.Questions = append(summary.Questions, result)
	}

	return summary
}

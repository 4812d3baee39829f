package domain

import "time"

const AnonymousRespondent = "Anonymous"

type Response struct {
	ID             string            `json:"id"`
	PollID         string            `json:"poll_id"`
	Responses      map[string]string `json:"responses"`
	RespondentName string            `json:"respondent_name"`
	SubmittedAt    time.Time         `json:"submitted_at"`
}

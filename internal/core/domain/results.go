package domain

type ResultsSummary struct {
	PollID         string           `json:"poll_id"`
	PollTitle      string           `json:"poll_title"`
	TotalResponses int              `json:"total_responses"`
	Questions      []QuestionResult `json:"questions"`
}

type QuestionResult struct {
	Question      string         `json:"question"`
	Type          QuestionType   `json:"type"`
	Answers       map[string]int `json:"answers"`
	TextResponses []string       `json:"text_responses,omitempty"`
}

package transport

import "time"

type AnswerResponse struct {
	Answer string `json:"answer"`
	Image  string `json:"image,omitempty"`
}

type SurveyResponse struct {
	ID        string           `json:"id"`
	Question  string           `json:"question"`
	Answers   []AnswerResponse `json:"answers"`
	Date      time.Time        `json:"date"`
	DidAnswer bool             `json:"didAnswer"`
}

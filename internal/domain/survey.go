package domain

import "time"

// SurveyAnswerModel is one selectable answer of a survey.
type SurveyAnswerModel struct {
	Answer string `json:"answer"`
	Image  string `json:"image,omitempty"`
}

// SurveyModel is one entry of the survey listing.
type SurveyModel struct {
	ID        string              `json:"id"`
	Question  string              `json:"question"`
	Answers   []SurveyAnswerModel `json:"answers"`
	Date      time.Time           `json:"date"`
	DidAnswer bool                `json:"didAnswer"`
}

package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Answer struct {
	Answer string `json:"answer" yaml:"answer"`
	Image  string `json:"image,omitempty" yaml:"image,omitempty"`
}

type Survey struct {
	ID        uuid.UUID
	Question  string
	Answers   []Answer
	Date      time.Time
	DidAnswer bool
}

// SurveyRepository lists surveys as seen by one account.
type SurveyRepository interface {
	ListSurveys(ctx context.Context, accountID uuid.UUID) ([]Survey, error)
}

var (
	_ SurveyRepository = (*Repository)(nil)
	_ SurveyRepository = (*MemoryRepository)(nil)
)

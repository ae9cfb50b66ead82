package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository serves a fixed set of surveys from process memory.
type MemoryRepository struct {
	mu       sync.RWMutex
	surveys  []Survey
	answered map[uuid.UUID]map[uuid.UUID]bool
}

func NewMemory(surveys ...Survey) *MemoryRepository {
	stored := make([]Survey, len(surveys))
	copy(stored, surveys)
	sort.SliceStable(stored, func(i, j int) bool {
		return stored[i].Date.After(stored[j].Date)
	})
	return &MemoryRepository{surveys: stored, answered: make(map[uuid.UUID]map[uuid.UUID]bool)}
}

func (r *MemoryRepository) ListSurveys(_ context.Context, accountID uuid.UUID) ([]Survey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	surveys := make([]Survey, 0, len(r.surveys))
	for _, survey := range r.surveys {
		survey.Answers = append([]Answer(nil), survey.Answers...)
		survey.DidAnswer = r.answered[accountID][survey.ID]
		surveys = append(surveys, survey)
	}
	return surveys, nil
}

// MarkAnswered records that accountID answered surveyID.
func (r *MemoryRepository) MarkAnswered(accountID, surveyID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.answered[accountID] == nil {
		r.answered[accountID] = make(map[uuid.UUID]bool)
	}
	r.answered[accountID][surveyID] = true
}

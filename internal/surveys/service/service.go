package service

import (
	"context"

	"survey_client/internal/surveys/repository"
	"survey_client/platform/apperr"
	"survey_client/platform/logger"

	"github.com/google/uuid"
)

type Service struct {
	repo repository.SurveyRepository
	log  *logger.Logger
}

func New(repo repository.SurveyRepository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// List returns the surveys visible to accountID, newest first.
func (s *Service) List(ctx context.Context, accountID uuid.UUID) ([]repository.Survey, error) {
	surveys, err := s.repo.ListSurveys(ctx, accountID)
	if err != nil {
		s.log.DatabaseError("list surveys", err)
		return nil, apperr.Internal("failed to load surveys", err)
	}
	return surveys, nil
}

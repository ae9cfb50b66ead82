// Package remote loads the survey listing from the HTTP API.
package remote

import (
	"context"
	"fmt"
	"net/http"

	"survey_client/internal/domain"
	"survey_client/platform/httpclient"
)

// LoadSurveyList fetches every survey visible to the current account.
type LoadSurveyList struct {
	url    string
	client httpclient.GetClient
}

// NewLoadSurveyList creates the adapter for url. client is usually an
// httpclient.AuthorizeGetClient so the request carries the access token.
func NewLoadSurveyList(url string, client httpclient.GetClient) *LoadSurveyList {
	return &LoadSurveyList{url: url, client: client}
}

// LoadAll performs one GET. 200 decodes the list, 204 is an empty list and any
// other status is an unexpected error.
func (l *LoadSurveyList) LoadAll(ctx context.Context) ([]domain.SurveyModel, error) {
	resp, err := l.client.Get(ctx, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("load surveys: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var surveys []domain.SurveyModel
		if err := resp.DecodeJSON(&surveys); err != nil {
			return nil, domain.WrapUnexpected(fmt.Errorf("decode surveys: %w", err))
		}
		if surveys == nil {
			surveys = []domain.SurveyModel{}
		}
		return surveys, nil
	case http.StatusNoContent:
		return []domain.SurveyModel{}, nil
	default:
		return nil, domain.NewUnexpectedError()
	}
}

var _ domain.LoadSurveyList = (*LoadSurveyList)(nil)

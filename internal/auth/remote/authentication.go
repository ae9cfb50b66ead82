package remote

import (
	"context"
	"fmt"
	"net/http"

	"survey_client/internal/domain"
	"survey_client/platform/httpclient"
)

// Authentication posts credentials to the login endpoint.
type Authentication struct {
	url    string
	client httpclient.PostClient
}

// NewAuthentication creates the login adapter for url.
func NewAuthentication(url string, client httpclient.PostClient) *Authentication {
	return &Authentication{url: url, client: client}
}

// Auth posts params and decodes the response. Transport failures are
// returned wrapped and unclassified.
func (a *Authentication) Auth(ctx context.Context, params domain.AuthenticationParams) (domain.AccountModel, error) {
	resp, err := a.client.Post(ctx, a.url, params)
	if err != nil {
		return domain.AccountModel{}, fmt.Errorf("authenticate: %w", err)
	}
	return decodeAuthentication(resp)
}

// decodeAuthentication maps every status code to exactly one outcome:
//
//	200 -> account decoded from the body
//	401 -> invalid credentials
//	any other code -> unexpected
//
// The body is only read on 200.
func decodeAuthentication(resp httpclient.Response) (domain.AccountModel, error) {
	switch resp.StatusCode {
	case http.StatusOK:
		return readAccount(resp)
	case http.StatusUnauthorized:
		return domain.AccountModel{}, domain.NewInvalidCredentialsError()
	default:
		return domain.AccountModel{}, domain.NewUnexpectedError()
	}
}

var _ domain.Authentication = (*Authentication)(nil)

package remote

import (
	"context"
	"fmt"
	"net/http"

	"survey_client/internal/domain"
	"survey_client/platform/httpclient"
)

// AddAccount posts a new account to the sign-up endpoint.
type AddAccount struct {
	url    string
	client httpclient.PostClient
}

// NewAddAccount creates the sign-up adapter for url.
func NewAddAccount(url string, client httpclient.PostClient) *AddAccount {
	return &AddAccount{url: url, client: client}
}

// Add posts params and decodes the response. Transport failures are
// returned wrapped and unclassified.
func (a *AddAccount) Add(ctx context.Context, params domain.AddAccountParams) (domain.AccountModel, error) {
	resp, err := a.client.Post(ctx, a.url, params)
	if err != nil {
		return domain.AccountModel{}, fmt.Errorf("add account: %w", err)
	}
	return decodeAddAccount(resp)
}

// decodeAddAccount maps every status code to exactly one outcome:
//
//	200 -> account decoded from the body
//	403 -> email in use
//	any other code -> unexpected
//
// The body is only read on 200.
func decodeAddAccount(resp httpclient.Response) (domain.AccountModel, error) {
	switch resp.StatusCode {
	case http.StatusOK:
		return readAccount(resp)
	case http.StatusForbidden:
		return domain.AccountModel{}, domain.NewEmailInUseError()
	default:
		return domain.AccountModel{}, domain.NewUnexpectedError()
	}
}

var _ domain.AddAccount = (*AddAccount)(nil)

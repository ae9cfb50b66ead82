// Package remote implements the authentication use cases against the HTTP
// API. Adapters post once, then map the status code to an account or to one
// of the domain errors. They never retry, cache, log or persist.
package remote

import (
	"errors"
	"fmt"

	"survey_client/internal/domain"
	"survey_client/platform/httpclient"
)

var errMissingAccessToken = errors.New("response has no access token")

// readAccount decodes the account of a 200 response. A body that is not an
// account, or an account without an access token, is unexpected.
func readAccount(resp httpclient.Response) (domain.AccountModel, error) {
	var account domain.AccountModel
	if err := resp.DecodeJSON(&account); err != nil {
		return domain.AccountModel{}, domain.WrapUnexpected(fmt.Errorf("decode account: %w", err))
	}
	if account.AccessToken == "" {
		return domain.AccountModel{}, domain.WrapUnexpected(errMissingAccessToken)
	}
	return account, nil
}

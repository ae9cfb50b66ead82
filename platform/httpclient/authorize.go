package httpclient

import (
	"context"
	"net/http"
)

// AccessTokenHeader carries the current account's token to protected routes.
const AccessTokenHeader = "x-access-token"

// TokenSource yields the access token of the current account, or "" when no
// account is signed in.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// AuthorizeGetClient decorates a GetClient, attaching the current access token.
type AuthorizeGetClient struct {
	next   GetClient
	tokens TokenSource
}

// NewAuthorizeGetClient wraps next so requests carry the token from tokens.
func NewAuthorizeGetClient(next GetClient, tokens TokenSource) *AuthorizeGetClient {
	return &AuthorizeGetClient{next: next, tokens: tokens}
}

// Get reads the current token and forwards the request. Caller headers are
// copied, never mutated. A missing token leaves the request untouched.
func (a *AuthorizeGetClient) Get(ctx context.Context, url string, headers http.Header) (Response, error) {
	token, err := a.tokens.AccessToken(ctx)
	if err != nil {
		return Response{}, err
	}
	if token == "" {
		return a.next.Get(ctx, url, headers)
	}

	merged := headers.Clone()
	if merged == nil {
		merged = http.Header{}
	}
	merged.Set(AccessTokenHeader, token)

	return a.next.Get(ctx, url, merged)
}

var _ GetClient = (*AuthorizeGetClient)(nil)

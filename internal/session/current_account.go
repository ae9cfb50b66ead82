// Package session keeps caller-side state around the remote use cases: the
// signed-in account and the policy for overlapping login attempts.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"survey_client/internal/domain"
	"survey_client/platform/storage"
)

const accountKey = "account"

// CurrentAccount persists the signed-in account in a Storage.
type CurrentAccount struct {
	store storage.Storage
}

// NewCurrentAccount creates a CurrentAccount backed by store.
func NewCurrentAccount(store storage.Storage) *CurrentAccount {
	return &CurrentAccount{store: store}
}

// Save stores account. An account without an access token is rejected.
func (c *CurrentAccount) Save(ctx context.Context, account domain.AccountModel) error {
	if account.AccessToken == "" {
		return domain.NewUnexpectedError()
	}

	raw, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("encode account: %w", err)
	}
	return c.store.Set(ctx, accountKey, raw)
}

// Load returns the stored account. ok is false when nobody is signed in.
func (c *CurrentAccount) Load(ctx context.Context) (account domain.AccountModel, ok bool, err error) {
	raw, err := c.store.Get(ctx, accountKey)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.AccountModel{}, false, nil
	}
	if err != nil {
		return domain.AccountModel{}, false, err
	}

	if err := json.Unmarshal(raw, &account); err != nil {
		return domain.AccountModel{}, false, fmt.Errorf("decode account: %w", err)
	}
	return account, true, nil
}

// Clear signs the current account out.
func (c *CurrentAccount) Clear(ctx context.Context) error {
	return c.store.Delete(ctx, accountKey)
}

// AccessToken implements httpclient.TokenSource.
func (c *CurrentAccount) AccessToken(ctx context.Context) (string, error) {
	account, ok, err := c.Load(ctx)
	if err != nil || !ok {
		return "", err
	}
	return account.AccessToken, nil
}

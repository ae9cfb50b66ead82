package session

import (
	"context"

	"survey_client/internal/domain"

	"golang.org/x/sync/singleflight"
)

// Dedup coalesces overlapping Auth calls with identical credentials into a
// single call to the wrapped use case; every waiter receives the same result.
// Calls that do not overlap, or that differ in credentials, are independent.
type Dedup struct {
	next  domain.Authentication
	group singleflight.Group
}

// NewDedup wraps next with the coalescing policy.
func NewDedup(next domain.Authentication) *Dedup {
	return &Dedup{next: next}
}

// Auth runs next.Auth unless an identical call is already in flight.
// The first caller's context governs the shared call.
func (d *Dedup) Auth(ctx context.Context, params domain.AuthenticationParams) (domain.AccountModel, error) {
	key := params.Email + "\x00" + params.Password
	v, err, _ := d.group.Do(key, func() (any, error) {
		return d.next.Auth(ctx, params)
	})
	if err != nil {
		return domain.AccountModel{}, err
	}
	return v.(domain.AccountModel), nil
}

var _ domain.Authentication = (*Dedup)(nil)

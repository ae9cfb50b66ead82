// Package httpkit provides HTTP utilities including identity abstraction.
package httpkit

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Identity represents the authenticated account behind a request.
// Handlers read it without depending on how the middleware stored it.
type Identity interface {
	// AccountID returns the authenticated account's ID.
	AccountID() uuid.UUID
	// IsAuthenticated returns true if the request carried a valid token.
	IsAuthenticated() bool
}

type identity struct {
	accountID     uuid.UUID
	authenticated bool
}

func (i *identity) AccountID() uuid.UUID {
	return i.accountID
}

func (i *identity) IsAuthenticated() bool {
	return i.authenticated
}

// GetIdentity extracts the Identity from a Gin context.
// Returns an unauthenticated identity if no account is present.
func GetIdentity(c *gin.Context) Identity {
	value, ok := c.Get(ContextAccountIDKey)
	if !ok {
		return &identity{}
	}

	accountID, ok := value.(uuid.UUID)
	if !ok {
		return &identity{}
	}

	return &identity{accountID: accountID, authenticated: true}
}

// MustGetIdentity extracts the Identity from a Gin context.
// If the request is not authenticated, it aborts with 403 and returns nil.
func MustGetIdentity(c *gin.Context) Identity {
	id := GetIdentity(c)
	if !id.IsAuthenticated() {
		abortAccessDenied(c)
		return nil
	}
	return id
}

// Package token issues the access tokens returned by login and sign-up.
package token

import (
	"time"

	"survey_client/platform/httpkit"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// IssueAccessToken signs an HS256 access token for accountID valid for ttl.
func IssueAccessToken(secret string, accountID uuid.UUID, ttl time.Duration, now time.Time) (string, error) {
	claims := httpkit.AccessClaims{
		Type: httpkit.AccessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

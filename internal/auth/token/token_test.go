package token

import (
	"testing"
	"time"

	"survey_client/platform/httpkit"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestIssueAccessToken(t *testing.T) {
	accountID := uuid.New()
	now := time.Now()

	raw, err := IssueAccessToken("secret", accountID, time.Hour, now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims := &httpkit.AccessClaims{}
	_, err = jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return []byte("secret"), nil
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != accountID.String() {
		t.Fatalf("expected subject %s, got %s", accountID, claims.Subject)
	}
	if claims.Type != httpkit.AccessTokenType {
		t.Fatalf("expected access type, got %q", claims.Type)
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Sub(now) < 59*time.Minute {
		t.Fatalf("unexpected expiry %v", claims.ExpiresAt)
	}
}

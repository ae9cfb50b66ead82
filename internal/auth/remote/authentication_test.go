package remote

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"survey_client/internal/domain"
	"survey_client/platform/httpclient"

	"github.com/google/go-cmp/cmp"
)

const testLoginURL = "http://localhost:5050/api/login"

func mockAuthenticationParams() domain.AuthenticationParams {
	return domain.AuthenticationParams{Email: "user@example.com", Password: "secret123"}
}

func makeAuthentication(resp httpclient.Response) (*Authentication, *postClientSpy) {
	spy := &postClientSpy{response: resp}
	return NewAuthentication(testLoginURL, spy), spy
}

func TestAuthenticationCallsClientWithURLAndBody(t *testing.T) {
	sut, spy := makeAuthentication(httpclient.Response{StatusCode: http.StatusOK, Body: []byte(`{"accessToken":"abc"}`)})
	params := mockAuthenticationParams()

	if _, err := sut.Auth(context.Background(), params); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if spy.url != testLoginURL {
		t.Fatalf("expected url %q, got %q", testLoginURL, spy.url)
	}
	if diff := cmp.Diff(params, spy.body); diff != "" {
		t.Fatalf("unexpected body (-want +got):\n%s", diff)
	}
	if spy.calls != 1 {
		t.Fatalf("expected exactly one call, got %d", spy.calls)
	}
}

func TestAuthenticationReturnsAccountOn200(t *testing.T) {
	sut, _ := makeAuthentication(httpclient.Response{
		StatusCode: http.StatusOK,
		Body:       []byte(`{"accessToken":"abc"}`),
	})

	account, err := sut.Auth(context.Background(), mockAuthenticationParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(domain.AccountModel{AccessToken: "abc"}, account); diff != "" {
		t.Fatalf("unexpected account (-want +got):\n%s", diff)
	}
}

func TestAuthenticationFailsWithInvalidCredentialsOn401(t *testing.T) {
	sut, _ := makeAuthentication(httpclient.Response{StatusCode: http.StatusUnauthorized})

	_, err := sut.Auth(context.Background(), mockAuthenticationParams())
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestAuthenticationFailsWithUnexpectedOnUnmappedCodes(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError} {
		sut, _ := makeAuthentication(httpclient.Response{StatusCode: status})

		_, err := sut.Auth(context.Background(), mockAuthenticationParams())
		if !errors.Is(err, domain.ErrUnexpected) {
			t.Fatalf("status %d: expected unexpected error, got %v", status, err)
		}
		if err.Error() != "something unexpected happened, try again" {
			t.Fatalf("status %d: unexpected message %q", status, err.Error())
		}
	}
}

func TestAuthenticationIgnoresBodyOnFailure(t *testing.T) {
	sut, _ := makeAuthentication(httpclient.Response{
		StatusCode: http.StatusUnauthorized,
		Body:       []byte(`{"accessToken":"should-not-leak"}`),
	})

	account, err := sut.Auth(context.Background(), mockAuthenticationParams())
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if account != (domain.AccountModel{}) {
		t.Fatalf("expected zero account on failure, got %+v", account)
	}
}

func TestAuthenticationReturnsTransportErrorUnclassified(t *testing.T) {
	boom := errors.New("connection refused")
	spy := &postClientSpy{err: boom}
	sut := NewAuthentication(testLoginURL, spy)

	_, err := sut.Auth(context.Background(), mockAuthenticationParams())
	if !errors.Is(err, boom) {
		t.Fatalf("expected transport error to be wrapped, got %v", err)
	}
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		t.Fatalf("transport failure must not be classified, got kind %s", domainErr.Kind)
	}
}

func TestAuthenticationOverlappingCallsAreIndependent(t *testing.T) {
	sut, spy := makeAuthentication(httpclient.Response{StatusCode: http.StatusOK, Body: []byte(`{"accessToken":"abc"}`)})

	done := make(chan struct{})
	for i := 0; i < 2; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_, _ = sut.Auth(context.Background(), mockAuthenticationParams())
		}()
	}
	<-done
	<-done

	if got := spy.callCount(); got != 2 {
		t.Fatalf("expected two transport calls for two overlapping invocations, got %d", got)
	}
}

func TestAuthenticationTreats403AsUnexpected(t *testing.T) {
	sut, _ := makeAuthentication(httpclient.Response{StatusCode: http.StatusForbidden})

	_, err := sut.Auth(context.Background(), mockAuthenticationParams())
	if !errors.Is(err, domain.ErrUnexpected) {
		t.Fatalf("expected unexpected error, got %v", err)
	}
	if errors.Is(err, domain.ErrEmailInUse) {
		t.Fatal("login must never report email in use")
	}
}

func TestAuthenticationRejects200WithoutAccessToken(t *testing.T) {
	sut, _ := makeAuthentication(httpclient.Response{StatusCode: http.StatusOK, Body: []byte(`{}`)})

	account, err := sut.Auth(context.Background(), mockAuthenticationParams())
	if !errors.Is(err, domain.ErrUnexpected) {
		t.Fatalf("expected unexpected error, got %v", err)
	}
	if account != (domain.AccountModel{}) {
		t.Fatalf("expected zero account, got %+v", account)
	}
}

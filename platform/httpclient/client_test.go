package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"survey_client/platform/logger"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c := New(Config{Timeout: 2 * time.Second}, logger.Discard())
	t.Cleanup(c.CloseIdleConnections)
	return c
}

func TestPostSendsJSONBody(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"accessToken":"abc"}`))
	}))
	defer srv.Close()

	resp, err := newTestClient(t).Post(context.Background(), srv.URL, map[string]string{"email": "user@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Fatalf("expected POST, got %s", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Fatalf("expected JSON content type, got %q", gotContentType)
	}
	if gotBody["email"] != "user@example.com" {
		t.Fatalf("unexpected body %v", gotBody)
	}
	if resp.StatusCode != http.StatusOK || string(resp.Body) != `{"accessToken":"abc"}` {
		t.Fatalf("unexpected response %d %q", resp.StatusCode, resp.Body)
	}
}

func TestPostWithoutBodySendsNothing(t *testing.T) {
	var gotLen int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotLen = len(raw)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := newTestClient(t).Post(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLen != 0 {
		t.Fatalf("expected empty request body, got %d bytes", gotLen)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}
}

func TestErrorStatusesAreReturnedNotFailed(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":"nope"}`))
		}))

		resp, err := newTestClient(t).Post(context.Background(), srv.URL, struct{}{})
		srv.Close()

		if err != nil {
			t.Fatalf("status %d: expected response value, got error %v", status, err)
		}
		if resp.StatusCode != status {
			t.Fatalf("expected status %d, got %d", status, resp.StatusCode)
		}
	}
}

func TestTransportFailureIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	if _, err := newTestClient(t).Post(context.Background(), url, nil); err == nil {
		t.Fatal("expected connection error")
	}
}

func TestCancelledContextIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(t).Get(ctx, srv.URL, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestGetForwardsHeaders(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Trace")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	headers := http.Header{}
	headers.Set("X-Trace", "abc")
	if _, err := newTestClient(t).Get(context.Background(), srv.URL, headers); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "abc" {
		t.Fatalf("expected forwarded header, got %q", got)
	}
}

func TestDecodeJSON(t *testing.T) {
	var out struct {
		AccessToken string `json:"accessToken"`
	}
	if err := (Response{Body: []byte(`{"accessToken":"abc"}`)}).DecodeJSON(&out); err != nil || out.AccessToken != "abc" {
		t.Fatalf("unexpected decode result %q, %v", out.AccessToken, err)
	}
	if err := (Response{}).DecodeJSON(&out); err == nil {
		t.Fatal("expected empty body to fail decoding")
	}
}

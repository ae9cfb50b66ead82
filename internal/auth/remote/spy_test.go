package remote

import (
	"context"
	"sync"

	"survey_client/platform/httpclient"
)

// postClientSpy records every Post call and replies with a canned response.
type postClientSpy struct {
	mu       sync.Mutex
	url      string
	body     any
	calls    int
	response httpclient.Response
	err      error
}

func (s *postClientSpy) Post(_ context.Context, url string, body any) (httpclient.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.url = url
	s.body = body
	return s.response, s.err
}

func (s *postClientSpy) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

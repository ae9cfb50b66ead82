package remote

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"survey_client/internal/domain"
	"survey_client/platform/httpclient"

	"github.com/google/go-cmp/cmp"
)

const testSurveysURL = "http://localhost:5050/api/surveys"

type getClientSpy struct {
	url      string
	calls    int
	response httpclient.Response
	err      error
}

func (s *getClientSpy) Get(_ context.Context, url string, _ http.Header) (httpclient.Response, error) {
	s.calls++
	s.url = url
	return s.response, s.err
}

func TestLoadAllCallsClientWithURL(t *testing.T) {
	spy := &getClientSpy{response: httpclient.Response{StatusCode: http.StatusNoContent}}
	sut := NewLoadSurveyList(testSurveysURL, spy)

	if _, err := sut.LoadAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spy.url != testSurveysURL || spy.calls != 1 {
		t.Fatalf("expected one call to %q, got %d calls to %q", testSurveysURL, spy.calls, spy.url)
	}
}

func TestLoadAllDecodesListOn200(t *testing.T) {
	body := []byte(`[{"id":"s1","question":"Which framework?","answers":[{"answer":"gin","image":"http://img/gin.png"},{"answer":"chi"}],"date":"2024-02-01T10:00:00Z","didAnswer":true}]`)
	spy := &getClientSpy{response: httpclient.Response{StatusCode: http.StatusOK, Body: body}}

	surveys, err := NewLoadSurveyList(testSurveysURL, spy).LoadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.SurveyModel{{
		ID:       "s1",
		Question: "Which framework?",
		Answers: []domain.SurveyAnswerModel{
			{Answer: "gin", Image: "http://img/gin.png"},
			{Answer: "chi"},
		},
		Date:      time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
		DidAnswer: true,
	}}
	if diff := cmp.Diff(want, surveys); diff != "" {
		t.Fatalf("unexpected surveys (-want +got):\n%s", diff)
	}
}

func TestLoadAllReturnsEmptyListOn204(t *testing.T) {
	spy := &getClientSpy{response: httpclient.Response{StatusCode: http.StatusNoContent}}

	surveys, err := NewLoadSurveyList(testSurveysURL, spy).LoadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if surveys == nil || len(surveys) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", surveys)
	}
}

func TestLoadAllFailsWithUnexpectedOnOtherCodes(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusInternalServerError} {
		spy := &getClientSpy{response: httpclient.Response{StatusCode: status}}

		if _, err := NewLoadSurveyList(testSurveysURL, spy).LoadAll(context.Background()); !errors.Is(err, domain.ErrUnexpected) {
			t.Fatalf("status %d: expected unexpected error, got %v", status, err)
		}
	}
}

func TestLoadAllTransportErrorIsWrapped(t *testing.T) {
	boom := errors.New("timeout")
	spy := &getClientSpy{err: boom}

	if _, err := NewLoadSurveyList(testSurveysURL, spy).LoadAll(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
}

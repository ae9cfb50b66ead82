package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"survey_client/internal/domain"
	"survey_client/internal/session"
	"survey_client/platform/storage"
)

// scriptedPrompter answers prompts from a queue and records validation
// reasons for rejected answers.
type scriptedPrompter struct {
	mu       sync.Mutex
	answers  map[string][]string
	rejected []string
}

func (p *scriptedPrompter) Ask(_ context.Context, cfg PromptConfig) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for {
		queue := p.answers[cfg.Message]
		if len(queue) == 0 {
			return "", errors.New("no scripted answer for " + cfg.Message)
		}
		answer := queue[0]
		p.answers[cfg.Message] = queue[1:]

		if cfg.Validate != nil {
			if err := cfg.Validate(answer); err != nil {
				p.rejected = append(p.rejected, cfg.Message+": "+err.Error())
				continue
			}
		}
		return answer, nil
	}
}

type authSpy struct {
	params  []domain.AuthenticationParams
	account domain.AccountModel
	err     error
}

func (s *authSpy) Auth(_ context.Context, params domain.AuthenticationParams) (domain.AccountModel, error) {
	s.params = append(s.params, params)
	return s.account, s.err
}

type addAccountSpy struct {
	params  []domain.AddAccountParams
	account domain.AccountModel
	err     error
}

func (s *addAccountSpy) Add(_ context.Context, params domain.AddAccountParams) (domain.AccountModel, error) {
	s.params = append(s.params, params)
	return s.account, s.err
}

type surveysStub struct {
	surveys []domain.SurveyModel
	err     error
}

func (s surveysStub) LoadAll(context.Context) ([]domain.SurveyModel, error) {
	return s.surveys, s.err
}

type fixture struct {
	auth     *authSpy
	add      *addAccountSpy
	prompter *scriptedPrompter
	account  *session.CurrentAccount
	surveys  surveysStub
}

func newFixture() *fixture {
	return &fixture{
		auth:     &authSpy{account: domain.AccountModel{AccessToken: "token", Name: "Alice Doe"}},
		add:      &addAccountSpy{account: domain.AccountModel{AccessToken: "token", Name: "Alice Doe"}},
		prompter: &scriptedPrompter{answers: map[string][]string{}},
		account:  session.NewCurrentAccount(storage.NewMemoryStorage()),
	}
}

func (f *fixture) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(Deps{
		Authentication: f.auth,
		AddAccount:     f.add,
		Surveys:        f.surveys,
		Account:        f.account,
		Prompter:       f.prompter,
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLoginWithFlagsSavesAccount(t *testing.T) {
	f := newFixture()

	out, err := f.run(t, "login", "--email", "alice@example.com", "--password", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.Contains(out, "signed in as Alice Doe") {
		t.Fatalf("unexpected output %q", out)
	}
	if len(f.auth.params) != 1 || f.auth.params[0].Email != "alice@example.com" {
		t.Fatalf("unexpected auth calls %+v", f.auth.params)
	}

	saved, ok, err := f.account.Load(context.Background())
	if err != nil || !ok || saved.AccessToken != "token" {
		t.Fatalf("expected saved account, got %+v ok=%v err=%v", saved, ok, err)
	}
}

func TestLoginPromptsUntilValid(t *testing.T) {
	f := newFixture()
	f.prompter.answers["Email"] = []string{"", "not-an-email", "alice@example.com"}
	f.prompter.answers["Password"] = []string{"abc", "secret"}

	if _, err := f.run(t, "login"); err != nil {
		t.Fatalf("login: %v", err)
	}

	want := []string{
		"Email: field is required",
		"Email: value is invalid",
		"Password: value is invalid",
	}
	if strings.Join(f.prompter.rejected, "|") != strings.Join(want, "|") {
		t.Fatalf("expected rejections %v, got %v", want, f.prompter.rejected)
	}
	if f.auth.params[0].Password != "secret" {
		t.Fatalf("expected final password to be used, got %+v", f.auth.params[0])
	}
}

func TestLoginRejectsInvalidFlagsWithoutCallingRemote(t *testing.T) {
	f := newFixture()

	_, err := f.run(t, "login", "--email", "nope", "--password", "secret")
	var formErr *FormError
	if !errors.As(err, &formErr) {
		t.Fatalf("expected FormError, got %v", err)
	}
	if formErr.Fields["email"] != "value is invalid" {
		t.Fatalf("unexpected field errors %v", formErr.Fields)
	}
	if len(f.auth.params) != 0 {
		t.Fatal("expected no remote call for an invalid form")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	f := newFixture()
	f.auth.err = domain.NewInvalidCredentialsError()

	_, err := f.run(t, "login", "--email", "alice@example.com", "--password", "secret")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, ok, _ := f.account.Load(context.Background()); ok {
		t.Fatal("expected no account to be saved")
	}
}

func TestSignUpWithPrompts(t *testing.T) {
	f := newFixture()
	f.prompter.answers["Name"] = []string{"Alice Doe"}
	f.prompter.answers["Confirm password"] = []string{"other", "secret"}

	out, err := f.run(t, "signup", "--email", "alice@example.com", "--password", "secret")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if !strings.Contains(out, "signed in as Alice Doe") {
		t.Fatalf("unexpected output %q", out)
	}
	if len(f.prompter.rejected) != 1 || f.prompter.rejected[0] != "Confirm password: value is invalid" {
		t.Fatalf("unexpected rejections %v", f.prompter.rejected)
	}

	want := domain.AddAccountParams{
		Name:                 "Alice Doe",
		Email:                "alice@example.com",
		Password:             "secret",
		PasswordConfirmation: "secret",
	}
	if len(f.add.params) != 1 || f.add.params[0] != want {
		t.Fatalf("unexpected add calls %+v", f.add.params)
	}
}

func TestSignUpEmailInUse(t *testing.T) {
	f := newFixture()
	f.add.err = domain.NewEmailInUseError()

	_, err := f.run(t, "signup", "--name", "Alice Doe", "--email", "alice@example.com",
		"--password", "secret", "--password-confirmation", "secret")
	if !errors.Is(err, domain.ErrEmailInUse) {
		t.Fatalf("expected email in use, got %v", err)
	}
}

func TestSurveysOutput(t *testing.T) {
	f := newFixture()
	f.surveys = surveysStub{surveys: []domain.SurveyModel{
		{
			ID:        "1",
			Question:  "<b>Which</b> framework?",
			Answers:   []domain.SurveyAnswerModel{{Answer: "React"}, {Answer: "Vue"}},
			Date:      time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
			DidAnswer: true,
		},
	}}

	out, err := f.run(t, "surveys")
	if err != nil {
		t.Fatalf("surveys: %v", err)
	}
	want := "[x] 12 Mar 2024  Which framework?\n      - React\n      - Vue\n"
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestSurveysEmptyAndFailure(t *testing.T) {
	f := newFixture()
	out, err := f.run(t, "surveys")
	if err != nil || out != "no surveys yet\n" {
		t.Fatalf("expected empty message, got %q, %v", out, err)
	}

	f.surveys = surveysStub{err: domain.NewUnexpectedError()}
	if _, err := f.run(t, "surveys"); !errors.Is(err, domain.ErrUnexpected) {
		t.Fatalf("expected unexpected error, got %v", err)
	}
}

func TestLogoutClearsAccount(t *testing.T) {
	f := newFixture()
	if err := f.account.Save(context.Background(), domain.AccountModel{AccessToken: "token"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := f.run(t, "logout"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok, _ := f.account.Load(context.Background()); ok {
		t.Fatal("expected account to be cleared")
	}
}

func TestFormErrorMessageIsSorted(t *testing.T) {
	err := &FormError{Fields: map[string]string{"password": "value is invalid", "email": "field is required"}}
	if err.Error() != "invalid form (email: field is required; password: value is invalid)" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

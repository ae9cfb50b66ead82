package service

import (
	"context"
	"errors"
	"time"

	"survey_client/internal/auth/password"
	"survey_client/internal/auth/repository"
	"survey_client/internal/auth/token"
	"survey_client/platform/apperr"
	"survey_client/platform/config"
	"survey_client/platform/logger"
)

const (
	msgInvalidCredentials = "invalid credentials"
	msgEmailInUse         = "email already in use"
)

// Session is the outcome of a successful login or sign-up.
type Session struct {
	AccessToken string
	Name        string
}

type Service struct {
	repo repository.AccountRepository
	cfg  config.AuthServiceConfig
	log  *logger.Logger
	now  func() time.Time
}

func New(repo repository.AccountRepository, cfg config.AuthServiceConfig, log *logger.Logger) *Service {
	return &Service{repo: repo, cfg: cfg, log: log, now: time.Now}
}

// Login checks the credentials. Unknown emails and wrong passwords both
// produce an unauthorized error.
func (s *Service) Login(ctx context.Context, email, plainPassword string) (Session, error) {
	account, err := s.repo.GetAccountByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		s.log.AuthEvent("login", email, false, "unknown email")
		return Session{}, apperr.Unauthorized(msgInvalidCredentials)
	}
	if err != nil {
		s.log.DatabaseError("get account by email", err)
		return Session{}, apperr.Internal("failed to load account", err)
	}

	if err := password.Compare(account.PasswordHash, plainPassword); err != nil {
		s.log.AuthEvent("login", email, false, "password mismatch")
		return Session{}, apperr.Unauthorized(msgInvalidCredentials)
	}

	session, err := s.issue(account)
	if err != nil {
		return Session{}, err
	}
	s.log.AuthEvent("login", email, true, "")
	return session, nil
}

// SignUp creates an account and signs it in. A registered email produces a
// forbidden error.
func (s *Service) SignUp(ctx context.Context, name, email, plainPassword string) (Session, error) {
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return Session{}, apperr.Internal("failed to hash password", err)
	}

	account, err := s.repo.CreateAccount(ctx, name, email, hash)
	if errors.Is(err, repository.ErrEmailTaken) {
		s.log.AuthEvent("signup", email, false, "email in use")
		return Session{}, apperr.Forbidden(msgEmailInUse)
	}
	if err != nil {
		s.log.DatabaseError("create account", err)
		return Session{}, apperr.Internal("failed to create account", err)
	}

	session, err := s.issue(account)
	if err != nil {
		return Session{}, err
	}
	s.log.AuthEvent("signup", email, true, "")
	return session, nil
}

func (s *Service) issue(account repository.Account) (Session, error) {
	accessToken, err := token.IssueAccessToken(s.cfg.GetJWTAccessSecret(), account.ID, s.cfg.GetAccessTokenTTL(), s.now())
	if err != nil {
		return Session{}, apperr.Internal("failed to issue token", err)
	}
	return Session{AccessToken: accessToken, Name: account.Name}, nil
}

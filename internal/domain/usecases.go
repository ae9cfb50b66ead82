package domain

import "context"

// Authentication exchanges credentials for an account.
type Authentication interface {
	Auth(ctx context.Context, params AuthenticationParams) (AccountModel, error)
}

// AddAccount creates an account and returns it already authenticated.
type AddAccount interface {
	Add(ctx context.Context, params AddAccountParams) (AccountModel, error)
}

// LoadSurveyList returns every survey visible to the current account.
type LoadSurveyList interface {
	LoadAll(ctx context.Context) ([]SurveyModel, error)
}

package domain

// AccountModel is returned by the authentication and sign-up use cases.
type AccountModel struct {
	AccessToken string `json:"accessToken"`
	Name        string `json:"name,omitempty"`
}

// AuthenticationParams are the credentials posted to the login endpoint.
type AuthenticationParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AddAccountParams are posted to the sign-up endpoint.
type AddAccountParams struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

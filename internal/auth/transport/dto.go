package transport

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignUpRequest struct {
	Name                 string `json:"name" validate:"required,min=5"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=5"`
	PasswordConfirmation string `json:"passwordConfirmation" validate:"required,eqfield=Password"`
}

type AccountResponse struct {
	AccessToken string `json:"accessToken"`
	Name        string `json:"name"`
}

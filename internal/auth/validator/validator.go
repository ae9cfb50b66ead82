// Package validator provides the field validation of the login and sign-up
// forms. Rules are declared in forms.yaml.
package validator

import (
	_ "embed"
	"fmt"

	"survey_client/internal/validation"
)

//go:embed forms.yaml
var formsYAML []byte

// Form names declared in forms.yaml.
const (
	FormLogin  = "login"
	FormSignUp = "signup"
)

var forms = mustLoad(formsYAML)

func mustLoad(raw []byte) map[string]*validation.Composite {
	loaded, err := validation.LoadForms(raw)
	if err != nil {
		panic(fmt.Sprintf("auth validator: %v", err))
	}
	for _, name := range []string{FormLogin, FormSignUp} {
		if _, ok := loaded[name]; !ok {
			panic(fmt.Sprintf("auth validator: form %q missing", name))
		}
	}
	return loaded
}

// Login returns the login form composite: email, password.
func Login() *validation.Composite {
	return forms[FormLogin]
}

// SignUp returns the sign-up form composite: name, email, password,
// passwordConfirmation.
func SignUp() *validation.Composite {
	return forms[FormSignUp]
}

// LoginForm builds the form snapshot for credentials.
func LoginForm(email, password string) validation.FormData {
	return validation.FormData{"email": email, "password": password}
}

// SignUpForm builds the form snapshot for a new account.
func SignUpForm(name, email, password, passwordConfirmation string) validation.FormData {
	return validation.FormData{
		"name":                 name,
		"email":                email,
		"password":             password,
		"passwordConfirmation": passwordConfirmation,
	}
}

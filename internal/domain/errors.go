// Package domain holds the models, use-case contracts and error taxonomy shared
// by the authentication forms and the survey listing.
package domain

import "errors"

// ErrorKind identifies one member of the closed set of domain failures a
// remote use case can report.
type ErrorKind int

const (
	// KindUnexpected is the catch-all for any response that is not classified.
	KindUnexpected ErrorKind = iota
	// KindInvalidCredentials is reported when the credentials were rejected.
	KindInvalidCredentials
	// KindEmailInUse is reported when the email already belongs to an account.
	KindEmailInUse
)

const (
	msgUnexpected         = "something unexpected happened, try again"
	msgInvalidCredentials = "invalid credentials"
	msgEmailInUse         = "this email is already in use"
)

// String returns the kind name used in logs.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindEmailInUse:
		return "email_in_use"
	default:
		return "unexpected"
	}
}

// Message returns the fixed human-readable message for the kind.
func (k ErrorKind) Message() string {
	switch k {
	case KindInvalidCredentials:
		return msgInvalidCredentials
	case KindEmailInUse:
		return msgEmailInUse
	default:
		return msgUnexpected
	}
}

// Error is a domain failure. Its message is fully determined by Kind.
type Error struct {
	Kind ErrorKind
	Err  error // Underlying cause (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Kind.Message()
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a domain error of the same kind, so the
// sentinels below can be matched with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is comparisons. Callers must not return these directly;
// use the constructors so each failure is a fresh value.
var (
	ErrUnexpected         = &Error{Kind: KindUnexpected}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials}
	ErrEmailInUse         = &Error{Kind: KindEmailInUse}
)

// NewUnexpectedError creates an unexpected error.
func NewUnexpectedError() *Error {
	return &Error{Kind: KindUnexpected}
}

// NewInvalidCredentialsError creates an invalid credentials error.
func NewInvalidCredentialsError() *Error {
	return &Error{Kind: KindInvalidCredentials}
}

// NewEmailInUseError creates an email in use error.
func NewEmailInUseError() *Error {
	return &Error{Kind: KindEmailInUse}
}

// WrapUnexpected creates an unexpected error that keeps cause for errors.As.
func WrapUnexpected(cause error) *Error {
	return &Error{Kind: KindUnexpected, Err: cause}
}

// GetKind extracts the kind from err.
// Returns KindUnexpected if err is not a domain error.
func GetKind(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

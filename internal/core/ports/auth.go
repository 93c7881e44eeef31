package ports

import "context"

// Credentials is the raw login form submission.
type Credentials struct {
	Email    string
	Password string
}

// AuthProvider attempts a credentials sign-in and returns a session token on
// success. Failures the provider recognises are reported as *domain.AuthError
// carrying a kind discriminant; anything else is an unexpected fault the
// caller must not swallow.
type AuthProvider interface {
	SignIn(ctx context.Context, email, password string) (string, error)
}

// SignInResult is the outcome of an authentication attempt. On success Token
// and RedirectTo are set; on a recoverable failure Message carries the string
// the login form renders.
type SignInResult struct {
	Token      string
	Message    string
	RedirectTo string
}

// SessionService normalizes provider failures into form-facing messages.
type SessionService interface {
	// Authenticate returns a non-nil error only for faults the provider did
	// not recognise; those escalate instead of being rendered.
	Authenticate(ctx context.Context, creds Credentials) (SignInResult, error)
}

// RegistrationForm is the raw, untrusted registration submission.
type RegistrationForm struct {
	Username         string
	Email            string
	Password         string
	RepeatedPassword string
}

// RegistrationService creates dashboard accounts.
type RegistrationService interface {
	Register(ctx context.Context, form RegistrationForm) (MutationResult, error)
}

package domain

import "fmt"

// AuthErrorKind is the discriminant carried by an AuthError.
type AuthErrorKind string

const (
	// AuthErrorCredentials signals a bad email/password pair.
	AuthErrorCredentials AuthErrorKind = "credentials"
	// AuthErrorUnavailable signals the provider could not reach its backing
	// store. Recoverable from the user's point of view: try again later.
	AuthErrorUnavailable AuthErrorKind = "unavailable"
)

// AuthError is the typed failure an AuthProvider raises. Anything a provider
// returns that is not an AuthError is treated as unexpected and propagated.
type AuthError struct {
	Kind AuthErrorKind
	Err  error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth %s: %v", e.Kind, e.Err)
	}
	return "auth " + string(e.Kind)
}

func (e *AuthError) Unwrap() error { return e.Err }

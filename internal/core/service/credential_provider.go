package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ucyo/www-next-dashboard/internal/core/domain"
	"github.com/ucyo/www-next-dashboard/internal/core/ports"
)

// CredentialProvider verifies an email/password pair against the users table
// and issues an HS256 session token. Recognised failures are reported as
// *domain.AuthError so the sign-in adapter can map them; a token signing
// fault is returned as-is.
type CredentialProvider struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewCredentialProvider(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *CredentialProvider {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &CredentialProvider{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (p *CredentialProvider) SignIn(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", &domain.AuthError{Kind: domain.AuthErrorCredentials, Err: domain.ErrInvalidCredentials}
	}

	user, err := p.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Indistinguishable from a wrong password on purpose.
			return "", &domain.AuthError{Kind: domain.AuthErrorCredentials, Err: err}
		}
		return "", &domain.AuthError{Kind: domain.AuthErrorUnavailable, Err: err}
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", &domain.AuthError{Kind: domain.AuthErrorCredentials, Err: domain.ErrInvalidCredentials}
	}

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"exp":   time.Now().Add(p.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(p.jwtSecret))
	if err != nil {
		return "", err
	}
	return signed, nil
}

package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/ucyo/www-next-dashboard/internal/core/domain"
	"github.com/ucyo/www-next-dashboard/internal/core/ports"
)

// DashboardPath is where a successful sign-in redirects to.
const DashboardPath = "/dashboard"

// SessionService is a thin adapter over the credential provider. It folds the
// provider's typed failures into the two messages the login form knows how to
// render and lets everything unrecognised escalate as an error.
type SessionService struct {
	provider ports.AuthProvider
	logger   zerolog.Logger
}

func NewSessionService(provider ports.AuthProvider, logger zerolog.Logger) *SessionService {
	return &SessionService{provider: provider, logger: logger}
}

func (s *SessionService) Authenticate(ctx context.Context, creds ports.Credentials) (ports.SignInResult, error) {
	token, err := s.provider.SignIn(ctx, creds.Email, creds.Password)
	if err == nil {
		return ports.SignInResult{Token: token, RedirectTo: DashboardPath}, nil
	}

	var ae *domain.AuthError
	if !errors.As(err, &ae) {
		return ports.SignInResult{}, err
	}

	switch ae.Kind {
	case domain.AuthErrorCredentials:
		return ports.SignInResult{Message: "Invalid credentials."}, nil
	default:
		s.logger.Warn().Err(ae).Str("kind", string(ae.Kind)).Msg("sign-in provider fault")
		return ports.SignInResult{Message: "Something went wrong."}, nil
	}
}

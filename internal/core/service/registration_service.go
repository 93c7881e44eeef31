package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ucyo/www-next-dashboard/internal/core/domain"
	"github.com/ucyo/www-next-dashboard/internal/core/forms"
	"github.com/ucyo/www-next-dashboard/internal/core/ports"
)

// LoginPath is where a successful registration redirects to.
const LoginPath = "/login"

// RegistrationService validates the registration form, hashes the password
// and inserts the new account. Only a hashing fault is returned as an error;
// everything else becomes form state.
type RegistrationService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewRegistrationService(users ports.UserRepository, logger zerolog.Logger) *RegistrationService {
	return &RegistrationService{users: users, logger: logger}
}

func (s *RegistrationService) Register(ctx context.Context, form ports.RegistrationForm) (ports.MutationResult, error) {
	input, fieldErrs := forms.ValidateRegistration(form)
	if fieldErrs != nil {
		// Diagnostic side channel; the contract is the returned state.
		s.logger.Debug().Interface("field_errors", fieldErrs).Msg("registration validation failed")
		return ports.MutationResult{State: &domain.MutationState{
			Errors:  fieldErrs,
			Message: "Missing Fields. Failed to create new user.",
		}}, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ports.MutationResult{}, err
	}

	// The repeated password must verify against the freshly computed hash.
	if bcrypt.CompareHashAndPassword(hash, []byte(input.RepeatedPassword)) != nil {
		return ports.MutationResult{State: &domain.MutationState{
			Message: "Passwords do not match!",
		}}, nil
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("insert user failed")
		// Summary string shared with the invoice create path; the dashboard
		// renders it verbatim.
		return ports.MutationResult{State: &domain.MutationState{
			Message: "Database Error: Failed to create invoice.",
		}}, nil
	}

	return ports.MutationResult{RedirectTo: LoginPath}, nil
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ucyo/www-next-dashboard/internal/api/metrics"
	"github.com/ucyo/www-next-dashboard/internal/core/domain"
	"github.com/ucyo/www-next-dashboard/internal/core/ports"
)

// sessionCookie must match what the auth middleware reads.
const sessionCookie = "session"

// AuthHandler handles login and registration form submissions.
type AuthHandler struct {
	sessions     ports.SessionService
	registration ports.RegistrationService
}

func NewAuthHandler(sessions ports.SessionService, registration ports.RegistrationService) *AuthHandler {
	return &AuthHandler{sessions: sessions, registration: registration}
}

// Login handles POST /login.
//
// A recognised sign-in failure is rendered as form state; an unrecognised
// provider fault propagates to the central error handler.
//
// @Summary      Sign in with email and password
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        email     formData  string  true  "Account email"
// @Param        password  formData  string  true  "Account password"
// @Success      303  "Redirect to the dashboard; session cookie set"
// @Success      200  {object}  domain.MutationState  "Failure state for the form to re-render"
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	defer timeMutation("user", "login")()
	creds := ports.Credentials{
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}

	result, err := h.sessions.Authenticate(c.Request().Context(), creds)
	if err != nil {
		metrics.MutationsTotal.WithLabelValues("user", "login", "error").Inc()
		return err
	}

	if result.Message != "" {
		metrics.MutationsTotal.WithLabelValues("user", "login", "error").Inc()
		return c.JSON(http.StatusOK, domain.MutationState{Message: result.Message})
	}

	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    result.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	metrics.MutationsTotal.WithLabelValues("user", "login", "success").Inc()
	return c.Redirect(http.StatusSeeOther, result.RedirectTo)
}

// Register handles POST /register.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username           formData  string  true  "Display name, at least 3 characters"
// @Param        email              formData  string  true  "Account email"
// @Param        password           formData  string  true  "Password, at least 6 characters"
// @Param        repeated_password  formData  string  true  "Password repeated"
// @Success      303  "Redirect to the login page"
// @Success      200  {object}  domain.MutationState  "Failure state for the form to re-render"
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	defer timeMutation("user", "register")()
	form := ports.RegistrationForm{
		Username:         c.FormValue("username"),
		Email:            c.FormValue("email"),
		Password:         c.FormValue("password"),
		RepeatedPassword: c.FormValue("repeated_password"),
	}

	result, err := h.registration.Register(c.Request().Context(), form)
	if err != nil {
		return err
	}
	return respondMutation(c, "user", "register", result)
}

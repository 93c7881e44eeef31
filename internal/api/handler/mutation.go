package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ucyo/www-next-dashboard/internal/api/metrics"
	"github.com/ucyo/www-next-dashboard/internal/core/ports"
)

// timeMutation records the duration of a mutation once it completes.
// Usage: defer timeMutation(entity, operation)()
func timeMutation(entity, operation string) func() {
	start := time.Now()
	return func() {
		metrics.MutationDuration.WithLabelValues(entity, operation).Observe(time.Since(start).Seconds())
	}
}

// respondMutation renders a MutationResult. Failure states go back to the
// form as a 200 JSON body — the form re-renders them, mirroring how the
// dashboard consumes mutation state. Success is a 303 redirect, or 204 when
// the mutation has nothing to navigate to (delete).
func respondMutation(c echo.Context, entity, operation string, result ports.MutationResult) error {
	outcome := "success"
	defer func() {
		metrics.MutationsTotal.WithLabelValues(entity, operation, outcome).Inc()
	}()

	if result.State != nil {
		if result.State.Errors != nil {
			outcome = "validation_error"
		} else {
			outcome = "error"
		}
		return c.JSON(http.StatusOK, result.State)
	}

	if result.RedirectTo != "" {
		return c.Redirect(http.StatusSeeOther, result.RedirectTo)
	}
	return c.NoContent(http.StatusNoContent)
}

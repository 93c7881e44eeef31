package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ucyo/www-next-dashboard/internal/core/ports"
)

// CustomerHandler serves the customers the invoice form selects from.
type CustomerHandler struct {
	repo ports.CustomerRepository
}

func NewCustomerHandler(repo ports.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{repo: repo}
}

// List handles GET /dashboard/customers.
//
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Security     SessionAuth
// @Success      200  {array}  domain.Customer
// @Router       /dashboard/customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.repo.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

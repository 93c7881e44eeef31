package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ucyo/www-next-dashboard/internal/core/ports"
)

// InvoiceHandler handles the invoice form mutations and the cached listing.
type InvoiceHandler struct {
	service ports.InvoiceService
}

func NewInvoiceHandler(service ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// invoiceForm extracts the declared invoice fields from the submission.
// Any other form fields are ignored.
func invoiceForm(c echo.Context) ports.InvoiceForm {
	return ports.InvoiceForm{
		CustomerID: c.FormValue("customerId"),
		Amount:     c.FormValue("amount"),
		Status:     c.FormValue("status"),
	}
}

// Create handles POST /dashboard/invoices.
//
// @Summary      Create an invoice from a form submission
// @Tags         invoices
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Security     SessionAuth
// @Param        customerId  formData  string  true  "Customer identifier"
// @Param        amount      formData  string  true  "Amount in dollars"
// @Param        status      formData  string  true  "pending or paid"
// @Success      303  "Redirect to the invoices listing"
// @Success      200  {object}  domain.MutationState  "Failure state for the form to re-render"
// @Router       /dashboard/invoices [post]
func (h *InvoiceHandler) Create(c echo.Context) error {
	defer timeMutation("invoice", "create")()
	result := h.service.Create(c.Request().Context(), invoiceForm(c))
	return respondMutation(c, "invoice", "create", result)
}

// Update handles PUT /dashboard/invoices/:id.
//
// @Summary      Update an invoice from a form submission
// @Tags         invoices
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Security     SessionAuth
// @Param        id          path      string  true  "Invoice identifier"
// @Param        customerId  formData  string  true  "Customer identifier"
// @Param        amount      formData  string  true  "Amount in dollars"
// @Param        status      formData  string  true  "pending or paid"
// @Success      303  "Redirect to the invoices listing"
// @Success      200  {object}  domain.MutationState  "Failure state for the form to re-render"
// @Router       /dashboard/invoices/{id} [put]
func (h *InvoiceHandler) Update(c echo.Context) error {
	defer timeMutation("invoice", "update")()
	result := h.service.Update(c.Request().Context(), c.Param("id"), invoiceForm(c))
	return respondMutation(c, "invoice", "update", result)
}

// Delete handles DELETE /dashboard/invoices/:id.
//
// @Summary      Delete an invoice
// @Tags         invoices
// @Produce      json
// @Security     SessionAuth
// @Param        id  path  string  true  "Invoice identifier"
// @Success      204  "Deleted (or already gone)"
// @Success      200  {object}  domain.MutationState  "Failure state for the form to re-render"
// @Router       /dashboard/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c echo.Context) error {
	defer timeMutation("invoice", "delete")()
	result := h.service.Delete(c.Request().Context(), c.Param("id"))
	return respondMutation(c, "invoice", "delete", result)
}

// List handles GET /dashboard/invoices.
//
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Security     SessionAuth
// @Param        query  query  string  false  "Partial match on customer or status"
// @Param        page   query  int     false  "1-based page number"
// @Param        limit  query  int     false  "Rows per page (max 100)"
// @Success      200  {object}  ports.InvoiceList
// @Router       /dashboard/invoices [get]
func (h *InvoiceHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	list, err := h.service.List(c.Request().Context(), ports.ListInvoicesFilter{
		Query: c.QueryParam("query"),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

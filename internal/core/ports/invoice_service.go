package ports

import (
	"context"

	"github.com/ucyo/www-next-dashboard/internal/core/domain"
)

// InvoiceForm is the raw, untrusted form submission for creating or updating
// an invoice. All values arrive as strings; undeclared fields are ignored at
// the transport layer.
type InvoiceForm struct {
	CustomerID string
	Amount     string
	Status     string
}

// MutationResult is the tagged outcome of a mutation. Exactly one shape is
// populated: a non-nil State for the form to re-render, or a RedirectTo path
// the transport should navigate to. The zero value means "done, nothing to
// render" (delete success).
type MutationResult struct {
	State      *domain.MutationState
	RedirectTo string
}

// ListInvoicesFilter carries the query parameters of the invoices listing.
type ListInvoicesFilter struct {
	Query string // optional: partial match on customer_id or status
	Page  int    // 1-based
	Limit int    // rows per page (capped at 100 by the service)
}

// InvoiceList is the rendered listing payload. It is what the page cache
// stores verbatim.
type InvoiceList struct {
	Items []*domain.Invoice `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// InvoiceService defines the invoice mutations and the cached listing read.
type InvoiceService interface {
	Create(ctx context.Context, form InvoiceForm) MutationResult
	Update(ctx context.Context, id string, form InvoiceForm) MutationResult
	Delete(ctx context.Context, id string) MutationResult
	List(ctx context.Context, filter ListInvoicesFilter) (*InvoiceList, error)
}

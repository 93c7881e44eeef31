package ports

import (
	"context"

	"github.com/ucyo/www-next-dashboard/internal/core/domain"
)

// InvoiceRepository defines persistence operations for invoices. Every method
// issues exactly one parameterized statement; values are always bound, never
// interpolated into the query text.
type InvoiceRepository interface {
	Insert(ctx context.Context, inv *domain.Invoice) error
	// Update rewrites customer reference, amount and status of the identified
	// row. The issue date is never modified after creation.
	Update(ctx context.Context, inv *domain.Invoice) error
	// Delete removes the row matching id and reports how many rows matched.
	// A missing row is zero affected rows, not an error.
	Delete(ctx context.Context, id string) (int64, error)
	// List returns a page of invoices matching filter and the total count.
	List(ctx context.Context, filter ListInvoicesFilter) ([]*domain.Invoice, int64, error)
}

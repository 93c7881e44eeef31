package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ucyo/www-next-dashboard/internal/core/domain"
	"github.com/ucyo/www-next-dashboard/internal/core/ports"
)

// InvoiceRepository persists invoices. Every mutation is a single statement
// with bound parameters.
type InvoiceRepository struct {
	db *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Insert(ctx context.Context, inv *domain.Invoice) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO invoices (customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4)
	`, inv.CustomerID, inv.AmountCents, string(inv.Status), inv.Date)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepository) Update(ctx context.Context, inv *domain.Invoice) error {
	// date is set at creation and never rewritten.
	_, err := r.db.Exec(ctx, `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4
	`, inv.CustomerID, inv.AmountCents, string(inv.Status), inv.ID)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) (int64, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete invoice: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func (r *InvoiceRepository) List(ctx context.Context, filter ports.ListInvoicesFilter) ([]*domain.Invoice, int64, error) {
	offset := (filter.Page - 1) * filter.Limit

	rows, err := r.db.Query(ctx, `
		SELECT id, customer_id, amount, status, date
		FROM invoices
		WHERE $1 = '' OR customer_id ILIKE '%' || $1 || '%' OR status ILIKE '%' || $1 || '%'
		ORDER BY date DESC, id
		LIMIT $2 OFFSET $3
	`, filter.Query, filter.Limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var items []*domain.Invoice
	for rows.Next() {
		var (
			inv    domain.Invoice
			status string
			date   time.Time
		)
		if err := rows.Scan(&inv.ID, &inv.CustomerID, &inv.AmountCents, &status, &date); err != nil {
			return nil, 0, fmt.Errorf("scan invoice: %w", err)
		}
		inv.Status = domain.InvoiceStatus(status)
		inv.Date = date.Format(time.DateOnly)
		items = append(items, &inv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}

	var total int64
	err = r.db.QueryRow(ctx, `
		SELECT count(*)
		FROM invoices
		WHERE $1 = '' OR customer_id ILIKE '%' || $1 || '%' OR status ILIKE '%' || $1 || '%'
	`, filter.Query).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count invoices: %w", err)
	}

	return items, total, nil
}

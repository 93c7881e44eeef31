package domain

import "errors"

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	StatusPending InvoiceStatus = "pending"
	StatusPaid    InvoiceStatus = "paid"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

// Valid reports whether s is one of the accepted invoice statuses.
func (s InvoiceStatus) Valid() bool {
	return s == StatusPending || s == StatusPaid
}

// Invoice is a row in the invoices table. AmountCents holds the amount in
// minor currency units so money never passes through floating point.
type Invoice struct {
	ID          string        `json:"id"`
	CustomerID  string        `json:"customer_id"`
	AmountCents int64         `json:"amount"`
	Status      InvoiceStatus `json:"status"`
	Date        string        `json:"date"` // ISO date, day precision ("2006-01-02")
}

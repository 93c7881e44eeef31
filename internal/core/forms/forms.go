// Package forms validates untrusted form submissions against per-entity
// schemas. Each entity gets one pure validation function that either returns
// the coerced, strongly typed record or a FieldErrors map carrying the exact
// messages the dashboard renders next to each input.
package forms

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/ucyo/www-next-dashboard/internal/core/domain"
	"github.com/ucyo/www-next-dashboard/internal/core/ports"
)

// FieldErrors maps a form field to its ordered list of violation messages.
type FieldErrors map[string][]string

func (f FieldErrors) add(field, msg string) { f[field] = append(f[field], msg) }

// Form messages. The wording is part of the UI contract and is rendered
// verbatim, even where the text lags behind the rule actually enforced.
const (
	MsgSelectCustomer   = "Please select a customer."
	MsgAmountTooSmall   = "Please enter an amount greater than $0."
	MsgAmountTooLarge   = "Please enter an amount less than $9,999,999.99"
	MsgSelectStatus     = "Please select an invoice status."
	MsgUsernameTooShort = "Username must be at least 3 characters long."
	MsgInvalidEmail     = "Please provide a valid email address."
	MsgPasswordTooShort = "Password must be at least 4 characters long."
	MsgRepeatedMismatch = "Password must be the same as password."
)

var validate = validator.New()

// amountMax is exclusive: an amount of exactly 9,999,999 is rejected.
var amountMax = decimal.NewFromInt(9_999_999)

type invoiceSchema struct {
	CustomerID string `validate:"required"`
	Status     string `validate:"required,oneof=pending paid"`
}

// InvoiceInput is the sanitized invoice record a successful validation yields.
// Amount is a decimal so the conversion to cents never rounds through floats.
type InvoiceInput struct {
	CustomerID string
	Amount     decimal.Decimal
	Status     domain.InvoiceStatus
}

// ValidateInvoice checks a raw invoice submission. On success the returned
// FieldErrors is nil.
func ValidateInvoice(form ports.InvoiceForm) (InvoiceInput, FieldErrors) {
	errs := FieldErrors{}

	schema := invoiceSchema{CustomerID: form.CustomerID, Status: form.Status}
	if err := validate.Struct(schema); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			for _, fe := range ve {
				switch fe.StructField() {
				case "CustomerID":
					errs.add("customerId", MsgSelectCustomer)
				case "Status":
					errs.add("status", MsgSelectStatus)
				}
			}
		}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(form.Amount))
	switch {
	case err != nil || !amount.IsPositive():
		// Unparseable input is reported the same way as a non-positive amount.
		errs.add("amount", MsgAmountTooSmall)
	case !amount.LessThan(amountMax):
		errs.add("amount", MsgAmountTooLarge)
	}

	if len(errs) > 0 {
		return InvoiceInput{}, errs
	}
	return InvoiceInput{
		CustomerID: form.CustomerID,
		Amount:     amount,
		Status:     domain.InvoiceStatus(form.Status),
	}, nil
}

type registrationSchema struct {
	Username         string `validate:"required,min=3"`
	Email            string `validate:"required,email"`
	Password         string `validate:"required,min=6"`
	RepeatedPassword string `validate:"required,min=6"`
}

// RegistrationInput is the sanitized registration record.
type RegistrationInput struct {
	Username         string
	Email            string
	Password         string
	RepeatedPassword string
}

// ValidateRegistration checks a raw registration submission.
func ValidateRegistration(form ports.RegistrationForm) (RegistrationInput, FieldErrors) {
	errs := FieldErrors{}

	schema := registrationSchema{
		Username:         form.Username,
		Email:            form.Email,
		Password:         form.Password,
		RepeatedPassword: form.RepeatedPassword,
	}
	if err := validate.Struct(schema); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			for _, fe := range ve {
				switch fe.StructField() {
				case "Username":
					errs.add("username", MsgUsernameTooShort)
				case "Email":
					errs.add("email", MsgInvalidEmail)
				case "Password":
					errs.add("password", MsgPasswordTooShort)
				case "RepeatedPassword":
					errs.add("repeated_password", MsgRepeatedMismatch)
				}
			}
		}
	}

	if len(errs) > 0 {
		return RegistrationInput{}, errs
	}
	return RegistrationInput{
		Username:         form.Username,
		Email:            form.Email,
		Password:         form.Password,
		RepeatedPassword: form.RepeatedPassword,
	}, nil
}

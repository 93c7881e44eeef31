package forms

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ucyo/www-next-dashboard/internal/core/domain"
	"github.com/ucyo/www-next-dashboard/internal/core/ports"
)

func validInvoiceForm() ports.InvoiceForm {
	return ports.InvoiceForm{CustomerID: "c1", Amount: "100", Status: "pending"}
}

func TestValidateInvoice_Success(t *testing.T) {
	input, errs := ValidateInvoice(validInvoiceForm())
	if errs != nil {
		t.Fatalf("unexpected field errors: %v", errs)
	}
	if input.CustomerID != "c1" {
		t.Fatalf("unexpected customer: %s", input.CustomerID)
	}
	if input.Status != domain.StatusPending {
		t.Fatalf("unexpected status: %s", input.Status)
	}
	if cents := input.Amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart(); cents != 10000 {
		t.Fatalf("expected 10000 cents, got %d", cents)
	}
}

func TestValidateInvoice_AmountRange(t *testing.T) {
	cases := []struct {
		name   string
		amount string
		msg    string // expected single message, empty = valid
	}{
		{"smallest valid", "0.01", ""},
		{"typical", "250.50", ""},
		{"just below max", "9999998.99", ""},
		{"zero", "0", MsgAmountTooSmall},
		{"negative", "-5", MsgAmountTooSmall},
		{"empty", "", MsgAmountTooSmall},
		{"not a number", "ten dollars", MsgAmountTooSmall},
		{"exactly max", "9999999", MsgAmountTooLarge},
		{"above max", "10000000", MsgAmountTooLarge},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validInvoiceForm()
			form.Amount = tc.amount
			_, errs := ValidateInvoice(form)

			if tc.msg == "" {
				if errs != nil {
					t.Fatalf("expected valid, got %v", errs)
				}
				return
			}
			got := errs["amount"]
			if len(got) != 1 || got[0] != tc.msg {
				t.Fatalf("expected [%q], got %v", tc.msg, got)
			}
		})
	}
}

func TestValidateInvoice_Status(t *testing.T) {
	for _, status := range []string{"pending", "paid"} {
		form := validInvoiceForm()
		form.Status = status
		if _, errs := ValidateInvoice(form); errs != nil {
			t.Fatalf("status %q should be valid, got %v", status, errs)
		}
	}
	for _, status := range []string{"", "bogus", "PAID", "overdue"} {
		form := validInvoiceForm()
		form.Status = status
		_, errs := ValidateInvoice(form)
		got := errs["status"]
		if len(got) != 1 || got[0] != MsgSelectStatus {
			t.Fatalf("status %q: expected [%q], got %v", status, MsgSelectStatus, got)
		}
	}
}

func TestValidateInvoice_AllFieldsInvalid(t *testing.T) {
	_, errs := ValidateInvoice(ports.InvoiceForm{CustomerID: "", Amount: "-5", Status: "bogus"})
	if errs == nil {
		t.Fatal("expected field errors")
	}
	if got := errs["customerId"]; len(got) != 1 || got[0] != MsgSelectCustomer {
		t.Fatalf("customerId: got %v", got)
	}
	if got := errs["amount"]; len(got) != 1 || got[0] != MsgAmountTooSmall {
		t.Fatalf("amount: got %v", got)
	}
	if got := errs["status"]; len(got) != 1 || got[0] != MsgSelectStatus {
		t.Fatalf("status: got %v", got)
	}
}

func validRegistrationForm() ports.RegistrationForm {
	return ports.RegistrationForm{
		Username:         "alice",
		Email:            "alice@example.com",
		Password:         "secret1",
		RepeatedPassword: "secret1",
	}
}

func TestValidateRegistration_Success(t *testing.T) {
	input, errs := ValidateRegistration(validRegistrationForm())
	if errs != nil {
		t.Fatalf("unexpected field errors: %v", errs)
	}
	if input.Username != "alice" || input.Email != "alice@example.com" {
		t.Fatalf("unexpected input: %+v", input)
	}
}

func TestValidateRegistration_FieldRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ports.RegistrationForm)
		field  string
		msg    string
	}{
		{"short username", func(f *ports.RegistrationForm) { f.Username = "ab" }, "username", MsgUsernameTooShort},
		{"empty username", func(f *ports.RegistrationForm) { f.Username = "" }, "username", MsgUsernameTooShort},
		{"bad email", func(f *ports.RegistrationForm) { f.Email = "not-an-email" }, "email", MsgInvalidEmail},
		{"empty email", func(f *ports.RegistrationForm) { f.Email = "" }, "email", MsgInvalidEmail},
		{"short password", func(f *ports.RegistrationForm) { f.Password = "12345" }, "password", MsgPasswordTooShort},
		{"short repeated", func(f *ports.RegistrationForm) { f.RepeatedPassword = "12345" }, "repeated_password", MsgRepeatedMismatch},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validRegistrationForm()
			tc.mutate(&form)
			_, errs := ValidateRegistration(form)
			got := errs[tc.field]
			if len(got) != 1 || got[0] != tc.msg {
				t.Fatalf("expected [%q] on %s, got %v", tc.msg, tc.field, got)
			}
		})
	}
}

// The password rules are length checks only; the validator does not compare
// the two fields. The match check happens later, against the computed hash.
func TestValidateRegistration_NoCrossFieldCheck(t *testing.T) {
	form := validRegistrationForm()
	form.RepeatedPassword = "different"
	if _, errs := ValidateRegistration(form); errs != nil {
		t.Fatalf("expected valid, got %v", errs)
	}
}

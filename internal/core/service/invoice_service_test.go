package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ucyo/www-next-dashboard/internal/core/domain"
	"github.com/ucyo/www-next-dashboard/internal/core/forms"
	"github.com/ucyo/www-next-dashboard/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub ports
// ---------------------------------------------------------------------------

type stubInvoiceRepo struct {
	inserted       []*domain.Invoice
	updated        []*domain.Invoice
	deleted        []string
	deleteAffected int64

	insertErr error
	updateErr error
	deleteErr error
	listErr   error

	items     []*domain.Invoice
	total     int64
	listCalls int
}

func (r *stubInvoiceRepo) Insert(_ context.Context, inv *domain.Invoice) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	clone := *inv
	r.inserted = append(r.inserted, &clone)
	return nil
}

func (r *stubInvoiceRepo) Update(_ context.Context, inv *domain.Invoice) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	clone := *inv
	r.updated = append(r.updated, &clone)
	return nil
}

func (r *stubInvoiceRepo) Delete(_ context.Context, id string) (int64, error) {
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	r.deleted = append(r.deleted, id)
	return r.deleteAffected, nil
}

func (r *stubInvoiceRepo) List(_ context.Context, _ ports.ListInvoicesFilter) ([]*domain.Invoice, int64, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, 0, r.listErr
	}
	return r.items, r.total, nil
}

type stubPageCache struct {
	store       map[string][]byte
	invalidated []string

	getErr error
	setErr error
	invErr error
}

func newStubPageCache() *stubPageCache {
	return &stubPageCache{store: make(map[string][]byte)}
}

func (c *stubPageCache) Get(_ context.Context, path string) ([]byte, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	payload, ok := c.store[path]
	return payload, ok, nil
}

func (c *stubPageCache) Set(_ context.Context, path string, payload []byte) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.store[path] = payload
	return nil
}

func (c *stubPageCache) Invalidate(_ context.Context, path string) error {
	if c.invErr != nil {
		return c.invErr
	}
	c.invalidated = append(c.invalidated, path)
	delete(c.store, path)
	return nil
}

func newInvoiceService(repo *stubInvoiceRepo, cache *stubPageCache) *InvoiceService {
	svc := NewInvoiceService(repo, cache, zerolog.Nop())
	svc.now = func() time.Time {
		return time.Date(2025, time.May, 4, 13, 37, 0, 0, time.UTC)
	}
	return svc
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestInvoiceService_Create_Success(t *testing.T) {
	repo := &stubInvoiceRepo{}
	cache := newStubPageCache()
	svc := newInvoiceService(repo, cache)

	result := svc.Create(context.Background(), ports.InvoiceForm{
		CustomerID: "c1", Amount: "100", Status: "pending",
	})

	if result.State != nil {
		t.Fatalf("expected success, got state %+v", result.State)
	}
	if result.RedirectTo != InvoicesPath {
		t.Fatalf("expected redirect to %s, got %q", InvoicesPath, result.RedirectTo)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected one insert, got %d", len(repo.inserted))
	}

	inv := repo.inserted[0]
	if inv.CustomerID != "c1" {
		t.Fatalf("unexpected customer: %s", inv.CustomerID)
	}
	if inv.AmountCents != 10000 {
		t.Fatalf("expected 10000 cents, got %d", inv.AmountCents)
	}
	if inv.Status != domain.StatusPending {
		t.Fatalf("unexpected status: %s", inv.Status)
	}
	if inv.Date != "2025-05-04" {
		t.Fatalf("expected today's date, got %q", inv.Date)
	}

	if len(cache.invalidated) != 1 || cache.invalidated[0] != InvoicesPath {
		t.Fatalf("expected listing invalidation, got %v", cache.invalidated)
	}
}

func TestInvoiceService_Create_RoundsToCents(t *testing.T) {
	repo := &stubInvoiceRepo{}
	svc := newInvoiceService(repo, newStubPageCache())

	svc.Create(context.Background(), ports.InvoiceForm{
		CustomerID: "c1", Amount: "19.99", Status: "paid",
	})

	if len(repo.inserted) != 1 || repo.inserted[0].AmountCents != 1999 {
		t.Fatalf("expected 1999 cents, got %+v", repo.inserted)
	}
}

func TestInvoiceService_Create_ValidationFailure(t *testing.T) {
	repo := &stubInvoiceRepo{}
	cache := newStubPageCache()
	svc := newInvoiceService(repo, cache)

	result := svc.Create(context.Background(), ports.InvoiceForm{
		CustomerID: "", Amount: "-5", Status: "bogus",
	})

	if result.State == nil {
		t.Fatal("expected failure state")
	}
	if result.State.Message != "Missing Fields. Failed to create Invoice." {
		t.Fatalf("unexpected message: %q", result.State.Message)
	}
	for _, field := range []string{"customerId", "amount", "status"} {
		if len(result.State.Errors[field]) == 0 {
			t.Fatalf("expected errors for %s, got %v", field, result.State.Errors)
		}
	}
	if len(repo.inserted) != 0 {
		t.Fatal("validation failure must not reach the database")
	}
	if len(cache.invalidated) != 0 {
		t.Fatal("validation failure must not invalidate the cache")
	}
}

func TestInvoiceService_Create_DatabaseError(t *testing.T) {
	repo := &stubInvoiceRepo{insertErr: errors.New("connection refused")}
	cache := newStubPageCache()
	svc := newInvoiceService(repo, cache)

	result := svc.Create(context.Background(), ports.InvoiceForm{
		CustomerID: "c1", Amount: "100", Status: "pending",
	})

	if result.State == nil || result.State.Message != "Database Error: Failed to create invoice." {
		t.Fatalf("unexpected result: %+v", result.State)
	}
	if result.State.Errors != nil {
		t.Fatalf("persistence failure carries no field errors, got %v", result.State.Errors)
	}
	if len(cache.invalidated) != 0 {
		t.Fatal("failed insert must not invalidate the cache")
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestInvoiceService_Update_Success(t *testing.T) {
	repo := &stubInvoiceRepo{}
	cache := newStubPageCache()
	svc := newInvoiceService(repo, cache)

	result := svc.Update(context.Background(), "inv-7", ports.InvoiceForm{
		CustomerID: "c2", Amount: "50.25", Status: "paid",
	})

	if result.RedirectTo != InvoicesPath || result.State != nil {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(repo.updated) != 1 {
		t.Fatalf("expected one update, got %d", len(repo.updated))
	}

	inv := repo.updated[0]
	if inv.ID != "inv-7" || inv.CustomerID != "c2" || inv.AmountCents != 5025 || inv.Status != domain.StatusPaid {
		t.Fatalf("unexpected row: %+v", inv)
	}
	if inv.Date != "" {
		t.Fatalf("update must not touch the issue date, got %q", inv.Date)
	}
	if len(cache.invalidated) != 1 {
		t.Fatalf("expected listing invalidation, got %v", cache.invalidated)
	}
}

// The update path reuses the create summary string verbatim.
func TestInvoiceService_Update_ValidationMessage(t *testing.T) {
	repo := &stubInvoiceRepo{}
	svc := newInvoiceService(repo, newStubPageCache())

	result := svc.Update(context.Background(), "inv-7", ports.InvoiceForm{})

	if result.State == nil || result.State.Message != "Missing Fields. Failed to create Invoice." {
		t.Fatalf("unexpected result: %+v", result.State)
	}
	if len(repo.updated) != 0 {
		t.Fatal("validation failure must not reach the database")
	}
}

func TestInvoiceService_Update_DatabaseError(t *testing.T) {
	repo := &stubInvoiceRepo{updateErr: errors.New("deadlock")}
	svc := newInvoiceService(repo, newStubPageCache())

	result := svc.Update(context.Background(), "inv-7", ports.InvoiceForm{
		CustomerID: "c1", Amount: "100", Status: "pending",
	})

	if result.State == nil || result.State.Message != "Database Error: Failed to update invoice." {
		t.Fatalf("unexpected result: %+v", result.State)
	}
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestInvoiceService_Delete_Success(t *testing.T) {
	repo := &stubInvoiceRepo{deleteAffected: 1}
	cache := newStubPageCache()
	svc := newInvoiceService(repo, cache)

	result := svc.Delete(context.Background(), "inv-42")

	if result.State != nil || result.RedirectTo != "" {
		t.Fatalf("delete success returns nothing, got %+v", result)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "inv-42" {
		t.Fatalf("unexpected deletes: %v", repo.deleted)
	}
	if len(cache.invalidated) != 1 {
		t.Fatalf("expected listing invalidation, got %v", cache.invalidated)
	}
}

// Deleting a row that no longer exists affects zero rows, does not error and
// still invalidates the listing.
func TestInvoiceService_Delete_MissingRow(t *testing.T) {
	repo := &stubInvoiceRepo{deleteAffected: 0}
	cache := newStubPageCache()
	svc := newInvoiceService(repo, cache)

	result := svc.Delete(context.Background(), "inv-42")

	if result.State != nil {
		t.Fatalf("missing row is not an error, got %+v", result.State)
	}
	if len(cache.invalidated) != 1 {
		t.Fatalf("expected listing invalidation, got %v", cache.invalidated)
	}
}

func TestInvoiceService_Delete_DatabaseError(t *testing.T) {
	repo := &stubInvoiceRepo{deleteErr: errors.New("timeout")}
	cache := newStubPageCache()
	svc := newInvoiceService(repo, cache)

	result := svc.Delete(context.Background(), "inv-42")

	if result.State == nil || result.State.Message != "Database Error: Failed to delete invoice." {
		t.Fatalf("unexpected result: %+v", result.State)
	}
	if len(cache.invalidated) != 0 {
		t.Fatal("failed delete must not invalidate the cache")
	}
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestInvoiceService_List_CachesDefaultPage(t *testing.T) {
	repo := &stubInvoiceRepo{
		items: []*domain.Invoice{{ID: "inv-1", CustomerID: "c1", AmountCents: 10000, Status: domain.StatusPending, Date: "2025-05-04"}},
		total: 1,
	}
	cache := newStubPageCache()
	svc := newInvoiceService(repo, cache)

	first, err := svc.List(context.Background(), ports.ListInvoicesFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.listCalls != 1 || first.Total != 1 {
		t.Fatalf("expected one query, got %d calls", repo.listCalls)
	}
	if _, ok := cache.store[InvoicesPath]; !ok {
		t.Fatal("expected listing to be cached")
	}

	second, err := svc.List(context.Background(), ports.ListInvoicesFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected cache hit, got %d queries", repo.listCalls)
	}
	if len(second.Items) != 1 || second.Items[0].ID != "inv-1" {
		t.Fatalf("unexpected cached payload: %+v", second)
	}
}

func TestInvoiceService_List_SearchBypassesCache(t *testing.T) {
	repo := &stubInvoiceRepo{}
	cache := newStubPageCache()
	cache.store[InvoicesPath] = mustJSON(t, &ports.InvoiceList{Total: 99})
	svc := newInvoiceService(repo, cache)

	if _, err := svc.List(context.Background(), ports.ListInvoicesFilter{Query: "paid"}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatal("filtered listing must query the database")
	}
}

func TestInvoiceService_List_MutationInvalidatesCachedPage(t *testing.T) {
	repo := &stubInvoiceRepo{deleteAffected: 1}
	cache := newStubPageCache()
	svc := newInvoiceService(repo, cache)

	if _, err := svc.List(context.Background(), ports.ListInvoicesFilter{}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	svc.Delete(context.Background(), "inv-1")

	if _, ok := cache.store[InvoicesPath]; ok {
		t.Fatal("mutation must drop the cached listing")
	}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	payload, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return payload
}

// Exact message strings are load-bearing for the UI; pin them.
func TestInvoiceMessages(t *testing.T) {
	if forms.MsgAmountTooLarge != "Please enter an amount less than $9,999,999.99" {
		t.Fatalf("unexpected message: %q", forms.MsgAmountTooLarge)
	}
	if forms.MsgAmountTooSmall != "Please enter an amount greater than $0." {
		t.Fatalf("unexpected message: %q", forms.MsgAmountTooSmall)
	}
}

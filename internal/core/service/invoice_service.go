package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ucyo/www-next-dashboard/internal/api/metrics"
	"github.com/ucyo/www-next-dashboard/internal/core/domain"
	"github.com/ucyo/www-next-dashboard/internal/core/forms"
	"github.com/ucyo/www-next-dashboard/internal/core/ports"
)

// InvoicesPath is the listing view every invoice mutation invalidates and
// redirects back to.
const InvoicesPath = "/dashboard/invoices"

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

var centsFactor = decimal.NewFromInt(100)

// InvoiceService implements the invoice mutations: validate the form, issue a
// single bound-parameter statement, invalidate the cached listing, redirect.
// Persistence failures are converted to form state, never returned as errors.
type InvoiceService struct {
	repo   ports.InvoiceRepository
	cache  ports.PageCache
	logger zerolog.Logger
	now    func() time.Time
}

func NewInvoiceService(repo ports.InvoiceRepository, cache ports.PageCache, logger zerolog.Logger) *InvoiceService {
	return &InvoiceService{repo: repo, cache: cache, logger: logger, now: time.Now}
}

// Create validates the submission and inserts a new invoice dated today.
func (s *InvoiceService) Create(ctx context.Context, form ports.InvoiceForm) ports.MutationResult {
	input, fieldErrs := forms.ValidateInvoice(form)
	if fieldErrs != nil {
		return ports.MutationResult{State: &domain.MutationState{
			Errors:  fieldErrs,
			Message: "Missing Fields. Failed to create Invoice.",
		}}
	}

	inv := &domain.Invoice{
		CustomerID:  input.CustomerID,
		AmountCents: toCents(input.Amount),
		Status:      input.Status,
		Date:        s.now().UTC().Format(time.DateOnly),
	}
	if err := s.repo.Insert(ctx, inv); err != nil {
		s.logger.Error().Err(err).Str("customer_id", inv.CustomerID).Msg("insert invoice failed")
		return ports.MutationResult{State: &domain.MutationState{
			Message: "Database Error: Failed to create invoice.",
		}}
	}

	s.invalidateListing(ctx)
	return ports.MutationResult{RedirectTo: InvoicesPath}
}

// Update validates the submission and rewrites the identified invoice.
// The issue date is left untouched.
func (s *InvoiceService) Update(ctx context.Context, id string, form ports.InvoiceForm) ports.MutationResult {
	input, fieldErrs := forms.ValidateInvoice(form)
	if fieldErrs != nil {
		// Same summary as the create path; the UI renders it verbatim.
		return ports.MutationResult{State: &domain.MutationState{
			Errors:  fieldErrs,
			Message: "Missing Fields. Failed to create Invoice.",
		}}
	}

	inv := &domain.Invoice{
		ID:          id,
		CustomerID:  input.CustomerID,
		AmountCents: toCents(input.Amount),
		Status:      input.Status,
	}
	if err := s.repo.Update(ctx, inv); err != nil {
		s.logger.Error().Err(err).Str("invoice_id", id).Msg("update invoice failed")
		return ports.MutationResult{State: &domain.MutationState{
			Message: "Database Error: Failed to update invoice.",
		}}
	}

	s.invalidateListing(ctx)
	return ports.MutationResult{RedirectTo: InvoicesPath}
}

// Delete removes the invoice matching id. Deleting an id that no longer
// exists affects zero rows and still counts as success: the listing is
// invalidated either way.
func (s *InvoiceService) Delete(ctx context.Context, id string) ports.MutationResult {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("invoice_id", id).Msg("delete invoice failed")
		return ports.MutationResult{State: &domain.MutationState{
			Message: "Database Error: Failed to delete invoice.",
		}}
	}
	if affected == 0 {
		s.logger.Debug().Str("invoice_id", id).Msg("delete matched no rows")
	}

	s.invalidateListing(ctx)
	return ports.MutationResult{}
}

// List serves the invoices listing. The unfiltered first page is served from
// the page cache when present; every other shape of the query goes straight
// to the database.
func (s *InvoiceService) List(ctx context.Context, filter ports.ListInvoicesFilter) (*ports.InvoiceList, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	cacheable := filter.Query == "" && filter.Page == 1 && filter.Limit == defaultListLimit
	if cacheable {
		if payload, ok, err := s.cache.Get(ctx, InvoicesPath); err != nil {
			s.logger.Warn().Err(err).Msg("page cache read failed")
		} else if ok {
			var list ports.InvoiceList
			if err := json.Unmarshal(payload, &list); err == nil {
				metrics.ListingCacheTotal.WithLabelValues("hit").Inc()
				return &list, nil
			}
			// A payload that no longer unmarshals is stale by definition.
			s.invalidateListing(ctx)
		}
		metrics.ListingCacheTotal.WithLabelValues("miss").Inc()
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	list := &ports.InvoiceList{Items: items, Total: total, Page: filter.Page, Limit: filter.Limit}
	if cacheable {
		if payload, err := json.Marshal(list); err == nil {
			if err := s.cache.Set(ctx, InvoicesPath, payload); err != nil {
				s.logger.Warn().Err(err).Msg("page cache write failed")
			}
		}
	}
	return list, nil
}

func (s *InvoiceService) invalidateListing(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, InvoicesPath); err != nil {
		s.logger.Warn().Err(err).Str("path", InvoicesPath).Msg("cache invalidation failed")
	}
}

// toCents converts a decimal dollar amount to integer minor units.
func toCents(amount decimal.Decimal) int64 {
	return amount.Mul(centsFactor).Round(0).IntPart()
}

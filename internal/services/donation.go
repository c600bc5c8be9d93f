package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fooddonation/internal/domain"
	"fooddonation/internal/metrics"
)

type donationService struct {
	donations domain.DonationRepository
	totals    domain.FoodTotalsRepository
	logger    *slog.Logger
	now       func() time.Time
}

// NewDonationService creates a DonationService. totals may be nil to disable the
// per city and food type counters. now defaults to time.Now.
func NewDonationService(
	donations domain.DonationRepository,
	totals domain.FoodTotalsRepository,
	logger *slog.Logger,
	now func() time.Time,
) domain.DonationService {
	return &donationService{
		donations: donations,
		totals:    totals,
		logger:    logger,
		now:       orNow(now),
	}
}

func (s *donationService) CreateDonation(ctx context.Context, in domain.DonationInput) (*domain.Donation, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	createdAt := timestamp(s.now)
	d := domain.NewDonation(in, createdAt)
	if err := s.donations.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("create donation: %w", err)
	}
	metrics.RecordDonationCreated(string(d.FoodType), d.City)

	addTotals(ctx, s.totals, s.logger, d.City, string(d.FoodType), 1, 0, createdAt)
	return d, nil
}

func (s *donationService) ListDonations(ctx context.Context) ([]*domain.Donation, error) {
	donations, err := s.donations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	return donations, nil
}

// ListInventory evaluates freshness against the clock on every call; nothing
// retires expired donations in the background.
func (s *donationService) ListInventory(ctx context.Context) ([]*domain.Donation, error) {
	donations, err := s.donations.ListClaimable(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	metrics.SetInventorySize(len(donations))
	return donations, nil
}

// addTotals bumps the aggregate counters. The primary row is already written,
// so a failure here is logged and not returned.
func addTotals(ctx context.Context, totals domain.FoodTotalsRepository, logger *slog.Logger, city, foodType string, donated, requested int64, at time.Time) {
	if totals == nil {
		return
	}
	if err := totals.Add(ctx, city, foodType, donated, requested, at); err != nil && logger != nil {
		logger.WarnContext(ctx, "food totals update failed",
			"city", city,
			"food_type", foodType,
			"err", err,
		)
	}
}

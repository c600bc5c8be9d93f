package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fooddonation/internal/domain"
	"fooddonation/internal/metrics"
)

type ngoRequestService struct {
	requests domain.NgoRequestRepository
	totals   domain.FoodTotalsRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewNgoRequestService creates an NgoRequestService. totals may be nil.
func NewNgoRequestService(
	requests domain.NgoRequestRepository,
	totals domain.FoodTotalsRepository,
	logger *slog.Logger,
	now func() time.Time,
) domain.NgoRequestService {
	return &ngoRequestService{
		requests: requests,
		totals:   totals,
		logger:   logger,
		now:      orNow(now),
	}
}

func (s *ngoRequestService) CreateNgoRequest(ctx context.Context, in domain.NgoRequestInput) (*domain.NgoRequest, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	createdAt := timestamp(s.now)
	req := domain.NewNgoRequest(in, createdAt)
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create ngo request: %w", err)
	}
	metrics.RecordNgoRequestCreated(req.City)

	// Requirements are free text, so requests are counted under a single bucket per city.
	addTotals(ctx, s.totals, s.logger, req.City, domain.RequestedFoodType, 0, 1, createdAt)
	return req, nil
}

func (s *ngoRequestService) ListNgoRequests(ctx context.Context) ([]*domain.NgoRequest, error) {
	reqs, err := s.requests.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ngo requests: %w", err)
	}
	return reqs, nil
}

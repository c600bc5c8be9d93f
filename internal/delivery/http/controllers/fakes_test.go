package controllers

import (
	"context"
	"io"
	"log/slog"

	"fooddonation/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

type mockDonationService struct {
	donations []*domain.Donation
	created   *domain.Donation
	gotInput  *domain.DonationInput
	err       error
}

func (m *mockDonationService) CreateDonation(ctx context.Context, in domain.DonationInput) (*domain.Donation, error) {
	m.gotInput = &in
	if m.err != nil {
		return nil, m.err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return m.created, nil
}

func (m *mockDonationService) ListDonations(ctx context.Context) ([]*domain.Donation, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.donations, nil
}

func (m *mockDonationService) ListInventory(ctx context.Context) ([]*domain.Donation, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.donations, nil
}

type mockNgoRequestService struct {
	requests []*domain.NgoRequest
	created  *domain.NgoRequest
	err      error
}

func (m *mockNgoRequestService) CreateNgoRequest(ctx context.Context, in domain.NgoRequestInput) (*domain.NgoRequest, error) {
	if m.err != nil {
		return nil, m.err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return m.created, nil
}

func (m *mockNgoRequestService) ListNgoRequests(ctx context.Context) ([]*domain.NgoRequest, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.requests, nil
}

type mockFoodTotalsService struct {
	totals []*domain.FoodTotal
	err    error
}

func (m *mockFoodTotalsService) ListFoodTotals(ctx context.Context) ([]*domain.FoodTotal, error) {
	return m.totals, m.err
}

// Package unconfigured provides repositories for a process started without
// a database. Every call fails with domain.ErrStoreNotConfigured so handlers
// can answer 503 instead of the process refusing to start.
package unconfigured

import (
	"context"
	"time"

	"fooddonation/internal/domain"
)

// Store implements every domain repository interface used by the services.
type Store struct{}

// DonationRepository returns the store as a domain.DonationRepository.
func (Store) DonationRepository() domain.DonationRepository { return donations{} }

// NgoRequestRepository returns the store as a domain.NgoRequestRepository.
func (Store) NgoRequestRepository() domain.NgoRequestRepository { return ngoRequests{} }

// FoodTotalsRepository returns the store as a domain.FoodTotalsRepository.
func (Store) FoodTotalsRepository() domain.FoodTotalsRepository { return foodTotals{} }

type donations struct{}

func (donations) Create(context.Context, *domain.Donation) error { return domain.ErrStoreNotConfigured }
func (donations) List(context.Context) ([]*domain.Donation, error) {
	return nil, domain.ErrStoreNotConfigured
}
func (donations) ListClaimable(context.Context, time.Time) ([]*domain.Donation, error) {
	return nil, domain.ErrStoreNotConfigured
}

type ngoRequests struct{}

func (ngoRequests) Create(context.Context, *domain.NgoRequest) error {
	return domain.ErrStoreNotConfigured
}
func (ngoRequests) List(context.Context) ([]*domain.NgoRequest, error) {
	return nil, domain.ErrStoreNotConfigured
}

type foodTotals struct{}

func (foodTotals) Add(context.Context, string, string, int64, int64, time.Time) error {
	return domain.ErrStoreNotConfigured
}
func (foodTotals) List(context.Context) ([]*domain.FoodTotal, error) {
	return nil, domain.ErrStoreNotConfigured
}

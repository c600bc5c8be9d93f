package memory

import (
	"context"
	"sync"
	"time"

	"fooddonation/internal/domain"
)

type donationRepository struct {
	mu        sync.RWMutex
	nextID    int64
	donations []*domain.Donation
}

// NewDonationRepository returns an empty in-memory domain.DonationRepository.
func NewDonationRepository() domain.DonationRepository {
	return &donationRepository{nextID: 1}
}

func (r *donationRepository) Create(_ context.Context, d *domain.Donation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d.ID = r.nextID
	r.nextID++
	r.donations = append(r.donations, cloneDonation(d))
	return nil
}

func (r *donationRepository) List(_ context.Context) ([]*domain.Donation, error) {
	return r.filter(func(*domain.Donation) bool { return true }), nil
}

func (r *donationRepository) ListClaimable(_ context.Context, now time.Time) ([]*domain.Donation, error) {
	return r.filter(func(d *domain.Donation) bool { return d.IsClaimable(now) }), nil
}

// filter returns matching donations newest first, ties broken by id.
func (r *donationRepository) filter(keep func(*domain.Donation) bool) []*domain.Donation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Donation, 0, len(r.donations))
	for _, d := range r.donations {
		if keep(d) {
			out = append(out, cloneDonation(d))
		}
	}
	sortNewestFirst(out, func(d *domain.Donation) (time.Time, int64) { return d.CreatedAt, d.ID })
	return out
}

func cloneDonation(d *domain.Donation) *domain.Donation {
	c := *d
	if d.Area != nil {
		area := *d.Area
		c.Area = &area
	}
	if d.SafeUntil != nil {
		safe := *d.SafeUntil
		c.SafeUntil = &safe
	}
	return &c
}

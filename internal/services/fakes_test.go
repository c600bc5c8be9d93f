package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"fooddonation/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakeClock is a settable clock for freshness tests.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration)   { c.t = c.t.Add(d) }

type fakeDonationRepository struct {
	created    []*domain.Donation
	list       []*domain.Donation
	createErr  error
	listErr    error
	claimNow   time.Time
	claimCalls int
}

func (f *fakeDonationRepository) Create(ctx context.Context, d *domain.Donation) error {
	if f.createErr != nil {
		return f.createErr
	}
	d.ID = int64(len(f.created) + 1)
	f.created = append(f.created, d)
	return nil
}

func (f *fakeDonationRepository) List(ctx context.Context) ([]*domain.Donation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

func (f *fakeDonationRepository) ListClaimable(ctx context.Context, now time.Time) ([]*domain.Donation, error) {
	f.claimCalls++
	f.claimNow = now
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Donation
	for _, d := range f.list {
		if d.IsClaimable(now) {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeNgoRequestRepository struct {
	created   []*domain.NgoRequest
	list      []*domain.NgoRequest
	createErr error
	listErr   error
}

func (f *fakeNgoRequestRepository) Create(ctx context.Context, req *domain.NgoRequest) error {
	if f.createErr != nil {
		return f.createErr
	}
	req.ID = int64(len(f.created) + 1)
	f.created = append(f.created, req)
	return nil
}

func (f *fakeNgoRequestRepository) List(ctx context.Context) ([]*domain.NgoRequest, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

type totalsCall struct {
	city, foodType     string
	donated, requested int64
}

type fakeFoodTotalsRepository struct {
	calls   []totalsCall
	list    []*domain.FoodTotal
	addErr  error
	listErr error
}

func (f *fakeFoodTotalsRepository) Add(ctx context.Context, city, foodType string, donated, requested int64, at time.Time) error {
	f.calls = append(f.calls, totalsCall{city, foodType, donated, requested})
	return f.addErr
}

func (f *fakeFoodTotalsRepository) List(ctx context.Context) ([]*domain.FoodTotal, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

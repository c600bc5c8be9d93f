package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddonation/internal/domain"
)

func boolPtr(b bool) *bool { return &b }

func cookedInput() domain.DonationInput {
	return domain.DonationInput{
		DonorName:     "A",
		ContactNumber: "9876543210",
		FoodType:      "Cooked",
		Quantity:      "10 meals",
		City:          "Mumbai",
		IsFresh:       boolPtr(true),
	}
}

func TestDonationService_CreateDonation(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2025, 3, 1, 10, 0, 0, 123456789, time.UTC)}
	wantCreated := time.Date(2025, 3, 1, 10, 0, 0, 123456000, time.UTC)

	tests := []struct {
		name          string
		input         func() domain.DonationInput
		repo          *fakeDonationRepository
		wantErr       bool
		wantField     string
		wantSafeUntil *time.Time
	}{
		{
			name:          "cooked gets four hour window",
			input:         cookedInput,
			repo:          &fakeDonationRepository{},
			wantSafeUntil: func() *time.Time { t := wantCreated.Add(4 * time.Hour); return &t }(),
		},
		{
			name: "packed never expires",
			input: func() domain.DonationInput {
				in := cookedInput()
				in.FoodType = "Packed"
				return in
			},
			repo: &fakeDonationRepository{},
		},
		{
			name: "isFresh absent is rejected",
			input: func() domain.DonationInput {
				in := cookedInput()
				in.IsFresh = nil
				return in
			},
			repo:      &fakeDonationRepository{},
			wantErr:   true,
			wantField: "isFresh",
		},
		{
			name: "isFresh false is rejected",
			input: func() domain.DonationInput {
				in := cookedInput()
				in.IsFresh = boolPtr(false)
				return in
			},
			repo:      &fakeDonationRepository{},
			wantErr:   true,
			wantField: "isFresh",
		},
		{
			name: "short contact number is rejected",
			input: func() domain.DonationInput {
				in := cookedInput()
				in.ContactNumber = "98765"
				return in
			},
			repo:      &fakeDonationRepository{},
			wantErr:   true,
			wantField: "contactNumber",
		},
		{
			name:    "store unavailable",
			input:   cookedInput,
			repo:    &fakeDonationRepository{createErr: domain.ErrStoreNotConfigured},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := &fakeFoodTotalsRepository{}
			svc := NewDonationService(tt.repo, totals, discardLogger(), clock.Now)

			got, err := svc.CreateDonation(ctx, tt.input())
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantField != "" {
					var verr *domain.ValidationError
					require.ErrorAs(t, err, &verr)
					assert.Equal(t, tt.wantField, verr.Field)
				}
				assert.Empty(t, tt.repo.created, "nothing must be persisted")
				assert.Empty(t, totals.calls)
				return
			}
			require.NoError(t, err)
			require.Len(t, tt.repo.created, 1)
			assert.Equal(t, int64(1), got.ID)
			assert.Equal(t, domain.DonationStatusAvailable, got.Status)
			assert.True(t, got.IsFresh)
			assert.Equal(t, wantCreated, got.CreatedAt)
			assert.Equal(t, tt.wantSafeUntil, got.SafeUntil)
			require.Len(t, totals.calls, 1)
			assert.Equal(t, totalsCall{"Mumbai", string(got.FoodType), 1, 0}, totals.calls[0])
		})
	}
}

func TestDonationService_StoreErrorKeepsSentinel(t *testing.T) {
	svc := NewDonationService(&fakeDonationRepository{createErr: domain.ErrStoreNotConfigured}, nil, discardLogger(), nil)
	_, err := svc.CreateDonation(context.Background(), cookedInput())
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestDonationService_TotalsFailureDoesNotFailCreate(t *testing.T) {
	repo := &fakeDonationRepository{}
	totals := &fakeFoodTotalsRepository{addErr: errors.New("counter down")}
	svc := NewDonationService(repo, totals, discardLogger(), nil)

	got, err := svc.CreateDonation(context.Background(), cookedInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Len(t, totals.calls, 1)
}

func TestDonationService_NilTotalsDisablesTracking(t *testing.T) {
	svc := NewDonationService(&fakeDonationRepository{}, nil, nil, nil)
	_, err := svc.CreateDonation(context.Background(), cookedInput())
	require.NoError(t, err)
}

func TestDonationService_ListInventoryExpiresWithoutWrites(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	repo := &fakeDonationRepository{}
	svc := NewDonationService(repo, nil, discardLogger(), clock.Now)

	cooked, err := svc.CreateDonation(ctx, cookedInput())
	require.NoError(t, err)
	repo.list = repo.created

	inv, err := svc.ListInventory(ctx)
	require.NoError(t, err)
	require.Len(t, inv, 1)
	assert.Equal(t, cooked.ID, inv[0].ID)
	assert.Equal(t, clock.t, repo.claimNow)

	clock.Advance(4*time.Hour - time.Nanosecond)
	inv, err = svc.ListInventory(ctx)
	require.NoError(t, err)
	assert.Len(t, inv, 1)

	clock.Advance(time.Nanosecond)
	inv, err = svc.ListInventory(ctx)
	require.NoError(t, err)
	assert.Empty(t, inv)
	assert.Len(t, repo.created, 1, "expiry must not write")
	assert.Equal(t, 3, repo.claimCalls)

	all, err := svc.ListDonations(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDonationService_ListErrors(t *testing.T) {
	repo := &fakeDonationRepository{listErr: domain.ErrStoreUnavailable}
	svc := NewDonationService(repo, nil, discardLogger(), nil)

	_, err := svc.ListDonations(context.Background())
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
	_, err = svc.ListInventory(context.Background())
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

package unconfigured

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fooddonation/internal/domain"
)

func TestStore_EveryCallIsNotConfigured(t *testing.T) {
	ctx := context.Background()
	var s Store

	require.ErrorIs(t, s.DonationRepository().Create(ctx, &domain.Donation{}), domain.ErrStoreNotConfigured)
	_, err := s.DonationRepository().List(ctx)
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
	_, err = s.DonationRepository().ListClaimable(ctx, time.Now())
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)

	require.ErrorIs(t, s.NgoRequestRepository().Create(ctx, &domain.NgoRequest{}), domain.ErrStoreUnavailable)
	_, err = s.NgoRequestRepository().List(ctx)
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)

	require.ErrorIs(t, s.FoodTotalsRepository().Add(ctx, "Pune", "Cooked", 1, 0, time.Now()), domain.ErrStoreUnavailable)
	_, err = s.FoodTotalsRepository().List(ctx)
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddonation/internal/domain"
)

func TestSchemaGate_RetriesUntilApplied(t *testing.T) {
	calls := 0
	results := []error{
		errors.New("dirty database version 1"),
		nil,
	}
	gate := NewSchemaGate(func() error {
		err := results[calls]
		calls++
		return err
	})

	err := gate.Ready()
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.False(t, gate.Applied())

	require.NoError(t, gate.Ready())
	assert.True(t, gate.Applied())

	require.NoError(t, gate.Ready())
	assert.Equal(t, 2, calls, "applied migrations are not rerun")
}

func TestSchemaGate_Nil(t *testing.T) {
	var gate *SchemaGate
	assert.NoError(t, gate.Ready())
	assert.True(t, gate.Applied())
}

func TestDonationRepository_MigratesBeforeFirstQuery(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Database came up after the API: the first attempt cannot connect.
	dbUp := false
	applied := 0
	gate := NewSchemaGate(func() error {
		if !dbUp {
			return storeErr(&pq.Error{Code: "08006"})
		}
		applied++
		return nil
	})
	repo := NewDonationRepository(db, gate)

	_, err = repo.List(ctx)
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
	require.NoError(t, mock.ExpectationsWereMet(), "no query before the schema exists")

	dbUp = true
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM donations`).
		WillReturnRows(sqlmock.NewRows(donationCols).
			AddRow(int64(1), "A", "9876543210", "Packed", "5", "Delhi", nil, true, "available", nil, now))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, applied)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositories_SchemaFailureIsStoreUnavailable(t *testing.T) {
	ctx := context.Background()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gate := NewSchemaGate(func() error { return errors.New("no migration found for version 2") })

	_, err = NewNgoRequestRepository(db, gate).List(ctx)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	err = NewNgoRequestRepository(db, gate).Create(ctx, &domain.NgoRequest{})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	err = NewFoodTotalsRepository(db, gate).Add(ctx, "Delhi", "Packed", 1, 0, time.Now())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	_, err = NewFoodTotalsRepository(db, gate).List(ctx)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	err = NewDonationRepository(db, gate).Create(ctx, &domain.Donation{})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestSchemaGate_KeepsMigrationCause(t *testing.T) {
	gate := NewSchemaGate(func() error { return migrationErr("apply", errors.New("syntax error at or near \"TABLE\"")) })

	err := gate.Ready()
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.ErrorIs(t, err, ErrMigration)
}

func TestMigrationErr(t *testing.T) {
	err := migrationErr("init", &pq.Error{Code: "08001"})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrMigration)

	err = migrationErr("apply", errors.New("Dirty database version 1. Fix and force version."))
	assert.ErrorIs(t, err, ErrMigration)
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)
}

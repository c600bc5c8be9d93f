package postgres

import (
	"context"
	"database/sql"
	"time"

	"fooddonation/internal/domain"
)

type foodTotalsRepository struct {
	DB     *sql.DB
	Schema *SchemaGate
}

// NewFoodTotalsRepository returns a domain.FoodTotalsRepository backed by the food_repository table.
func NewFoodTotalsRepository(db *sql.DB, schema *SchemaGate) domain.FoodTotalsRepository {
	return &foodTotalsRepository{DB: db, Schema: schema}
}

// Add upserts in one statement so concurrent writers to the same (city, food_type) never lose an increment.
func (r *foodTotalsRepository) Add(ctx context.Context, city, foodType string, donated, requested int64, at time.Time) error {
	if err := r.Schema.Ready(); err != nil {
		return err
	}
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO food_repository (city, food_type, total_donated, total_requested, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (city, food_type) DO UPDATE SET
			total_donated = food_repository.total_donated + EXCLUDED.total_donated,
			total_requested = food_repository.total_requested + EXCLUDED.total_requested,
			updated_at = EXCLUDED.updated_at`,
		city, foodType, donated, requested, at)
	return storeErr(err)
}

func (r *foodTotalsRepository) List(ctx context.Context) ([]*domain.FoodTotal, error) {
	if err := r.Schema.Ready(); err != nil {
		return nil, err
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, city, food_type, total_donated, total_requested, updated_at
		FROM food_repository
		ORDER BY city, food_type`)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	totals := make([]*domain.FoodTotal, 0)
	for rows.Next() {
		var t domain.FoodTotal
		if err := rows.Scan(&t.ID, &t.City, &t.FoodType, &t.TotalDonated, &t.TotalRequested, &t.UpdatedAt); err != nil {
			return nil, err
		}
		t.UpdatedAt = t.UpdatedAt.UTC()
		totals = append(totals, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return totals, nil
}

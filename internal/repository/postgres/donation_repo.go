package postgres

import (
	"context"
	"database/sql"
	"time"

	"fooddonation/internal/domain"
)

const donationColumns = `id, donor_name, contact_number, food_type, quantity, city, area, is_fresh, status, safe_until, created_at`

type donationRepository struct {
	DB     *sql.DB
	Schema *SchemaGate
}

// NewDonationRepository returns a domain.DonationRepository implemented with Postgres.
// schema may be nil when migrations are managed elsewhere.
func NewDonationRepository(db *sql.DB, schema *SchemaGate) domain.DonationRepository {
	return &donationRepository{DB: db, Schema: schema}
}

func (r *donationRepository) Create(ctx context.Context, d *domain.Donation) error {
	if err := r.Schema.Ready(); err != nil {
		return err
	}
	query := `
		INSERT INTO donations (donor_name, contact_number, food_type, quantity, city, area, is_fresh, status, safe_until, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		d.DonorName, d.ContactNumber, string(d.FoodType), d.Quantity, d.City, d.Area,
		d.IsFresh, string(d.Status), d.SafeUntil, d.CreatedAt,
	).Scan(&d.ID)
	return storeErr(err)
}

func (r *donationRepository) List(ctx context.Context) ([]*domain.Donation, error) {
	query := `SELECT ` + donationColumns + `
		FROM donations
		ORDER BY created_at DESC, id DESC`
	return r.query(ctx, query)
}

func (r *donationRepository) ListClaimable(ctx context.Context, now time.Time) ([]*domain.Donation, error) {
	query := `SELECT ` + donationColumns + `
		FROM donations
		WHERE status = $1 AND (safe_until IS NULL OR safe_until > $2)
		ORDER BY created_at DESC, id DESC`
	return r.query(ctx, query, string(domain.DonationStatusAvailable), now)
}

func (r *donationRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Donation, error) {
	if err := r.Schema.Ready(); err != nil {
		return nil, err
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	donations := make([]*domain.Donation, 0)
	for rows.Next() {
		d := &domain.Donation{}
		var foodType, status string
		var areaNull sql.NullString
		var safeUntilNull sql.NullTime
		if err := rows.Scan(
			&d.ID, &d.DonorName, &d.ContactNumber, &foodType, &d.Quantity, &d.City,
			&areaNull, &d.IsFresh, &status, &safeUntilNull, &d.CreatedAt,
		); err != nil {
			return nil, err
		}
		d.CreatedAt = d.CreatedAt.UTC()
		d.FoodType = domain.FoodType(foodType)
		d.Status = domain.DonationStatus(status)
		if areaNull.Valid {
			d.Area = &areaNull.String
		}
		if safeUntilNull.Valid {
			t := safeUntilNull.Time.UTC()
			d.SafeUntil = &t
		}
		donations = append(donations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return donations, nil
}

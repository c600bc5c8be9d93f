package postgres

import (
	"context"
	"database/sql"

	"fooddonation/internal/domain"
)

type ngoRequestRepository struct {
	DB     *sql.DB
	Schema *SchemaGate
}

// NewNgoRequestRepository returns a domain.NgoRequestRepository implemented with Postgres.
func NewNgoRequestRepository(db *sql.DB, schema *SchemaGate) domain.NgoRequestRepository {
	return &ngoRequestRepository{DB: db, Schema: schema}
}

func (r *ngoRequestRepository) Create(ctx context.Context, req *domain.NgoRequest) error {
	if err := r.Schema.Ready(); err != nil {
		return err
	}
	query := `
		INSERT INTO ngo_requests (ngo_name, contact_number, requirements, city, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		req.NgoName, req.ContactNumber, req.Requirements, req.City, req.Status, req.CreatedAt,
	).Scan(&req.ID)
	return storeErr(err)
}

func (r *ngoRequestRepository) List(ctx context.Context) ([]*domain.NgoRequest, error) {
	if err := r.Schema.Ready(); err != nil {
		return nil, err
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, ngo_name, contact_number, requirements, city, status, created_at
		FROM ngo_requests
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	reqs := make([]*domain.NgoRequest, 0)
	for rows.Next() {
		var req domain.NgoRequest
		if err := rows.Scan(&req.ID, &req.NgoName, &req.ContactNumber, &req.Requirements, &req.City, &req.Status, &req.CreatedAt); err != nil {
			return nil, err
		}
		req.CreatedAt = req.CreatedAt.UTC()
		reqs = append(reqs, &req)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return reqs, nil
}

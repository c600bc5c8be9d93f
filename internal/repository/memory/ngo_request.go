package memory

import (
	"context"
	"sync"
	"time"

	"fooddonation/internal/domain"
)

type ngoRequestRepository struct {
	mu       sync.RWMutex
	nextID   int64
	requests []domain.NgoRequest
}

// NewNgoRequestRepository returns an empty in-memory domain.NgoRequestRepository.
func NewNgoRequestRepository() domain.NgoRequestRepository {
	return &ngoRequestRepository{nextID: 1}
}

func (r *ngoRequestRepository) Create(_ context.Context, req *domain.NgoRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req.ID = r.nextID
	r.nextID++
	r.requests = append(r.requests, *req)
	return nil
}

func (r *ngoRequestRepository) List(_ context.Context) ([]*domain.NgoRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.NgoRequest, 0, len(r.requests))
	for i := range r.requests {
		req := r.requests[i]
		out = append(out, &req)
	}
	sortNewestFirst(out, func(req *domain.NgoRequest) (time.Time, int64) { return req.CreatedAt, req.ID })
	return out, nil
}

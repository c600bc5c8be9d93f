package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"fooddonation/internal/domain"
)

type totalsKey struct {
	city     string
	foodType string
}

type foodTotalsRepository struct {
	mu     sync.Mutex
	nextID int64
	totals map[totalsKey]*domain.FoodTotal
}

// NewFoodTotalsRepository returns an empty in-memory domain.FoodTotalsRepository.
func NewFoodTotalsRepository() domain.FoodTotalsRepository {
	return &foodTotalsRepository{nextID: 1, totals: make(map[totalsKey]*domain.FoodTotal)}
}

func (r *foodTotalsRepository) Add(_ context.Context, city, foodType string, donated, requested int64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := totalsKey{city: city, foodType: foodType}
	t, ok := r.totals[key]
	if !ok {
		t = &domain.FoodTotal{ID: r.nextID, City: city, FoodType: foodType}
		r.nextID++
		r.totals[key] = t
	}
	t.TotalDonated += donated
	t.TotalRequested += requested
	t.UpdatedAt = at
	return nil
}

func (r *foodTotalsRepository) List(_ context.Context) ([]*domain.FoodTotal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.FoodTotal, 0, len(r.totals))
	for _, t := range r.totals {
		c := *t
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].City != out[j].City {
			return out[i].City < out[j].City
		}
		return out[i].FoodType < out[j].FoodType
	})
	return out, nil
}

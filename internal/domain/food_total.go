package domain

import (
	"context"
	"time"
)

// RequestedFoodType is the food type bucket NGO requests are counted under.
const RequestedFoodType = "Requested"

// FoodTotal is a running count of donated and requested items for one city and food type.
// It is derived from donations and NGO requests and is not a source of truth.
// swagger:model FoodTotal
type FoodTotal struct {
	ID             int64     `json:"id"`
	City           string    `json:"city"`
	FoodType       string    `json:"foodType"`
	TotalDonated   int64     `json:"totalDonated"`
	TotalRequested int64     `json:"totalRequested"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// FoodTotalsRepository defines storage for the per city and food type counters.
type FoodTotalsRepository interface {
	// Add increments the counters for (city, foodType) in a single atomic step,
	// creating the row when it does not exist.
	Add(ctx context.Context, city, foodType string, donated, requested int64, at time.Time) error
	// List returns all counters ordered by city then food type.
	List(ctx context.Context) ([]*FoodTotal, error)
}

// FoodTotalsService exposes the aggregate counters.
type FoodTotalsService interface {
	ListFoodTotals(ctx context.Context) ([]*FoodTotal, error)
}

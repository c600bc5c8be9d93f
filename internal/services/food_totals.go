package services

import (
	"context"
	"fmt"

	"fooddonation/internal/domain"
)

type foodTotalsService struct {
	totals domain.FoodTotalsRepository
}

// NewFoodTotalsService returns a FoodTotalsService. A nil repository means
// tracking is disabled and the list is always empty.
func NewFoodTotalsService(totals domain.FoodTotalsRepository) domain.FoodTotalsService {
	return &foodTotalsService{totals: totals}
}

func (s *foodTotalsService) ListFoodTotals(ctx context.Context) ([]*domain.FoodTotal, error) {
	if s.totals == nil {
		return []*domain.FoodTotal{}, nil
	}
	totals, err := s.totals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list food totals: %w", err)
	}
	return totals, nil
}

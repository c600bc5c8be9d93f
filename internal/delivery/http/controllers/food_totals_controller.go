package controllers

import (
	"log/slog"
	"net/http"

	"fooddonation/internal/delivery/http/helpers"
	"fooddonation/internal/domain"
)

type FoodTotalsController struct {
	errorResponder
	Service domain.FoodTotalsService
}

func NewFoodTotalsController(logger *slog.Logger, svc domain.FoodTotalsService, exposeErrors bool) *FoodTotalsController {
	return &FoodTotalsController{
		errorResponder: errorResponder{Logger: logger, ExposeErrors: exposeErrors},
		Service:        svc,
	}
}

// ListFoodTotals godoc
// @Summary Aggregate donated and requested counts
// @Description Running totals per city and food type. NGO requests are counted under food type "Requested".
// @Tags repository
// @Produce json
// @Success 200 {array} domain.FoodTotal
// @Failure 503 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /repository [get]
func (c *FoodTotalsController) ListFoodTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := c.Service.ListFoodTotals(r.Context())
	if err != nil {
		c.writeError(w, r, "repository", err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, nonNil(totals))
}

package controllers

import (
	"log/slog"
	"net/http"

	"fooddonation/internal/delivery/http/helpers"
	"fooddonation/internal/domain"
)

type DonationController struct {
	errorResponder
	Service domain.DonationService
}

func NewDonationController(logger *slog.Logger, svc domain.DonationService, exposeErrors bool) *DonationController {
	return &DonationController{
		errorResponder: errorResponder{Logger: logger, ExposeErrors: exposeErrors},
		Service:        svc,
	}
}

// ListDonations godoc
// @Summary List all donations
// @Description Returns every donation regardless of status or freshness, newest first.
// @Tags donations
// @Produce json
// @Success 200 {array} domain.Donation
// @Failure 503 {object} helpers.APIError "Database not configured or unavailable"
// @Failure 500 {object} helpers.APIError
// @Router /donations [get]
func (c *DonationController) ListDonations(w http.ResponseWriter, r *http.Request) {
	donations, err := c.Service.ListDonations(r.Context())
	if err != nil {
		c.writeError(w, r, "donations", err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, nonNil(donations))
}

// CreateDonation godoc
// @Summary List surplus food
// @Description Validates and stores a donation. Cooked food is claimable for four hours; packed food has no deadline. isFresh must be true.
// @Tags donations
// @Accept json
// @Produce json
// @Param body body domain.DonationInput true "Donation"
// @Success 201 {object} domain.Donation
// @Failure 400 {object} helpers.APIError "message and offending field"
// @Failure 503 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /donations [post]
func (c *DonationController) CreateDonation(w http.ResponseWriter, r *http.Request) {
	var in domain.DonationInput
	if err := helpers.DecodeJSON(w, r, &in); err != nil {
		c.writeError(w, r, "donations", err)
		return
	}
	donation, err := c.Service.CreateDonation(r.Context(), in)
	if err != nil {
		c.writeError(w, r, "donations", err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, donation)
}

// ListInventory godoc
// @Summary List claimable donations
// @Description Returns available donations whose safety window has not passed, newest first. Expiry is evaluated at request time.
// @Tags donations
// @Produce json
// @Success 200 {array} domain.Donation
// @Failure 503 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /inventory [get]
func (c *DonationController) ListInventory(w http.ResponseWriter, r *http.Request) {
	donations, err := c.Service.ListInventory(r.Context())
	if err != nil {
		c.writeError(w, r, "inventory", err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, nonNil(donations))
}

// nonNil keeps empty lists encoding as [] rather than null.
func nonNil[T any](items []*T) []*T {
	if items == nil {
		return []*T{}
	}
	return items
}

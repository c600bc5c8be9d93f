package controllers

import (
	"log/slog"
	"net/http"

	"fooddonation/internal/delivery/http/helpers"
	"fooddonation/internal/domain"
)

type NgoRequestController struct {
	errorResponder
	Service domain.NgoRequestService
}

func NewNgoRequestController(logger *slog.Logger, svc domain.NgoRequestService, exposeErrors bool) *NgoRequestController {
	return &NgoRequestController{
		errorResponder: errorResponder{Logger: logger, ExposeErrors: exposeErrors},
		Service:        svc,
	}
}

// ListNgoRequests godoc
// @Summary List NGO requests
// @Tags ngo-requests
// @Produce json
// @Success 200 {array} domain.NgoRequest
// @Failure 503 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /ngo-requests [get]
func (c *NgoRequestController) ListNgoRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := c.Service.ListNgoRequests(r.Context())
	if err != nil {
		c.writeError(w, r, "ngo-requests", err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, nonNil(reqs))
}

// CreateNgoRequest godoc
// @Summary Post an NGO food requirement
// @Tags ngo-requests
// @Accept json
// @Produce json
// @Param body body domain.NgoRequestInput true "NGO request"
// @Success 201 {object} domain.NgoRequest
// @Failure 400 {object} helpers.APIError "message and offending field"
// @Failure 503 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /ngo-requests [post]
func (c *NgoRequestController) CreateNgoRequest(w http.ResponseWriter, r *http.Request) {
	var in domain.NgoRequestInput
	if err := helpers.DecodeJSON(w, r, &in); err != nil {
		c.writeError(w, r, "ngo-requests", err)
		return
	}
	req, err := c.Service.CreateNgoRequest(r.Context(), in)
	if err != nil {
		c.writeError(w, r, "ngo-requests", err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, req)
}

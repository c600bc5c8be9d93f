package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "fooddonation/docs"
	"fooddonation/internal/delivery/http/controllers"
	"fooddonation/internal/delivery/http/helpers"
	"fooddonation/internal/delivery/http/middleware"
	"fooddonation/internal/metrics"
)

// APIPrefix is the alternate mount point for every resource route.
const APIPrefix = "/api"

// Endpoints lists the resource routes advertised by GET /api.
var Endpoints = []string{"/donations", "/inventory", "/ngo-requests", "/repository"}

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Donations   *controllers.DonationController
	NgoRequests *controllers.NgoRequestController
	FoodTotals  *controllers.FoodTotalsController
	Meta        *controllers.MetaController
}

// NewRouter initializes the HTTP router with all application routes. Resource
// routes are served both at the root and under APIPrefix.
func NewRouter(c Controllers) *http.ServeMux {
	mux := http.NewServeMux()

	for _, prefix := range []string{"", APIPrefix} {
		mux.HandleFunc("GET "+prefix+"/donations", c.Donations.ListDonations)
		mux.HandleFunc("POST "+prefix+"/donations", c.Donations.CreateDonation)
		mux.Handle(prefix+"/donations", helpers.MethodNotAllowed(http.MethodGet, http.MethodPost))

		mux.HandleFunc("GET "+prefix+"/inventory", c.Donations.ListInventory)
		mux.Handle(prefix+"/inventory", helpers.MethodNotAllowed(http.MethodGet))

		mux.HandleFunc("GET "+prefix+"/ngo-requests", c.NgoRequests.ListNgoRequests)
		mux.HandleFunc("POST "+prefix+"/ngo-requests", c.NgoRequests.CreateNgoRequest)
		mux.Handle(prefix+"/ngo-requests", helpers.MethodNotAllowed(http.MethodGet, http.MethodPost))

		mux.HandleFunc("GET "+prefix+"/repository", c.FoodTotals.ListFoodTotals)
		mux.Handle(prefix+"/repository", helpers.MethodNotAllowed(http.MethodGet))
	}

	mux.HandleFunc("GET "+APIPrefix, c.Meta.APIIndex)
	mux.Handle(APIPrefix, helpers.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc("GET /healthz", c.Meta.Healthz)
	mux.Handle("GET /metrics", metrics.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("/", helpers.NotFound)

	return mux
}

// NewHandler wraps mux with the middleware chain: request ID, logging, CORS,
// rate limiting and metrics. limiter may be nil to disable rate limiting.
func NewHandler(mux *http.ServeMux, logger *slog.Logger, limiter *middleware.RateLimiter) http.Handler {
	var h http.Handler = metrics.InstrumentHandler(mux)
	h = limiter.Handler(h)
	h = middleware.CORS(h)
	h = middleware.LoggingMiddleware(logger, h)
	return middleware.RequestID(h)
}

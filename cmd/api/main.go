package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fooddonation/config"
	deliveryhttp "fooddonation/internal/delivery/http"
	"fooddonation/internal/delivery/http/controllers"
	"fooddonation/internal/delivery/http/middleware"
	"fooddonation/internal/services"
)

//go:generate swag init -g cmd/api/main.go -d ../../ -o ../../docs

// @title AaharSevaX food donation API
// @version 1.0.0
// @description Connects surplus-food donors with NGOs. Cooked food is claimable for four hours after listing.
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := config.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	handler := newHandler(cfg, logger, st, time.Now)

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "store", st.name, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// newHandler wires services, controllers and middleware over the selected stores.
func newHandler(cfg *config.Config, logger *slog.Logger, st *stores, now func() time.Time) http.Handler {
	expose := !cfg.IsProduction()

	donationSvc := services.NewDonationService(st.donations, st.totals, logger, now)
	ngoSvc := services.NewNgoRequestService(st.requests, st.totals, logger, now)
	totalsSvc := services.NewFoodTotalsService(st.totals)

	mux := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Donations:   controllers.NewDonationController(logger, donationSvc, expose),
		NgoRequests: controllers.NewNgoRequestController(logger, ngoSvc, expose),
		FoodTotals:  controllers.NewFoodTotalsController(logger, totalsSvc, expose),
		Meta: controllers.NewMetaController(logger, controllers.APIIndex{
			Name:      cfg.AppName,
			Version:   cfg.AppVersion,
			Endpoints: deliveryhttp.Endpoints,
		}, st.name, st.check),
	})

	var limiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, logger)
	}
	return deliveryhttp.NewHandler(mux, logger, limiter)
}

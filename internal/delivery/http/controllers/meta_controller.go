package controllers

import (
	"context"
	"log/slog"
	"net/http"

	"fooddonation/internal/delivery/http/helpers"
)

// StoreChecker reports whether the backing store can serve requests.
type StoreChecker func(ctx context.Context) error

// APIIndex is the body of GET /api.
// swagger:model APIIndex
type APIIndex struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// Health is the body of GET /healthz.
// swagger:model Health
type Health struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

type MetaController struct {
	Logger *slog.Logger
	Index  APIIndex
	// Store is the name of the selected store: postgres, memory or none.
	Store string
	Check StoreChecker
}

func NewMetaController(logger *slog.Logger, index APIIndex, store string, check StoreChecker) *MetaController {
	return &MetaController{
		Logger: logger,
		Index:  index,
		Store:  store,
		Check:  check,
	}
}

// APIIndex godoc
// @Summary API index
// @Tags meta
// @Produce json
// @Success 200 {object} controllers.APIIndex
// @Router /api [get]
func (c *MetaController) APIIndex(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, c.Index)
}

// Healthz godoc
// @Summary Liveness and store status
// @Tags meta
// @Produce json
// @Success 200 {object} controllers.Health
// @Failure 503 {object} controllers.Health
// @Router /healthz [get]
func (c *MetaController) Healthz(w http.ResponseWriter, r *http.Request) {
	if c.Check != nil {
		if err := c.Check(r.Context()); err != nil {
			c.Logger.WarnContext(r.Context(), "health check failed", "store", c.Store, "err", err)
			helpers.WriteJSON(w, http.StatusServiceUnavailable, Health{Status: "unavailable", Store: c.Store})
			return
		}
	}
	helpers.WriteJSON(w, http.StatusOK, Health{Status: "ok", Store: c.Store})
}

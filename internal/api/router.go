package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mcoot/playerroster/internal/api/apierr"
	"github.com/mcoot/playerroster/internal/api/handler"
	"github.com/mcoot/playerroster/internal/api/middleware"
	"github.com/mcoot/playerroster/internal/api/response"
	sharedmw "github.com/mcoot/playerroster/internal/middleware"
	"github.com/mcoot/playerroster/internal/services/players"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *zap.Logger
	PlayerService *players.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	playerHandler := handler.NewPlayerHandler(cfg.PlayerService)

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(sharedmw.Logging(cfg.Logger))
	r.Use(sharedmw.Metrics)

	// Player routes; /count is registered before /{id} so it is not taken as an id
	rest := r.PathPrefix("/rest/players").Subrouter()
	rest.HandleFunc("", playerHandler.List).Methods(http.MethodGet)
	rest.HandleFunc("", playerHandler.Create).Methods(http.MethodPost)
	rest.HandleFunc("/count", playerHandler.Count).Methods(http.MethodGet)
	rest.HandleFunc("/{id}", playerHandler.Get).Methods(http.MethodGet)
	rest.HandleFunc("/{id}", playerHandler.Update).Methods(http.MethodPost)
	rest.HandleFunc("/{id}", playerHandler.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewNotFoundError())
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewMethodNotAllowedError())
	})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}

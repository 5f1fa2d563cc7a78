// Package app contains the application setup for the retail service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/narayanastores/retail/internal/config"
	"github.com/narayanastores/retail/internal/service"
	"github.com/narayanastores/retail/internal/store"
	"github.com/narayanastores/retail/internal/transport/rest"
	"github.com/narayanastores/retail/pkg/server"
)

type Dependencies struct {
	Catalog service.CatalogService
	Ledger  service.LedgerService
	Logger  *slog.Logger
}

func SetupDependencies(dbPool *pgxpool.Pool, logger *slog.Logger) *Dependencies {
	catalog := service.NewCatalog(store.NewPgCatalogStore(dbPool))
	ledger := service.NewLedger(store.NewPgLedgerStore(dbPool))

	return &Dependencies{
		Catalog: catalog,
		Ledger:  ledger,
		Logger:  logger,
	}
}

// SetupHttpHandler initializes the HTTP routes for the retail application.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the retail application.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	productHandler := rest.NewProductHandler(deps.Catalog, deps.Logger)
	productHandler.RegisterRoutes(mux)
	saleHandler := rest.NewSaleHandler(deps.Ledger, deps.Logger)
	saleHandler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures an HTTP server for the retail application.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}

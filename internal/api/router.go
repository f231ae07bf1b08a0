// Package api assembles the HTTP surface: the Echo server, middleware,
// and both the classic and Huma-registered handler sets.
package api

import (
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jcloud242/resale-radar/internal/api/handlers"
	"github.com/jcloud242/resale-radar/internal/api/middleware"
	"github.com/jcloud242/resale-radar/internal/cache"
	"github.com/jcloud242/resale-radar/internal/ebay"
	"github.com/jcloud242/resale-radar/internal/fees"
	"github.com/jcloud242/resale-radar/internal/store"
	"github.com/jcloud242/resale-radar/pkg/identify"
)

// Deps holds everything the HTTP surface needs. Store, FeeTable, and
// Cache are required; marketplace dependencies may be nil for an
// offline instance, which disables the search and query-based estimate
// paths.
type Deps struct {
	Store       store.Store
	FeeTable    *fees.Table
	Cache       cache.Cache
	Search      ebay.Client
	Sampler     handlers.SampleCollector
	RateLimiter *ebay.RateLimiter
	Analytics   handlers.BrowseQuotaProvider
	Identify    *identify.Chain
	Refresher   handlers.Refresher

	Estimate     handlers.EstimateParams
	HistoryLimit int
	Version      string

	Log *slog.Logger
}

// NewRouter builds the Echo server with middleware and all routes
// registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLog(d.Log))
	e.Use(middleware.Recovery(d.Log))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(d.Store)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	collections := handlers.NewCollectionHandler(d.Store)
	e.GET("/api/v1/collections", collections.List)
	e.POST("/api/v1/collections", collections.Create)
	e.GET("/api/v1/collections/:id", collections.Get)
	e.PUT("/api/v1/collections/:id", collections.Rename)
	e.DELETE("/api/v1/collections/:id", collections.Delete)

	items := handlers.NewItemHandler(d.Store)
	e.POST("/api/v1/collections/:id/items", items.Create)
	e.GET("/api/v1/items", items.List)
	e.GET("/api/v1/items/:id", items.Get)
	e.PUT("/api/v1/items/:id", items.Update)
	e.DELETE("/api/v1/items/:id", items.Delete)
	e.GET("/api/v1/items/:id/snapshots", items.Snapshots)

	history := handlers.NewHistoryHandler(d.Store, d.HistoryLimit)
	e.GET("/api/v1/history", history.List)
	e.DELETE("/api/v1/history", history.Clear)

	hum := humaecho.New(e, huma.DefaultConfig("resale-radar", d.Version))

	handlers.RegisterEstimateRoutes(hum, handlers.NewEstimateHandler(
		d.Sampler, d.FeeTable, d.Cache, d.Store, d.Estimate, d.Log,
	))
	handlers.RegisterSolveRoutes(hum, handlers.NewSolveHandler(d.FeeTable))
	handlers.RegisterIdentifyRoutes(hum, handlers.NewIdentifyHandler(d.Identify))
	handlers.RegisterJobRoutes(hum, handlers.NewJobsHandler(d.Store))
	handlers.RegisterQuotaRoutes(hum, handlers.NewQuotaHandler(d.RateLimiter, d.Analytics))

	if d.Search != nil {
		handlers.RegisterSearchRoutes(hum, handlers.NewSearchHandler(d.Search))
	}
	if d.Refresher != nil {
		handlers.RegisterRefreshRoutes(hum, handlers.NewRefreshHandler(d.Refresher))
	}

	return e
}

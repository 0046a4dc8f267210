// Package api assembles the hofvidz HTTP server: the Huma JSON API, the HTML
// pages, health checks and metrics on a single Echo instance.
package api

import (
	"fmt"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/RaviKishore94/hofvidz-3.0project/api/openapi"
	"github.com/RaviKishore94/hofvidz-3.0project/internal/api/handlers"
	"github.com/RaviKishore94/hofvidz-3.0project/internal/api/middleware"
	"github.com/RaviKishore94/hofvidz-3.0project/internal/engine"
	"github.com/RaviKishore94/hofvidz-3.0project/internal/store"
	"github.com/RaviKishore94/hofvidz-3.0project/internal/youtube"
)

// Deps are the collaborators the server routes to.
type Deps struct {
	Log     *slog.Logger
	Store   store.Store
	Engine  *engine.Engine
	Quota   *youtube.QuotaLimiter
	Pingers []handlers.Pinger
	Version string
}

// NewRouter builds the Echo instance with every route registered.
func NewRouter(d Deps) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(d.Log))
	e.Use(middleware.RequestLog(d.Log))
	e.Use(middleware.Metrics())

	pingers := append([]handlers.Pinger{d.Store}, d.Pingers...)
	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(pingers...))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	cfg := huma.DefaultConfig("hofvidz API", d.Version)
	cfg.Info.Description = "Curate halls of YouTube videos."
	cfg.DocsPath = ""
	// Bodies stay exactly as documented, without a $schema link.
	cfg.CreateHooks = nil
	api := humaecho.New(e, cfg)

	handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(d.Engine))
	handlers.RegisterHallRoutes(api, handlers.NewHallsHandler(d.Store))
	handlers.RegisterVideoRoutes(api, handlers.NewVideosHandler(d.Store, d.Engine, d.Engine))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(d.Quota))
	openapi.RegisterRoutes(e, api)

	tmpl, err := handlers.NewTemplates()
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}
	handlers.RegisterPageRoutes(e, tmpl, handlers.NewPagesHandler(d.Store, d.Engine, d.Engine, d.Log))

	return e, nil
}

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	gohttmetrics "github.com/slok/go-http-metrics/middleware"

	"github.com/slok/delorean/internal/app/render"
	"github.com/slok/delorean/internal/log"
)

//go:generate mockery --case underscore --output apimock --outpkg apimock --name RenderApp

// RenderApp is the application service used to render the charts.
type RenderApp interface {
	Render(ctx context.Context, req render.RenderRequest) (*render.RenderResponse, error)
	Validate(ctx context.Context, req render.ValidateRequest) (*render.ValidateResponse, error)
}

const (
	ServePrefix = "/api/v1"

	// maxBodyBytes is the maximum size of a request body.
	maxBodyBytes = 10 << 20
)

type APIConfig struct {
	Logger          log.Logger
	MetricsRecorder MetricsRecorder
	RenderApp       RenderApp
}

func (c *APIConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"component": "api"})

	if c.MetricsRecorder == nil {
		c.MetricsRecorder = noopMetricsRecorder
		c.Logger.Warningf("Metrics recorder disabled")
	}

	if c.RenderApp == nil {
		return fmt.Errorf("render app is required")
	}

	return nil
}

type api struct {
	router            chi.Router
	metricsMiddleware gohttmetrics.Middleware
	renderApp         RenderApp
	logger            log.Logger
}

// NewAPI returns the chart rendering HTTP API handler.
func NewAPI(cfg APIConfig) (http.Handler, error) {
	err := cfg.defaults()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	a := api{
		router: chi.NewRouter(),
		metricsMiddleware: gohttmetrics.New(gohttmetrics.Config{
			Recorder: cfg.MetricsRecorder,
			Service:  "delorean-api",
		}),
		renderApp: cfg.RenderApp,
		logger:    cfg.Logger,
	}

	a.registerGlobalMiddlewares()
	a.registerRoutes()

	return a, nil
}

func (a api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	router := chi.NewRouter()
	router.Mount(ServePrefix, a.router)

	router.ServeHTTP(w, r)
}

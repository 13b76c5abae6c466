package render

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/slok/delorean/internal/chart"
	"github.com/slok/delorean/internal/dataset"
	"github.com/slok/delorean/internal/log"
	"github.com/slok/delorean/internal/metrics"
	"github.com/slok/delorean/internal/surface"
	"github.com/slok/delorean/internal/surface/fontmetrics"
	"github.com/slok/delorean/internal/surface/svg"
	commonerrors "github.com/slok/delorean/pkg/common/errors"
)

// ServiceConfig is the application service configuration.
type ServiceConfig struct {
	// DefaultConfig is the chart configuration the request overrides are merged on, by
	// default chart.DefaultConfig.
	DefaultConfig   *chart.Config
	Measurer        surface.TextMeasurer
	MetricsRecorder metrics.Recorder
	Logger          log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.DefaultConfig == nil {
		cfg := chart.DefaultConfig()
		c.DefaultConfig = &cfg
	}

	err := c.DefaultConfig.Validate()
	if err != nil {
		return fmt.Errorf("invalid default chart config: %w", err)
	}

	if c.Measurer == nil {
		c.Measurer = fontmetrics.NewBasicMeasurer()
	}

	if c.MetricsRecorder == nil {
		c.MetricsRecorder = metrics.NoopRecorder
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "render.Service"})

	return nil
}

// Service is the application service that renders datasets into SVG charts.
// It's safe to use concurrently.
type Service struct {
	measurer surface.TextMeasurer
	metrics  metrics.Recorder
	logger   log.Logger

	mu            sync.RWMutex
	defaultConfig chart.Config
}

// NewService returns a new render application service.
func NewService(config ServiceConfig) (*Service, error) {
	err := config.defaults()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Service{
		measurer:      config.Measurer,
		metrics:       config.MetricsRecorder,
		logger:        config.Logger,
		defaultConfig: *config.DefaultConfig,
	}, nil
}

// SetDefaultConfig replaces the chart configuration the request overrides are merged on.
func (s *Service) SetDefaultConfig(cfg chart.Config) error {
	err := cfg.Validate()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.defaultConfig = cfg
	s.mu.Unlock()

	return nil
}

// DefaultConfig returns the chart configuration the request overrides are merged on.
func (s *Service) DefaultConfig() chart.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaultConfig
}

type RenderRequest struct {
	// Data is the JSON dataset, an object of dates with a value or a list of values.
	Data []byte
	// ConfigOverrides is an optional YAML or JSON document merged over the default chart config.
	ConfigOverrides []byte
	// Title is the optional SVG document title.
	Title string
	// Static disables the embedded hover interaction.
	Static bool
	// Out is where the SVG document is written.
	Out io.Writer
}

type RenderResponse struct {
	Scene *chart.Scene
	// Bytes is the size of the written SVG document.
	Bytes int64
}

// Render loads the dataset, renders its chart and writes the SVG document.
func (s *Service) Render(ctx context.Context, r RenderRequest) (resp *RenderResponse, err error) {
	points := 0
	t0 := time.Now()
	defer func() {
		s.metrics.MeasureRender(ctx, time.Since(t0), points, err)
	}()

	if r.Out == nil {
		return nil, fmt.Errorf("output writer is required: %w", commonerrors.ErrBackendUnavailable)
	}

	var ds *dataset.Dataset
	err = s.stage(ctx, "load", func() (err error) {
		ds, err = dataset.LoadJSON(r.Data)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not load dataset: %w", err)
	}
	points = ds.Len()

	var cfg chart.Config
	err = s.stage(ctx, "config", func() (err error) {
		cfg, err = s.DefaultConfig().Merge(r.ConfigOverrides)
		if err != nil {
			return fmt.Errorf("%w: %w", commonerrors.ErrInvalidConfig, err)
		}
		return cfg.Validate()
	})
	if err != nil {
		return nil, fmt.Errorf("invalid chart config: %w", err)
	}

	surf, err := svg.NewSurface(svg.SurfaceConfig{
		Measurer:    s.measurer,
		Interactive: !r.Static,
		Title:       r.Title,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create SVG surface: %w", err)
	}

	var scene *chart.Scene
	err = s.stage(ctx, "render", func() error {
		c, err := chart.New(chart.ChartConfig{
			Surface: surf,
			Dataset: ds,
			Options: cfg,
			Logger:  s.logger,
		})
		if err != nil {
			return err
		}

		scene, err = c.Render(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not render chart: %w", err)
	}

	var n int64
	err = s.stage(ctx, "write", func() (err error) {
		n, err = surf.WriteTo(r.Out)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not write SVG document: %w", err)
	}

	s.logger.WithCtxValues(ctx).WithValues(log.Kv{
		"points": points,
		"series": ds.Arity(),
		"bytes":  n,
	}).Debugf("Chart rendered")

	return &RenderResponse{
		Scene: scene,
		Bytes: n,
	}, nil
}

type ValidateRequest struct {
	Data            []byte
	ConfigOverrides []byte
}

type ValidateResponse struct {
	Points int
	Series int
}

// Validate checks a dataset and its config overrides by rendering them without output.
func (s *Service) Validate(ctx context.Context, r ValidateRequest) (*ValidateResponse, error) {
	resp, err := s.Render(ctx, RenderRequest{
		Data:            r.Data,
		ConfigOverrides: r.ConfigOverrides,
		Static:          true,
		Out:             io.Discard,
	})
	if err != nil {
		return nil, err
	}

	return &ValidateResponse{
		Points: len(resp.Scene.Slots),
		Series: len(resp.Scene.Series),
	}, nil
}

func (s *Service) stage(ctx context.Context, name string, f func() error) (err error) {
	t0 := time.Now()
	defer func() {
		s.metrics.MeasureRenderStageDuration(ctx, name, time.Since(t0), err)
	}()

	return f()
}

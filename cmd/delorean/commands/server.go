package commands

import (
	"context"
	"fmt"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	gohttpmetricsprometheus "github.com/slok/go-http-metrics/metrics/prometheus"
	"github.com/slok/reload"

	"github.com/slok/delorean/internal/app/render"
	"github.com/slok/delorean/internal/http/api"
	"github.com/slok/delorean/internal/log"
	metricsprometheus "github.com/slok/delorean/internal/metrics/prometheus"
	storagefs "github.com/slok/delorean/internal/storage/fs"
)

type serverCommand struct {
	configPath   string
	statusServer struct {
		address         string
		healthCheckPath string
		metricsPath     string
		pprofPath       string
		hotReloadPath   string
	}
	appServer struct {
		address string
	}
}

// NewServerCommand returns the server command.
func NewServerCommand(app *kingpin.Application) Command {
	c := &serverCommand{}
	cmd := app.Command("server", "Starts the chart rendering HTTP API server.")
	cmd.Flag("config", "YAML chart config file used as the default chart config, reloaded on SIGHUP and the hot-reload webhook.").Short('c').StringVar(&c.configPath)
	cmd.Flag("app-listen-address", "Application listen address.").Default(":8080").StringVar(&c.appServer.address)
	cmd.Flag("status-listen-address", "Status (health check, metrics, pprof, hot-reload...) listen address.").Default(":8081").StringVar(&c.statusServer.address)
	cmd.Flag("health-check-path", "Health check path.").Default("/status").StringVar(&c.statusServer.healthCheckPath)
	cmd.Flag("metrics-path", "Prometheus metrics path where metrics will be served.").Default("/metrics").StringVar(&c.statusServer.metricsPath)
	cmd.Flag("pprof-path", "PProf path where debug tool is available.").Default("/debug/pprof").StringVar(&c.statusServer.pprofPath)
	cmd.Flag("hot-reload-path", "The webhook path for hot-reloading the chart config.").Default("/-/reload").StringVar(&c.statusServer.hotReloadPath)

	return c
}

func (c serverCommand) Name() string { return "server" }
func (c serverCommand) Run(ctx context.Context, config RootConfig) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := config.Logger.WithValues(log.Kv{"command": c.Name()})
	promReg := prometheus.DefaultRegisterer

	configRepo, err := storagefs.NewFileChartConfigRepo(storagefs.FileChartConfigRepoConfig{
		Path:   c.configPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create chart config repository: %w", err)
	}

	chartConfig := configRepo.ChartConfig(ctx)
	svc, err := render.NewService(render.ServiceConfig{
		DefaultConfig:   &chartConfig,
		MetricsRecorder: metricsprometheus.NewRecorder(promReg),
		Logger:          logger,
	})
	if err != nil {
		return fmt.Errorf("could not create render service: %w", err)
	}

	// Prepare our run and reload entrypoints.
	var g run.Group
	reloadManager := reload.NewManager()

	// Run hot-reload.
	{
		// Chart config reloader, a broken config file keeps serving the last good one.
		reloadManager.Add(1000, reload.ReloaderFunc(func(ctx context.Context, id string) error {
			logger := logger.WithValues(log.Kv{"reload-id": id})
			err := configRepo.Reload(ctx)
			if err != nil {
				logger.Errorf("Could not reload chart config: %s", err)
				return nil
			}

			err = svc.SetDefaultConfig(configRepo.ChartConfig(ctx))
			if err != nil {
				logger.Errorf("Could not set reloaded chart config: %s", err)
				return nil
			}

			logger.Infof("Chart config reloaded")
			return nil
		}))

		ctx, cancel := context.WithCancel(ctx)
		g.Add(
			func() error {
				logger.Infof("Hot-reload manager running")
				defer logger.Infof("Hot-reload manager stopped")
				return reloadManager.Run(ctx)
			},
			func(_ error) {
				cancel()
			},
		)
	}

	// OS signals.
	{
		sigC := make(chan os.Signal, 1)
		reloadC := make(chan struct{})
		exitC := make(chan struct{})
		signal.Notify(sigC, syscall.SIGTERM, syscall.SIGINT, syscall.SIGHUP)

		// Add hot-reload notifier for SIGHUP.
		reloadManager.On(reload.NotifierFunc(func(ctx context.Context) (string, error) {
			select {
			case <-reloadC:
			case <-ctx.Done():
				return "", ctx.Err()
			}
			logger.Infof("Hot-reload triggered from OS SIGHUP signal")
			return "sighup", nil
		}))

		g.Add(
			func() error {
				logger.Infof("OS signals listener started")
				defer logger.Infof("OS signals listener stopped")
				for {
					select {
					case s := <-sigC:
						logger.Infof("Signal %s received", s)
						// Don't stop if SIGHUP, only reload.
						if s == syscall.SIGHUP {
							select {
							case reloadC <- struct{}{}:
							case <-exitC:
								return nil
							}
							continue
						}

						return nil
					case <-exitC:
						return nil
					}
				}
			},
			func(_ error) {
				signal.Stop(sigC)
				close(exitC)
			},
		)
	}

	// Status and metadata server (health checks, metrics, hot-reload...).
	{
		logger := logger.WithValues(log.Kv{
			"addr":         c.statusServer.address,
			"metrics":      c.statusServer.metricsPath,
			"health-check": c.statusServer.healthCheckPath,
			"pprof":        c.statusServer.pprofPath,
			"hot-reload":   c.statusServer.hotReloadPath,
		})
		mux := http.NewServeMux()

		// Pprof.
		mux.HandleFunc(c.statusServer.pprofPath+"/", pprof.Index)
		mux.HandleFunc(c.statusServer.pprofPath+"/cmdline", pprof.Cmdline)
		mux.HandleFunc(c.statusServer.pprofPath+"/profile", pprof.Profile)
		mux.HandleFunc(c.statusServer.pprofPath+"/symbol", pprof.Symbol)
		mux.HandleFunc(c.statusServer.pprofPath+"/trace", pprof.Trace)

		// Metrics.
		mux.Handle(c.statusServer.metricsPath, promhttp.Handler())

		// Health checks.
		mux.HandleFunc(c.statusServer.healthCheckPath, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) }))

		// Hot-reload webhook, on request send signal for reload over the channel.
		hotReloadC := make(chan struct{})
		reloadManager.On(reload.NotifierFunc(func(ctx context.Context) (string, error) {
			select {
			case <-hotReloadC:
			case <-ctx.Done():
				return "", ctx.Err()
			}
			logger.Infof("Hot-reload triggered from http webhook")
			return "http", nil
		}))
		mux.Handle(c.statusServer.hotReloadPath, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}

			select {
			case hotReloadC <- struct{}{}:
				w.WriteHeader(http.StatusAccepted)
			case <-r.Context().Done():
			}
		}))

		server := http.Server{
			Addr:    c.statusServer.address,
			Handler: mux,
		}

		g.Add(
			func() error {
				logger.Infof("HTTP server listening...")
				return server.ListenAndServe()
			},
			func(_ error) {
				logger.Infof("Start draining connections")
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				err := server.Shutdown(ctx)
				if err != nil {
					logger.Errorf("error while shutting down the server: %s", err)
				} else {
					logger.Infof("Server stopped")
				}
			},
		)
	}

	// Application server.
	{
		apiHandler, err := api.NewAPI(api.APIConfig{
			Logger:    logger,
			RenderApp: svc,
			MetricsRecorder: gohttpmetricsprometheus.NewRecorder(gohttpmetricsprometheus.Config{
				Prefix:   metricsprometheus.Prefix,
				Registry: promReg,
			}),
		})
		if err != nil {
			return fmt.Errorf("could not create api handler: %w", err)
		}

		mux := http.NewServeMux()
		mux.Handle(api.ServePrefix+"/", apiHandler)

		server := http.Server{
			Addr:    c.appServer.address,
			Handler: mux,
		}

		logger := logger.WithValues(log.Kv{"addr": c.appServer.address})
		g.Add(
			func() error {
				logger.Infof("HTTP server listening...")
				return server.ListenAndServe()
			},
			func(_ error) {
				logger.Infof("Start draining connections")
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				err := server.Shutdown(ctx)
				if err != nil {
					logger.Errorf("error while shutting down the server: %s", err)
				} else {
					logger.Infof("Server stopped")
				}
			},
		)
	}

	err = g.Run()
	if err != nil {
		return err
	}

	return nil
}

package fs

import (
	"context"
	"fmt"
	"sync"

	"github.com/slok/delorean/internal/chart"
	"github.com/slok/delorean/internal/log"
)

type FileChartConfigRepoConfig struct {
	FileManager FileManager
	// Path is the YAML file with the chart config overrides, if empty only the base is used.
	Path string
	// Base is the config the file overrides are merged on, by default chart.DefaultConfig.
	Base   *chart.Config
	Logger log.Logger
}

func (c *FileChartConfigRepoConfig) defaults() error {
	if c.FileManager == nil {
		c.FileManager = fileManager{}
	}

	if c.Base == nil {
		base := chart.DefaultConfig()
		c.Base = &base
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.FileChartConfig"})

	return nil
}

// FileChartConfigRepo provides the chart config loaded from a file, the file is read again
// on every reload.
type FileChartConfigRepo struct {
	fileManager FileManager
	path        string
	base        chart.Config
	logger      log.Logger

	mu  sync.RWMutex
	cfg chart.Config
}

func NewFileChartConfigRepo(config FileChartConfigRepoConfig) (*FileChartConfigRepo, error) {
	err := config.defaults()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	f := &FileChartConfigRepo{
		fileManager: config.FileManager,
		path:        config.Path,
		base:        *config.Base,
		logger:      config.Logger,
	}

	err = f.Reload(context.Background())
	if err != nil {
		return nil, fmt.Errorf("could not load chart config: %w", err)
	}

	return f, nil
}

// Reload loads the config file again, on error the previous config is kept.
func (f *FileChartConfigRepo) Reload(ctx context.Context) error {
	var data []byte
	if f.path != "" {
		d, err := f.fileManager.ReadFile(ctx, f.path)
		if err != nil {
			return fmt.Errorf("could not read chart config file: %w", err)
		}
		data = d
	}

	cfg, err := f.base.Merge(data)
	if err != nil {
		return fmt.Errorf("could not load %q chart config: %w", f.path, err)
	}

	err = cfg.Validate()
	if err != nil {
		return fmt.Errorf("invalid %q chart config: %w", f.path, err)
	}

	f.mu.Lock()
	f.cfg = cfg
	f.mu.Unlock()

	f.logger.WithValues(log.Kv{"path": f.path}).Debugf("Chart config loaded")

	return nil
}

// ChartConfig returns the last loaded chart config.
func (f *FileChartConfigRepo) ChartConfig(_ context.Context) chart.Config {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.cfg
}

package fs

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/slok/delorean/internal/log"
)

type FileDatasetRepoConfig struct {
	FileManager FileManager
	// Exclude and Include filter the discovered dataset paths, exclude has preference.
	Exclude *regexp.Regexp
	Include *regexp.Regexp
	Logger  log.Logger
}

func (c *FileDatasetRepoConfig) defaults() error {
	if c.FileManager == nil {
		c.FileManager = fileManager{}
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.FileDataset"})

	return nil
}

// FileDatasetRepo discovers and reads JSON datasets from the file system.
type FileDatasetRepo struct {
	fileManager FileManager
	exclude     *regexp.Regexp
	include     *regexp.Regexp
	logger      log.Logger
}

func NewFileDatasetRepo(config FileDatasetRepoConfig) (*FileDatasetRepo, error) {
	err := config.defaults()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &FileDatasetRepo{
		fileManager: config.FileManager,
		exclude:     config.Exclude,
		include:     config.Include,
		logger:      config.Logger,
	}, nil
}

var datasetFileRegex = regexp.MustCompile(`(?i)\.json$`)

// ListDatasets returns the dataset paths of input, if input is a file it's returned as is,
// directories are walked recursively looking for JSON files.
func (f FileDatasetRepo) ListDatasets(ctx context.Context, input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("could not stat %q: %w", input, err)
	}
	if !info.IsDir() {
		return []string{input}, nil
	}

	discovered, err := f.fileManager.FindFiles(ctx, input, datasetFileRegex)
	if err != nil {
		return nil, fmt.Errorf("could not discover datasets: %w", err)
	}

	paths := []string{}
	for _, path := range discovered {
		// Filter by exclude or include (exclude has preference).
		if f.exclude != nil && f.exclude.MatchString(path) {
			f.logger.Debugf("Excluding path due to exclude filter %s", path)
			continue
		}
		if f.include != nil && !f.include.MatchString(path) {
			f.logger.Debugf("Excluding path due to include filter %s", path)
			continue
		}

		paths = append(paths, path)
	}

	return paths, nil
}

// ReadDataset returns the raw dataset of a path.
func (f FileDatasetRepo) ReadDataset(ctx context.Context, path string) ([]byte, error) {
	data, err := f.fileManager.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not read dataset %q: %w", path, err)
	}

	return data, nil
}

package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/delorean/internal/app/render"
	"github.com/slok/delorean/internal/log"
	storagefs "github.com/slok/delorean/internal/storage/fs"
)

type validateCommand struct {
	input        string
	configPath   string
	excludeRegex string
	includeRegex string
}

// NewValidateCommand returns the validate command.
func NewValidateCommand(app *kingpin.Application) Command {
	c := &validateCommand{}
	cmd := app.Command("validate", "Validates JSON time series datasets and the chart config by rendering them.")
	cmd.Flag("input", "Dataset file, or directory where all the JSON datasets will be discovered recursively.").Short('i').Required().StringVar(&c.input)
	cmd.Flag("config", "YAML chart config file, merged over the default chart config.").Short('c').StringVar(&c.configPath)
	cmd.Flag("fs-exclude", "Filter regex to ignore matched discovered dataset file paths.").Short('e').StringVar(&c.excludeRegex)
	cmd.Flag("fs-include", "Filter regex to include matched discovered dataset file paths, everything else will be ignored. Exclude has preference.").Short('n').StringVar(&c.includeRegex)

	return c
}

func (v validateCommand) Name() string { return "validate" }
func (v validateCommand) Run(ctx context.Context, config RootConfig) error {
	logger := config.Logger.WithValues(log.Kv{"command": v.Name()})

	excludeRegex, includeRegex, err := compileFilters(v.excludeRegex, v.includeRegex)
	if err != nil {
		return err
	}

	datasetRepo, err := storagefs.NewFileDatasetRepo(storagefs.FileDatasetRepoConfig{
		Exclude: excludeRegex,
		Include: includeRegex,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("could not create dataset repository: %w", err)
	}

	// A broken chart config is a validation error on its own.
	configRepo, err := storagefs.NewFileChartConfigRepo(storagefs.FileChartConfigRepoConfig{
		Path:   v.configPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("invalid chart config: %w", err)
	}

	chartConfig := configRepo.ChartConfig(ctx)
	svc, err := render.NewService(render.ServiceConfig{
		DefaultConfig: &chartConfig,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("could not create render service: %w", err)
	}

	paths, err := datasetRepo.ListDatasets(ctx, v.input)
	if err != nil {
		return fmt.Errorf("could not discover datasets: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("0 datasets have been discovered")
	}

	// For every file load the data and start the validation process.
	validations := []*fileValidation{}
	totalPoints := 0
	for _, path := range paths {
		validation := &fileValidation{File: path}
		validations = append(validations, validation)

		data, err := datasetRepo.ReadDataset(ctx, path)
		if err != nil {
			validation.Errs = append(validation.Errs, err)
		} else {
			resp, err := svc.Validate(ctx, render.ValidateRequest{Data: data})
			if err != nil {
				validation.Errs = append(validation.Errs, fmt.Errorf("invalid dataset: %w", err))
			} else {
				totalPoints += resp.Points
			}
		}

		// Don't wait until the end to show validation per file.
		logger := logger.WithValues(log.Kv{"file": validation.File})
		logger.Debugf("File validated")
		for _, err := range validation.Errs {
			logger.Errorf("%s", err)
		}
	}

	// Check if we need to return an error.
	for _, v := range validations {
		if len(v.Errs) != 0 {
			return fmt.Errorf("validation failed")
		}
	}

	logger.WithValues(log.Kv{"datasets": len(validations), "points": totalPoints}).Infof("Validation succeeded")
	return nil
}

type fileValidation struct {
	File string
	Errs []error
}

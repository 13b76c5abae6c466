package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/delorean/internal/app/render"
	"github.com/slok/delorean/internal/log"
	storagefs "github.com/slok/delorean/internal/storage/fs"
)

const stdoutOut = "-"

type renderCommand struct {
	input        string
	configPath   string
	out          string
	excludeRegex string
	includeRegex string
	title        string
	static       bool
}

// NewRenderCommand returns the render command.
func NewRenderCommand(app *kingpin.Application) Command {
	c := &renderCommand{}
	cmd := app.Command("render", "Renders JSON time series datasets into SVG line charts.")
	cmd.Flag("input", "Dataset file, or directory where all the JSON datasets will be discovered recursively.").Short('i').Required().StringVar(&c.input)
	cmd.Flag("config", "YAML chart config file, merged over the default chart config.").Short('c').StringVar(&c.configPath)
	cmd.Flag("out", "SVG output file, directory for multiple datasets or '-' for stdout.").Short('o').Default(stdoutOut).StringVar(&c.out)
	cmd.Flag("fs-exclude", "Filter regex to ignore matched discovered dataset file paths.").Short('e').StringVar(&c.excludeRegex)
	cmd.Flag("fs-include", "Filter regex to include matched discovered dataset file paths, everything else will be ignored. Exclude has preference.").Short('n').StringVar(&c.includeRegex)
	cmd.Flag("title", "Title of the SVG documents.").StringVar(&c.title)
	cmd.Flag("static", "Disables the hover interaction of the SVG documents.").BoolVar(&c.static)

	return c
}

func (r renderCommand) Name() string { return "render" }
func (r renderCommand) Run(ctx context.Context, config RootConfig) error {
	logger := config.Logger.WithValues(log.Kv{"command": r.Name()})

	excludeRegex, includeRegex, err := compileFilters(r.excludeRegex, r.includeRegex)
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

	configRepo, err := storagefs.NewFileChartConfigRepo(storagefs.FileChartConfigRepoConfig{
		Path:   r.configPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create chart config repository: %w", err)
	}

	chartConfig := configRepo.ChartConfig(ctx)
	svc, err := render.NewService(render.ServiceConfig{
		DefaultConfig: &chartConfig,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("could not create render service: %w", err)
	}

	paths, err := datasetRepo.ListDatasets(ctx, r.input)
	if err != nil {
		return fmt.Errorf("could not discover datasets: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("0 datasets have been discovered")
	}

	outputs, err := r.outputPaths(paths)
	if err != nil {
		return err
	}

	for i, path := range paths {
		data, err := datasetRepo.ReadDataset(ctx, path)
		if err != nil {
			return err
		}

		err = r.renderTo(ctx, svc, data, outputs[i], config.Stdout)
		if err != nil {
			return fmt.Errorf("could not render %q dataset: %w", path, err)
		}

		logger.WithValues(log.Kv{"dataset": path, "out": outputs[i]}).Infof("Chart rendered")
	}

	return nil
}

// outputPaths maps every dataset to its SVG output.
func (r renderCommand) outputPaths(paths []string) ([]string, error) {
	if r.out == stdoutOut {
		if len(paths) > 1 {
			return nil, fmt.Errorf("%d datasets discovered, a directory output is required", len(paths))
		}
		return []string{stdoutOut}, nil
	}

	info, err := os.Stat(r.out)
	isDir := err == nil && info.IsDir()
	if !isDir && len(paths) == 1 {
		return []string{r.out}, nil
	}

	err = os.MkdirAll(r.out, 0o755)
	if err != nil {
		return nil, fmt.Errorf("could not create output directory: %w", err)
	}

	outputs := make([]string, 0, len(paths))
	seen := map[string]string{}
	for _, path := range paths {
		out := filepath.Join(r.out, svgFileName(path))
		if prev, ok := seen[out]; ok {
			return nil, fmt.Errorf("datasets %q and %q would be rendered to the same %q file", prev, path, out)
		}
		seen[out] = path
		outputs = append(outputs, out)
	}

	return outputs, nil
}

func (r renderCommand) renderTo(ctx context.Context, svc *render.Service, data []byte, out string, stdout io.Writer) (err error) {
	w := stdout
	if out != stdoutOut {
		f, ferr := os.Create(out)
		if ferr != nil {
			return fmt.Errorf("could not create output file: %w", ferr)
		}
		defer func() {
			cerr := f.Close()
			if err == nil {
				err = cerr
			}
		}()
		w = f
	}

	_, err = svc.Render(ctx, render.RenderRequest{
		Data:   data,
		Title:  r.title,
		Static: r.static,
		Out:    w,
	})

	return err
}

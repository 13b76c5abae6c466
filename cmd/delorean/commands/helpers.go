package commands

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// compileFilters compiles the discovery filters, empty expressions are ignored.
func compileFilters(exclude, include string) (excludeRegex, includeRegex *regexp.Regexp, err error) {
	if exclude != "" {
		excludeRegex, err = regexp.Compile(exclude)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid exclude regex: %w", err)
		}
	}
	if include != "" {
		includeRegex, err = regexp.Compile(include)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid include regex: %w", err)
		}
	}

	return excludeRegex, includeRegex, nil
}

// svgFileName returns the SVG file name for a dataset path (`data/visits.json` -> `visits.svg`).
func svgFileName(datasetPath string) string {
	name := filepath.Base(datasetPath)
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".svg"
}

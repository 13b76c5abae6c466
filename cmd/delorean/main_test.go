package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDataset = `{"2011-01-01": 10, "2011-01-02": 25, "2011-01-03": 15}`

func writeTestFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	return root
}

func TestRun(t *testing.T) {
	tests := map[string]struct {
		files     map[string]string
		args      func(root string) []string
		expStdout func(t *testing.T, root, stdout string)
		expErr    bool
	}{
		"Version should print the version.": {
			args: func(root string) []string { return []string{"version"} },
			expStdout: func(t *testing.T, root, stdout string) {
				assert.NotEmpty(t, stdout)
			},
		},

		"Rendering a dataset without output should write the SVG to stdout.": {
			files: map[string]string{"visits.json": testDataset},
			args: func(root string) []string {
				return []string{"render", "-i", filepath.Join(root, "visits.json"), "--title", "Visits"}
			},
			expStdout: func(t *testing.T, root, stdout string) {
				assert.True(t, strings.HasPrefix(stdout, "<?xml"))
				assert.Contains(t, stdout, "<title>Visits</title>")
				assert.Contains(t, stdout, "</svg>")
			},
		},

		"Rendering a dataset with a chart config should use it.": {
			files: map[string]string{
				"visits.json": testDataset,
				"chart.yaml":  "width: 321\nheight: 123\n",
			},
			args: func(root string) []string {
				return []string{"render", "-i", filepath.Join(root, "visits.json"), "-c", filepath.Join(root, "chart.yaml"), "--static"}
			},
			expStdout: func(t *testing.T, root, stdout string) {
				assert.Contains(t, stdout, `width="321"`)
				assert.Contains(t, stdout, `height="123"`)
				assert.NotContains(t, stdout, "<script")
			},
		},

		"Rendering a directory should write one SVG per discovered dataset.": {
			files: map[string]string{
				"in/visits.json":       testDataset,
				"in/nested/sales.json": testDataset,
				"in/nested/skip.json":  testDataset,
				"in/notes.txt":         "not a dataset",
			},
			args: func(root string) []string {
				return []string{"render", "-i", filepath.Join(root, "in"), "-o", filepath.Join(root, "out"), "-e", "skip"}
			},
			expStdout: func(t *testing.T, root, stdout string) {
				assert.Empty(t, stdout)

				entries, err := os.ReadDir(filepath.Join(root, "out"))
				require.NoError(t, err)
				got := []string{}
				for _, e := range entries {
					got = append(got, e.Name())
				}
				assert.Equal(t, []string{"sales.svg", "visits.svg"}, got)
			},
		},

		"Rendering a directory to stdout should fail.": {
			files: map[string]string{
				"in/a.json": testDataset,
				"in/b.json": testDataset,
			},
			args:   func(root string) []string { return []string{"render", "-i", filepath.Join(root, "in")} },
			expErr: true,
		},

		"Rendering an invalid dataset should fail.": {
			files:  map[string]string{"visits.json": `{"2011-13-45": 1}`},
			args:   func(root string) []string { return []string{"render", "-i", filepath.Join(root, "visits.json")} },
			expErr: true,
		},

		"Rendering with an invalid chart config should fail.": {
			files: map[string]string{
				"visits.json": testDataset,
				"chart.yaml":  "width: -1\n",
			},
			args: func(root string) []string {
				return []string{"render", "-i", filepath.Join(root, "visits.json"), "-c", filepath.Join(root, "chart.yaml")}
			},
			expErr: true,
		},

		"Validating correct datasets should succeed.": {
			files: map[string]string{
				"in/a.json": testDataset,
				"in/b.json": `{"2011-01-01": [1, 2], "2011-01-02": [3, 4]}`,
			},
			args: func(root string) []string { return []string{"validate", "-i", filepath.Join(root, "in")} },
			expStdout: func(t *testing.T, root, stdout string) {
				assert.Empty(t, stdout)
			},
		},

		"Validating with an invalid dataset should fail.": {
			files: map[string]string{
				"in/a.json": testDataset,
				"in/b.json": `{"2011-01-01": [1, 2], "2011-01-02": [3]}`,
			},
			args:   func(root string) []string { return []string{"validate", "-i", filepath.Join(root, "in")} },
			expErr: true,
		},

		"Validating without datasets should fail.": {
			files:  map[string]string{"in/notes.txt": "not a dataset"},
			args:   func(root string) []string { return []string{"validate", "-i", filepath.Join(root, "in")} },
			expErr: true,
		},

		"An unknown command should fail.": {
			args:   func(root string) []string { return []string{"explode"} },
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			root := writeTestFiles(t, test.files)
			args := append([]string{"delorean", "--no-log"}, test.args(root)...)
			var stdout, stderr bytes.Buffer

			err := Run(context.TODO(), args, strings.NewReader(""), &stdout, &stderr)

			if test.expErr {
				assert.Error(err)
			} else if assert.NoError(err) {
				test.expStdout(t, root, stdout.String())
			}
		})
	}
}

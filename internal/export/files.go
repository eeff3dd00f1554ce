// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/pubtrend/pkg/types"
)

// SaveCSV writes the series to dir/publication_counts.csv and returns the
// path. The directory is created if needed.
func SaveCSV(dir string, series []types.Point) (string, error) {
	return save(dir, CSVFileName, series, func(f *os.File) error {
		return WriteCSV(f, series)
	})
}

// SavePNG renders the series chart to dir/citations.png and returns the path.
func SavePNG(dir, title string, series []types.Point) (string, error) {
	return save(dir, PNGFileName, series, func(f *os.File) error {
		return RenderPNG(f, title, series)
	})
}

func save(dir, name string, series []types.Point, write func(*os.File) error) (string, error) {
	if len(series) == 0 {
		return "", ErrNoData
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}

	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}

package output

import (
	"errors"
	"fmt"
	"os"

	"github.com/finlab/finance-lab/internal/chart"
)

// HTMLChartRenderer draws each chart into its own HTML file under Dir.
// Releasing the handle removes the file.
type HTMLChartRenderer struct {
	Dir   string
	Title string
}

// ChartFile is the handle of a chart written by HTMLChartRenderer
type ChartFile struct {
	Path string
}

// Release removes the chart file; a file already gone is not an error.
func (f *ChartFile) Release() error {
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove chart file: %w", err)
	}
	return nil
}

func (r HTMLChartRenderer) Render(cfg chart.Config) (chart.Handle, error) {
	page, err := RenderChartPage(r.Title, cfg)
	if err != nil {
		return nil, err
	}
	f, err := os.CreateTemp(r.Dir, "chart_*.html")
	if err != nil {
		return nil, fmt.Errorf("create chart file: %w", err)
	}
	if _, err := f.Write(page); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("write chart file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close chart file: %w", err)
	}
	return &ChartFile{Path: f.Name()}, nil
}

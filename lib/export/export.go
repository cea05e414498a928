package export

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/trendmap/lib/config"
	"github.com/pescuma/trendmap/lib/consoles"
	"github.com/pescuma/trendmap/lib/model"
	"github.com/pescuma/trendmap/lib/render"
	"github.com/pescuma/trendmap/lib/utils"
	"github.com/pescuma/trendmap/lib/view"
)

type Options struct {
	OutDir string

	// Months is a glob over month keys. Empty means every month.
	Months string
	Hidden []string

	// Routines limits the parallel writers. Zero picks a default.
	Routines int
}

type Exporter struct {
	console  consoles.Console
	cfg      *config.Config
	ds       *model.Dataset
	renderer *view.Renderer
}

func NewExporter(console consoles.Console, cfg *config.Config, ds *model.Dataset) *Exporter {
	return &Exporter{
		console:  console,
		cfg:      cfg,
		ds:       ds,
		renderer: view.NewRenderer(cfg),
	}
}

// SelectMonths returns the month keys matching pattern, in slider order.
func (e *Exporter) SelectMonths(pattern string) ([]string, error) {
	if pattern == "" {
		return e.ds.Months(), nil
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid months pattern %q", pattern)
	}

	return lo.Filter(e.ds.Months(), func(m string, _ int) bool { return g.Match(m) }), nil
}

// WriteMonth writes the map, chart and slider of one month and returns the
// file names. OutDir is created when missing.
func (e *Exporter) WriteMonth(month string, opts *Options) ([]string, error) {
	state, err := view.Decode(e.ds, view.Params{Hidden: opts.Hidden})
	if err != nil {
		return nil, err
	}

	state, err = state.WithMonth(e.ds, month)
	if err != nil {
		return nil, err
	}

	scene := e.renderer.Derive(e.ds, state)

	err = os.MkdirAll(opts.OutDir, 0o755)
	if err != nil {
		return nil, errors.Wrapf(err, "error creating %v", opts.OutDir)
	}

	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{month + "-map.svg", func(w io.Writer) error { return render.WriteMapSVG(w, scene.Map) }},
		{month + "-chart.svg", func(w io.Writer) error { return render.WriteChartSVG(w, scene.Chart) }},
		{month + "-slider.svg", func(w io.Writer) error { return render.WriteSliderSVG(w, scene.Slider) }},
	}

	var result []string
	for _, f := range files {
		var buf bytes.Buffer
		err = f.write(&buf)
		if err != nil {
			return nil, errors.Wrapf(err, "error rendering %v", f.name)
		}

		path := filepath.Join(opts.OutDir, f.name)
		err = os.WriteFile(path, buf.Bytes(), 0o644)
		if err != nil {
			return nil, errors.Wrapf(err, "error writing %v", path)
		}

		result = append(result, path)
	}

	return result, nil
}

// WriteAll writes every selected month in parallel, showing progress.
func (e *Exporter) WriteAll(opts *Options) ([]string, error) {
	months, err := e.SelectMonths(opts.Months)
	if err != nil {
		return nil, err
	}

	e.console.Printf("Writing %v months to %v...\n", len(months), opts.OutDir)

	bar := utils.NewProgressBar(len(months), "Rendering")
	defer bar.Close()

	group := utils.ParallelFor(months, func(month string) ([]string, error) {
		return e.WriteMonth(month, opts)
	}, utils.ParallelOptions{Routines: opts.Routines})

	var result []string
	for files := range group.Output {
		result = append(result, files...)
		_ = bar.Add(1)
	}

	err = group.Error()
	if err != nil {
		return nil, err
	}

	return result, nil
}

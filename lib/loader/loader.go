package loader

import (
	"context"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/pescuma/trendmap/lib/config"
	"github.com/pescuma/trendmap/lib/consoles"
	"github.com/pescuma/trendmap/lib/geo"
	"github.com/pescuma/trendmap/lib/model"
)

type Loader struct {
	console consoles.Console
	client  *http.Client
	plural  *pluralize.Client
}

func NewLoader(console consoles.Console) *Loader {
	return &Loader{
		console: console,
		client:  newHTTPClient(),
		plural:  pluralize.NewClient(),
	}
}

// Load fetches the five inputs concurrently and only returns a dataset when
// all of them were read and parsed. The first failure cancels the others.
func (l *Loader) Load(ctx context.Context, cfg *config.Config) (*model.Dataset, error) {
	inputs := cfg.Inputs
	projection := geo.NewMapProjection(cfg)

	var result model.Dataset

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		data, err := l.read(ctx, "states", inputs.Resolve(inputs.States))
		if err != nil {
			return err
		}

		fs, err := geo.DecodeFeatures(data, inputs.StatesObject)
		if err != nil {
			return errors.Wrap(err, "error parsing states")
		}

		result.Regions, err = geo.BuildRegions(fs, inputs.NameProperty, projection)
		if err != nil {
			return errors.Wrap(err, "error parsing states")
		}

		l.console.Printf("Loaded %v\n", l.plural.Pluralize("region", result.Regions.Len(), true))
		return nil
	})

	g.Go(func() error {
		data, err := l.read(ctx, "nation", inputs.Resolve(inputs.Nation))
		if err != nil {
			return err
		}

		fs, err := geo.DecodeFeatures(data, inputs.NationObject)
		if err != nil {
			return errors.Wrap(err, "error parsing nation")
		}

		result.Nation = geo.ProjectMultiPolygon(projection, geo.Merge(fs))
		return nil
	})

	g.Go(func() error {
		data, err := l.read(ctx, "interest", inputs.Resolve(inputs.Interest))
		if err != nil {
			return err
		}

		result.Interest, err = parseInterest(data)
		if err != nil {
			return errors.Wrap(err, "error parsing interest")
		}

		l.console.Printf("Loaded %v of interest\n", l.plural.Pluralize("month", len(result.Interest.Months()), true))
		return nil
	})

	g.Go(func() error {
		data, err := l.read(ctx, "concerts", inputs.Resolve(inputs.Concerts))
		if err != nil {
			return err
		}

		result.Concerts, err = l.parseConcerts(data)
		if err != nil {
			return errors.Wrap(err, "error parsing concerts")
		}

		l.console.Printf("Loaded %v\n", l.plural.Pluralize("concert", len(result.Concerts.List()), true))
		return nil
	})

	g.Go(func() error {
		data, err := l.read(ctx, "series", inputs.Resolve(inputs.Series))
		if err != nil {
			return err
		}

		result.Series, err = parseSeries(data)
		if err != nil {
			return errors.Wrap(err, "error parsing series")
		}

		l.console.Printf("Loaded %v of chart data for %v\n",
			l.plural.Pluralize("point", len(result.Series.Points()), true),
			l.plural.Pluralize("category", len(result.Series.Keys()), true))
		return nil
	})

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (l *Loader) read(ctx context.Context, name string, location string) ([]byte, error) {
	data, err := fetch(ctx, l.client, location)
	if err != nil {
		return nil, errors.Wrapf(err, "error loading %v from %v", name, location)
	}

	l.console.Printf("Read %v (%v)\n", location, humanize.Bytes(uint64(len(data))))
	return data, nil
}

package loader

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/trendmap/lib/model"
)

func parseInterest(data []byte) (*model.InterestIndex, error) {
	t, err := parseCSV(data)
	if err != nil {
		return nil, err
	}
	if !hasColumn(t, model.DateColumn) {
		return nil, errors.Errorf("missing %v column", model.DateColumn)
	}

	return model.NewInterestIndex(t.rows), nil
}

// parseConcerts skips rows without a usable location, warning about each.
func (l *Loader) parseConcerts(data []byte) (*model.Concerts, error) {
	t, err := parseCSV(data)
	if err != nil {
		return nil, err
	}
	for _, c := range []string{"Date", "Artist", "Longitude", "Latitude"} {
		if !hasColumn(t, c) {
			return nil, errors.Errorf("missing %v column", c)
		}
	}

	var events []*model.ConcertEvent
	for i, row := range t.rows {
		lon, err := strconv.ParseFloat(strings.TrimSpace(row["Longitude"]), 64)
		if err != nil {
			l.console.Printf("Skipping concerts row %v: invalid longitude %q\n", i+2, row["Longitude"])
			continue
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(row["Latitude"]), 64)
		if err != nil {
			l.console.Printf("Skipping concerts row %v: invalid latitude %q\n", i+2, row["Latitude"])
			continue
		}

		events = append(events, &model.ConcertEvent{
			Month:     strings.TrimSpace(row["Date"]),
			Artist:    strings.TrimSpace(row["Artist"]),
			Longitude: lon,
			Latitude:  lat,
			Info:      row["ConcertInfo"],
		})
	}

	return model.NewConcerts(events), nil
}

// parseSeries takes every column after Date as a category key.
func parseSeries(data []byte) (*model.TimeSeries, error) {
	t, err := parseCSV(data)
	if err != nil {
		return nil, err
	}
	if len(t.columns) == 0 || t.columns[0] != model.DateColumn {
		return nil, errors.Errorf("first column must be %v", model.DateColumn)
	}

	keys := t.columns[1:]

	var points []*model.TimeSeriesPoint
	for i, row := range t.rows {
		date, err := model.ParseMonth(row[model.DateColumn])
		if err != nil {
			return nil, errors.Wrapf(err, "row %v", i+2)
		}

		values := make(map[string]float64, len(keys))
		for _, k := range keys {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[k]), 64)
			if err != nil {
				continue
			}
			values[k] = v
		}

		points = append(points, &model.TimeSeriesPoint{
			Date:   date,
			Values: values,
		})
	}

	return model.NewTimeSeries(keys, points), nil
}

func hasColumn(t *table, name string) bool {
	return lo.Contains(t.columns, name)
}

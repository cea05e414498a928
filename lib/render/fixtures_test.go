package render

import (
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/trendmap/lib/config"
	"github.com/pescuma/trendmap/lib/geo"
	"github.com/pescuma/trendmap/lib/model"
)

func box(minLon, minLat, maxLon, maxLat float64) orb.MultiPolygon {
	return orb.MultiPolygon{{{
		{minLon, minLat}, {maxLon, minLat}, {maxLon, maxLat}, {minLon, maxLat}, {minLon, minLat},
	}}}
}

func month(t *testing.T, key string) time.Time {
	d, err := model.ParseMonth(key)
	require.Nil(t, err)
	return d
}

func newTestDataset(t *testing.T, cfg *config.Config) *model.Dataset {
	fs := []*geo.Feature{
		{Properties: map[string]any{"name": "California"}, Shape: box(-122, 36, -118, 39)},
		{Properties: map[string]any{"name": "New York"}, Shape: box(-76, 41, -73, 43)},
		{Properties: map[string]any{"name": "Rhode Island"}, Shape: box(-71.8, 41.3, -71.2, 42)},
		{Properties: map[string]any{"name": "District of Columbia"}, Shape: box(-77.1, 38.8, -76.9, 39)},
	}

	regions, err := geo.BuildRegions(fs, "name", geo.NewMapProjection(cfg))
	require.Nil(t, err)

	interest := model.NewInterestIndex([]map[string]string{
		{"Date": "12-Jan", "California": "45", "New York": "72", "Rhode Island": "80", "District of Columbia": "10"},
		{"Date": "12-Feb", "California": "0", "New York": "", "Rhode Island": "20"},
		{"Date": "12-Mar", "California": "55", "New York": "30", "Rhode Island": "5"},
	})

	concerts := model.NewConcerts([]*model.ConcertEvent{
		{Month: "12-Jan", Artist: "BTS", Longitude: -118.2, Latitude: 34.05, Info: "BTS at LA"},
		{Month: "12-Jan", Artist: "Nobody", Longitude: -74, Latitude: 40.7, Info: "Somebody in NY"},
		{Month: "12-Jan", Artist: "PSY", Longitude: 2.35, Latitude: 48.85, Info: "PSY in Paris"},
		{Month: "12-Mar", Artist: "PSY", Longitude: -87.6, Latitude: 41.9, Info: "PSY in Chicago"},
	})

	series := model.NewTimeSeries([]string{"kpop", "BTS", "PSY"}, []*model.TimeSeriesPoint{
		{Date: month(t, "12-Jun"), Values: map[string]float64{"kpop": 10, "BTS": 4, "PSY": 2}},
		{Date: month(t, "12-Jul"), Values: map[string]float64{"kpop": 40, "BTS": 5, "PSY": 30}},
		{Date: month(t, "12-Aug"), Values: map[string]float64{"kpop": 90, "BTS": 6, "PSY": 60}},
		{Date: month(t, "18-Sep"), Values: map[string]float64{"kpop": 50, "BTS": 45}},
	})

	return &model.Dataset{
		Regions:  regions,
		Nation:   box(-125, 25, -66, 49),
		Interest: interest,
		Concerts: concerts,
		Series:   series,
	}
}

func findRegion(t *testing.T, f *MapFrame, name string) *RegionShape {
	for _, r := range f.Regions {
		if r.Name == name {
			return r
		}
	}
	require.Failf(t, "region not found", "%v", name)
	return nil
}

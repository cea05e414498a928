package loader

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/trendmap/lib/config"
	"github.com/pescuma/trendmap/lib/consoles"
)

const statesGeoJSON = `{"type": "FeatureCollection", "features": [
	{"type": "Feature", "properties": {"name": "California"},
	 "geometry": {"type": "Polygon", "coordinates": [[[-124, 34], [-117, 34], [-117, 41], [-124, 41], [-124, 34]]]}},
	{"type": "Feature", "properties": {"name": "New York"},
	 "geometry": {"type": "Polygon", "coordinates": [[[-79, 41], [-73, 41], [-73, 45], [-79, 45], [-79, 41]]]}}
]}`

const nationGeoJSON = `{"type": "FeatureCollection", "features": [
	{"type": "Feature", "properties": {},
	 "geometry": {"type": "Polygon", "coordinates": [[[-124, 30], [-70, 30], [-70, 48], [-124, 48], [-124, 30]]]}}
]}`

func writeInputs(t *testing.T) *config.Config {
	dir := t.TempDir()

	files := map[string]string{
		"states.json": statesGeoJSON,
		"nation.json": nationGeoJSON,
		"interest.csv": "Date,California,New York\n" +
			"12-Jan,45,72\n" +
			"12-Feb,,100\n",
		"concerts.csv": "Date,Artist,Longitude,Latitude,ConcertInfo\n" +
			"12-Feb,BTS,-118.2,34.0,\"BTS, Los Angeles\"\n",
		"series.csv": "Date,BTS,kpop\n" +
			"12-Jan,1,20\n" +
			"12-Feb,3,25\n",
	}
	for name, content := range files {
		require.Nil(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	cfg := config.Default()
	cfg.Inputs = config.Inputs{
		DataDir:      dir,
		States:       "states.json",
		NameProperty: "name",
		Nation:       "nation.json",
		Interest:     "interest.csv",
		Concerts:     "concerts.csv",
		Series:       "series.csv",
	}
	return cfg
}

func TestLoadReadsAllInputs(t *testing.T) {
	t.Parallel()

	cfg := writeInputs(t)

	ds, err := NewLoader(consoles.NewNullConsole()).Load(context.Background(), cfg)
	require.Nil(t, err)

	assert.Equal(t, 2, ds.Regions.Len())
	assert.NotEmpty(t, ds.Nation)
	assert.Equal(t, []string{"12-Jan", "12-Feb"}, ds.Months())

	v, ok := ds.Interest.Lookup("12-Jan", "California")
	assert.True(t, ok)
	assert.Equal(t, 45.0, v)

	_, ok = ds.Interest.Lookup("12-Feb", "California")
	assert.False(t, ok)

	events := ds.Concerts.InMonth("12-Feb")
	require.Len(t, events, 1)
	assert.Equal(t, "BTS, Los Angeles", events[0].Info)
	assert.Equal(t, -118.2, events[0].Longitude)

	assert.Equal(t, []string{"BTS", "kpop"}, ds.Series.Keys())
	assert.Len(t, ds.Series.Points(), 2)
}

func TestLoadUsesOnlyTheNationObject(t *testing.T) {
	t.Parallel()

	cfg := writeInputs(t)
	cfg.Inputs.NationObject = "nation"

	topology := `{
		"type": "Topology",
		"arcs": [
			[[-124, 30], [-70, 30], [-70, 48], [-124, 48], [-124, 30]],
			[[-100, 35], [-95, 35], [-95, 40], [-100, 40], [-100, 35]],
			[[-90, 35], [-85, 35], [-85, 40], [-90, 40], [-90, 35]]
		],
		"objects": {
			"nation": {"type": "GeometryCollection", "geometries": [{"type": "Polygon", "arcs": [[0]]}]},
			"counties": {"type": "GeometryCollection", "geometries": [
				{"type": "Polygon", "arcs": [[1]]},
				{"type": "Polygon", "arcs": [[2]]}
			]}
		}
	}`
	require.Nil(t, os.WriteFile(filepath.Join(cfg.Inputs.DataDir, "nation.json"), []byte(topology), 0o600))

	ds, err := NewLoader(consoles.NewNullConsole()).Load(context.Background(), cfg)
	require.Nil(t, err)

	assert.Len(t, ds.Nation, 1)
}

func TestLoadFailsOnMissingNationObject(t *testing.T) {
	t.Parallel()

	cfg := writeInputs(t)
	cfg.Inputs.NationObject = "land"
	require.Nil(t, os.WriteFile(filepath.Join(cfg.Inputs.DataDir, "nation.json"),
		[]byte(`{"type": "Topology", "arcs": [], "objects": {"nation": {"type": "GeometryCollection", "geometries": []}}}`), 0o600))

	_, err := NewLoader(consoles.NewNullConsole()).Load(context.Background(), cfg)

	assert.ErrorContains(t, err, "error parsing nation")
	assert.ErrorContains(t, err, "land")
}

func TestLoadFailsWhenAnyInputIsMissing(t *testing.T) {
	t.Parallel()

	cfg := writeInputs(t)
	cfg.Inputs.Concerts = "missing.csv"

	ds, err := NewLoader(consoles.NewNullConsole()).Load(context.Background(), cfg)

	assert.Nil(t, ds)
	assert.ErrorContains(t, err, "error loading concerts")
}

func TestLoadFailsOnInvalidSeriesDate(t *testing.T) {
	t.Parallel()

	cfg := writeInputs(t)
	require.Nil(t, os.WriteFile(filepath.Join(cfg.Inputs.DataDir, "series.csv"), []byte("Date,BTS\nJanuary,1\n"), 0o600))

	_, err := NewLoader(consoles.NewNullConsole()).Load(context.Background(), cfg)

	assert.ErrorContains(t, err, "error parsing series")
}

func TestLoadFetchesURLs(t *testing.T) {
	t.Parallel()

	cfg := writeInputs(t)

	srv := httptest.NewServer(http.FileServer(http.Dir(cfg.Inputs.DataDir)))
	defer srv.Close()

	cfg.Inputs.Interest = srv.URL + "/interest.csv"

	ds, err := NewLoader(consoles.NewNullConsole()).Load(context.Background(), cfg)
	require.Nil(t, err)
	assert.Equal(t, []string{"12-Jan", "12-Feb"}, ds.Months())
}

func TestLoadFailsOnHTTPError(t *testing.T) {
	t.Parallel()

	cfg := writeInputs(t)

	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	cfg.Inputs.Nation = srv.URL + "/us.json"

	_, err := NewLoader(consoles.NewNullConsole()).Load(context.Background(), cfg)

	assert.ErrorContains(t, err, "error loading nation")
	assert.ErrorContains(t, err, "404")
}

func TestParseCSVHandlesShortRowsAndBOM(t *testing.T) {
	t.Parallel()

	tb, err := parseCSV([]byte("\ufeffDate,A,B\n12-Jan,1\n\n12-Feb,2,3\n"))
	require.Nil(t, err)

	assert.Equal(t, []string{"Date", "A", "B"}, tb.columns)
	require.Len(t, tb.rows, 2)
	_, ok := tb.rows[0]["B"]
	assert.False(t, ok)
	assert.Equal(t, "3", tb.rows[1]["B"])
}

func TestParseConcertsSkipsRowsWithoutLocation(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	l := NewLoader(consoles.NewWriterConsole(&out))

	c, err := l.parseConcerts([]byte("Date,Artist,Longitude,Latitude,ConcertInfo\n" +
		"12-Feb,BTS,-118.2,34.0,LA\n" +
		"12-Mar,PSY,,40.7,NY\n" +
		"12-Apr,BTS,-87.6,north,Chicago\n"))
	require.Nil(t, err)

	require.Len(t, c.List(), 1)
	assert.Equal(t, "LA", c.List()[0].Info)
	assert.Contains(t, out.String(), "Skipping concerts row 3: invalid longitude")
	assert.Contains(t, out.String(), "Skipping concerts row 4: invalid latitude")
}

func TestParseConcertsRequiresColumns(t *testing.T) {
	t.Parallel()

	_, err := NewLoader(consoles.NewNullConsole()).parseConcerts([]byte("Date,Artist,Longitude\n12-Feb,BTS,-118.2\n"))

	assert.ErrorContains(t, err, "Latitude")
}

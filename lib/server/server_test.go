package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/trendmap/lib/config"
	"github.com/pescuma/trendmap/lib/model"
	"github.com/pescuma/trendmap/lib/view"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestDataset() *model.Dataset {
	date := func(m time.Month) time.Time { return time.Date(2012, m, 1, 0, 0, 0, 0, time.UTC) }

	regions := model.NewRegions()
	regions.Add(&model.Region{
		Name:        "Ohio",
		Path:        "M600,300L650,300L650,350L600,350Z",
		Centroid:    orb.Point{625, 325},
		HasCentroid: true,
	})

	return &model.Dataset{
		Regions: regions,
		Interest: model.NewInterestIndex([]map[string]string{
			{"Date": "12-Jan", "Ohio": "10"},
			{"Date": "12-Feb", "Ohio": "20"},
			{"Date": "12-Mar", "Ohio": "30"},
		}),
		Concerts: model.NewConcerts([]*model.ConcertEvent{
			{Month: "12-Feb", Artist: "BTS", Longitude: -83, Latitude: 40, Info: "BTS in Ohio"},
		}),
		Series: model.NewTimeSeries([]string{"kpop", "BTS"}, []*model.TimeSeriesPoint{
			{Date: date(time.January), Values: map[string]float64{"kpop": 10, "BTS": 1}},
			{Date: date(time.February), Values: map[string]float64{"kpop": 20, "BTS": 2}},
			{Date: date(time.March), Values: map[string]float64{"kpop": 30, "BTS": 3}},
		}),
	}
}

func newTestRouter(opts *Options) *gin.Engine {
	s := newServer(config.Default(), newTestDataset(), opts)
	r := gin.New()
	s.init(r)
	return r
}

func request(t *testing.T, r *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.Nil(t, err)
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	var result T
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &result))
	return result
}

func TestMonths(t *testing.T) {
	t.Parallel()

	w := request(t, newTestRouter(nil), "/api/months")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, []any{"12-Jan", "12-Feb", "12-Mar"}, body["months"])
	assert.Equal(t, "Time Slider: From Jan 2012 to Feb 2024", body["title"])
}

func TestScene(t *testing.T) {
	t.Parallel()

	w := request(t, newTestRouter(nil), "/api/scene?month=2&hidden=kpop")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode[view.Scene](t, w)
	assert.Equal(t, "12-Feb", body.Month)
	assert.Equal(t, view.Params{Month: 2, Hidden: []string{"kpop"}}, body.Params)
	require.Len(t, body.Map.Regions, 1)
	assert.Equal(t, "20", body.Map.Regions[0].Label.Text)
	assert.Len(t, body.Chart.Lines, 1)
}

func TestSceneDefaultsToFirstMonth(t *testing.T) {
	t.Parallel()

	w := request(t, newTestRouter(nil), "/api/scene")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "12-Jan", decode[view.Scene](t, w).Month)
}

func TestSceneErrors(t *testing.T) {
	t.Parallel()

	r := newTestRouter(nil)

	assert.Equal(t, http.StatusNotFound, request(t, r, "/api/scene?month=9").Code)
	assert.Equal(t, http.StatusBadRequest, request(t, r, "/api/scene?month=abc").Code)
	assert.Equal(t, http.StatusBadRequest, request(t, r, "/api/scene?month=-1").Code)
	assert.Equal(t, http.StatusNotFound, request(t, r, "/api/map.svg?month=9").Code)
}

func TestSVGs(t *testing.T) {
	t.Parallel()

	r := newTestRouter(nil)

	for _, url := range []string{"/api/map.svg?month=2", "/api/chart.svg?month=2&hidden=BTS", "/api/slider.svg?month=2"} {
		w := request(t, r, url)

		require.Equal(t, http.StatusOK, w.Code, url)
		assert.Equal(t, "image/svg+xml; charset=utf-8", w.Header().Get("Content-Type"), url)
		assert.Contains(t, w.Body.String(), "<svg", url)
		assert.Contains(t, w.Body.String(), "</svg>", url)
	}

	assert.Contains(t, request(t, r, "/api/map.svg?month=2").Body.String(), `data-info="BTS in Ohio"`)
	assert.NotContains(t, request(t, r, "/api/map.svg?month=3").Body.String(), `data-info="BTS in Ohio"`)
}

func TestSlide(t *testing.T) {
	t.Parallel()

	r := newTestRouter(nil)

	w := request(t, r, "/api/slide?pos=2.6&hidden=BTS")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[stateResponse](t, w)
	assert.Equal(t, "12-Mar", body.Month)
	assert.Equal(t, view.Params{Month: 3, Hidden: []string{"BTS"}}, body.Params)

	w = request(t, r, "/api/slide?pos=-20")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[stateResponse](t, w).Params.Month)

	assert.Equal(t, http.StatusBadRequest, request(t, r, "/api/slide").Code)
	assert.Equal(t, http.StatusBadRequest, request(t, r, "/api/slide?pos=x").Code)
}

func TestToggle(t *testing.T) {
	t.Parallel()

	r := newTestRouter(nil)

	w := request(t, r, "/api/toggle?month=3&key=kpop")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[stateResponse](t, w)
	assert.Equal(t, view.Params{Month: 3, Hidden: []string{"kpop"}}, body.Params)

	w = request(t, r, "/api/toggle?month=3&hidden=kpop&key=kpop")
	require.Equal(t, http.StatusOK, w.Code)
	body = decode[stateResponse](t, w)
	assert.Equal(t, 3, body.Params.Month)
	assert.Empty(t, body.Params.Hidden)

	assert.Equal(t, http.StatusBadRequest, request(t, r, "/api/toggle?month=3").Code)
}

func TestFrontend(t *testing.T) {
	t.Parallel()

	r := newTestRouter(nil)

	w := request(t, r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "slider-input")

	assert.Equal(t, http.StatusOK, request(t, r, "/assets/style.css").Code)
}

func TestFrontendDropsStaleResponses(t *testing.T) {
	t.Parallel()

	w := request(t, newTestRouter(nil), "/assets/app.js")
	require.Equal(t, http.StatusOK, w.Code)

	js := w.Body.String()
	assert.Contains(t, js, "const seq = ++latest;")
	assert.Equal(t, 3, strings.Count(js, "seq !== latest"))
}

func TestSymbols(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.Nil(t, os.WriteFile(filepath.Join(dir, "BTS.png"), []byte("png"), 0o600))

	r := newTestRouter(&Options{SymbolsDir: dir})

	w := request(t, r, "/symbols/BTS.png")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png", w.Body.String())
}

func TestSVGsAreCachedByState(t *testing.T) {
	t.Parallel()

	s := newServer(config.Default(), newTestDataset(), &Options{CacheSize: 10})
	r := gin.New()
	s.init(r)

	request(t, r, "/api/chart.svg?month=2&hidden=BTS")
	request(t, r, "/api/chart.svg?hidden=BTS&month=2")
	request(t, r, "/api/map.svg?month=2&hidden=BTS")
	request(t, r, "/api/map.svg?month=2")
	request(t, r, "/api/map.svg?month=9")

	assert.Equal(t, 2, s.svgs.Len())
}

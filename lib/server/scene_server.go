package server

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/pescuma/trendmap/lib/render"
	"github.com/pescuma/trendmap/lib/view"
)

func (s *server) initScene(r *gin.Engine) {
	r.GET("/api/months", get(s.months))
	r.GET("/api/scene", getP[view.Params](s.scene))
	r.GET("/api/map.svg", svgP[view.Params](s.mapSVG))
	r.GET("/api/chart.svg", svgP[view.Params](s.chartSVG))
	r.GET("/api/slider.svg", svgP[view.Params](s.sliderSVG))
}

func (s *server) months() (any, error) {
	return gin.H{
		"months": s.ds.Months(),
		"title":  view.SliderTitle(s.cfg, s.ds.Months()),
	}, nil
}

func (s *server) scene(params *view.Params) (any, error) {
	state, err := view.Decode(s.ds, *params)
	if err != nil {
		return nil, err
	}

	return s.renderer.Derive(s.ds, state), nil
}

func (s *server) mapSVG(params *view.Params) ([]byte, error) {
	// The map only depends on the month.
	monthOnly := &view.Params{Month: params.Month}

	return s.cachedSVG("map", monthOnly, func(state view.State, w io.Writer) error {
		return render.WriteMapSVG(w, s.renderer.Derive(s.ds, state).Map)
	})
}

func (s *server) chartSVG(params *view.Params) ([]byte, error) {
	return s.cachedSVG("chart", params, func(state view.State, w io.Writer) error {
		return render.WriteChartSVG(w, s.renderer.Derive(s.ds, state).Chart)
	})
}

func (s *server) sliderSVG(params *view.Params) ([]byte, error) {
	return s.cachedSVG("slider", params, func(state view.State, w io.Writer) error {
		return render.WriteSliderSVG(w, s.renderer.Slider(s.ds, state))
	})
}

// cachedSVG keys the cache by the decoded state, so equivalent queries share
// one entry.
func (s *server) cachedSVG(name string, params *view.Params, write func(view.State, io.Writer) error) ([]byte, error) {
	state, err := view.Decode(s.ds, *params)
	if err != nil {
		return nil, err
	}

	key := name + "?" + view.Encode(state).Values().Encode()

	return s.svgs.Get(key, func(string) ([]byte, error) {
		return renderToBytes(func(w io.Writer) error { return write(state, w) })
	})
}

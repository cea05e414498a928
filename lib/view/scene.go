package view

import (
	"fmt"

	"github.com/pescuma/trendmap/lib/config"
	"github.com/pescuma/trendmap/lib/geo"
	"github.com/pescuma/trendmap/lib/model"
	"github.com/pescuma/trendmap/lib/render"
)

// Scene is everything drawn for one State.
type Scene struct {
	Month  string              `json:"month"`
	Params Params              `json:"params"`
	Map    *render.MapFrame    `json:"map"`
	Chart  *render.ChartFrame  `json:"chart"`
	Slider *render.SliderFrame `json:"slider"`
}

// Renderer keeps the scales and the projection between derivations. It holds
// no state of its own, so it can be shared between goroutines.
type Renderer struct {
	cfg       *config.Config
	mapRender *render.MapRenderer
	chart     *render.ChartRenderer
}

func NewRenderer(cfg *config.Config) *Renderer {
	return &Renderer{
		cfg:       cfg,
		mapRender: render.NewMapRenderer(cfg, geo.NewMapProjection(cfg)),
		chart:     render.NewChartRenderer(cfg),
	}
}

// Derive is the only way a State becomes something visible.
func Derive(ds *model.Dataset, cfg *config.Config, s State) *Scene {
	return NewRenderer(cfg).Derive(ds, s)
}

func (r *Renderer) Derive(ds *model.Dataset, s State) *Scene {
	month := s.Month(ds)

	return &Scene{
		Month:  month,
		Params: Encode(s),
		Map:    r.mapRender.Render(ds, month),
		Chart:  r.chart.Render(ds, s.Selection, month),
		Slider: r.Slider(ds, s),
	}
}

func (r *Renderer) Slider(ds *model.Dataset, s State) *render.SliderFrame {
	mapWidth := r.cfg.Layout.MapWidth()
	slider := NewSlider(ds.Months(), mapWidth/1.5)
	return slider.Frame(s.MonthIndex, mapWidth, 100, SliderTitle(r.cfg, ds.Months()))
}

// SliderTitle uses the configured title, or builds one from the month range.
func SliderTitle(cfg *config.Config, months []string) string {
	if cfg.Slider.Title != "" || len(months) == 0 {
		return cfg.Slider.Title
	}

	first, last := months[0], months[len(months)-1]
	if d, err := model.ParseMonth(first); err == nil {
		first = d.Format("Jan 2006")
	}
	if d, err := model.ParseMonth(last); err == nil {
		last = d.Format("Jan 2006")
	}

	return fmt.Sprintf("Time Slider: From %v to %v", first, last)
}

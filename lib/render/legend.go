package render

type InterestLegend struct {
	Title  string
	X, Y   float64
	Height float64
	Boxes  []*LegendBox
}

type LegendBox struct {
	Tick  float64
	Label string
	X     float64
	Width float64
	Color string
}

// renderLegend places one box per threshold, evenly spread over the legend
// width, each filled with the colour of its own tick.
func (m *MapRenderer) renderLegend() *InterestLegend {
	ticks := m.cfg.Map.Thresholds
	width := m.cfg.Map.LegendWidth

	result := &InterestLegend{
		Title:  m.cfg.Map.LegendTitle,
		X:      m.cfg.Layout.MapWidth() * 0.40,
		Y:      30,
		Height: 30,
	}

	if len(ticks) == 0 {
		return result
	}

	step := width
	if len(ticks) > 1 {
		step = width / float64(len(ticks)-1)
	}

	for i, t := range ticks {
		result.Boxes = append(result.Boxes, &LegendBox{
			Tick:  t,
			Label: LabelText(t, true),
			X:     float64(i) * step,
			Width: step,
			Color: m.threshold.Color(t),
		})
	}

	return result
}

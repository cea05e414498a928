package view

import (
	"math"

	"github.com/pescuma/trendmap/lib/render"
	"github.com/pescuma/trendmap/lib/scales"
	"github.com/pescuma/trendmap/lib/utils"
)

// Slider maps the positions [1, N] onto the track, one position per month.
type Slider struct {
	months []string
	scale  *scales.Linear
}

func NewSlider(months []string, trackWidth float64) *Slider {
	return &Slider{
		months: months,
		scale:  scales.NewClampedLinear(1, float64(utils.Max(len(months), 1)), 0, trackWidth),
	}
}

// Resolve rounds pos to the nearest month index, clamped to [1, N].
// It returns 0 when there are no months.
func (s *Slider) Resolve(pos float64) int {
	if len(s.months) == 0 {
		return 0
	}
	if math.IsNaN(pos) {
		return 1
	}

	return utils.Clamp(int(math.Round(utils.Clamp(pos, 1, float64(len(s.months))))), 1, len(s.months))
}

// Position is the inverse of Resolve for whole indexes: where on the track
// the handle of index sits.
func (s *Slider) Position(index int) float64 {
	return s.scale.Map(float64(index))
}

// Frame draws the slider with the handle at index.
func (s *Slider) Frame(index int, width, height float64, title string) *render.SliderFrame {
	result := &render.SliderFrame{
		Width:      width,
		Height:     height,
		TrackStart: s.scale.From,
		TrackEnd:   s.scale.To,
		Title:      title,
		TitleX:     s.scale.To / 4,
	}

	for i := range s.months {
		result.Ticks = append(result.Ticks, s.Position(i+1))
	}

	if index >= 1 && index <= len(s.months) {
		result.Handle = s.Position(index)
		result.Label = s.months[index-1]
	}

	return result
}

package render

import (
	"strconv"
	"strings"
	"time"

	"github.com/aquilax/truncate"
	"github.com/paulmach/orb"

	"github.com/pescuma/trendmap/lib/config"
	"github.com/pescuma/trendmap/lib/geo"
	"github.com/pescuma/trendmap/lib/model"
	"github.com/pescuma/trendmap/lib/scales"
)

const captionLength = 40

type ChartFrame struct {
	Month string

	// Width and Height are the plot area, without margins.
	Width  float64
	Height float64
	Margin config.Margins

	XDomain [2]time.Time
	YDomain [2]float64
	XTicks  []Tick
	YTicks  []Tick

	Lines       []*LinePath
	Annotations []*AnnotationDot
	Legend      []*LegendEntry
}

type Tick struct {
	Pos   float64
	Label string
}

type LinePath struct {
	Key    string
	Class  string
	Color  string
	Width  float64
	Points []orb.Point
	Path   string
}

type AnnotationDot struct {
	Month   string
	Text    string
	Caption string
	Color   string
	X, Y    float64
	R       float64
}

type LegendEntry struct {
	Key      string
	Color    string
	Selected bool
	Opacity  float64
	Y        float64
}

type ChartRenderer struct {
	cfg        *config.Config
	categories *scales.Ordinal
}

func NewChartRenderer(cfg *config.Config) *ChartRenderer {
	return &ChartRenderer{
		cfg:        cfg,
		categories: NewCategoryScale(cfg),
	}
}

// Render draws the selected keys up to and including month. The x domain is
// always the full series, the y domain only covers what is drawn.
func (c *ChartRenderer) Render(ds *model.Dataset, selection model.Selection, month string) *ChartFrame {
	layout := c.cfg.Layout

	result := &ChartFrame{
		Month:  month,
		Width:  layout.ChartWidth(),
		Height: layout.ChartHeight(),
		Margin: layout.ChartMargin,
	}

	points := ds.Series.Points()
	if until, err := model.ParseMonth(month); err == nil {
		points = ds.Series.Until(until)
	}

	selected := selection.Selected()

	min, max, _ := ds.Series.Extent()
	x := scales.NewTime(min, max, 0, result.Width)
	yMax := model.MaxValue(points, selected)
	y := scales.NewLinear(0, yMax, result.Height, 0)

	result.XDomain = [2]time.Time{min, max}
	result.YDomain = [2]float64{0, yMax}
	result.XTicks = xTicks(x)
	result.YTicks = yTicks(y)

	for _, key := range selected {
		line := &LinePath{
			Key:   key,
			Class: LineClass(key),
			Color: c.categories.Color(key),
			Width: c.strokeWidth(key),
		}
		for _, p := range points {
			line.Points = append(line.Points, orb.Point{x.Map(p.Date), y.Map(p.Value(key))})
		}
		line.Path = linePath(line.Points)

		result.Lines = append(result.Lines, line)

		if key == c.cfg.Chart.AggregateKey {
			result.Annotations = c.renderAnnotations(points, key, x, y)
		}
	}

	for i, key := range selection.Keys() {
		isSelected := selection.IsSelected(key)
		opacity := 1.0
		if !isSelected {
			opacity = c.cfg.Chart.HiddenOpacity
		}

		result.Legend = append(result.Legend, &LegendEntry{
			Key:      key,
			Color:    c.categories.Color(key),
			Selected: isSelected,
			Opacity:  opacity,
			Y:        float64(i) * 20,
		})
	}

	return result
}

func (c *ChartRenderer) strokeWidth(key string) float64 {
	if key == c.cfg.Chart.AggregateKey {
		return c.cfg.Chart.AggregateStrokeWidth
	}
	return c.cfg.Chart.StrokeWidth
}

// renderAnnotations marks the configured months that are already visible.
func (c *ChartRenderer) renderAnnotations(points []*model.TimeSeriesPoint, key string, x *scales.Time, y *scales.Linear) []*AnnotationDot {
	var result []*AnnotationDot

	for _, a := range c.cfg.Chart.Annotations {
		date, err := model.ParseMonth(a.Month)
		if err != nil {
			continue
		}

		for _, p := range points {
			if !model.SameMonth(p.Date, date) {
				continue
			}

			result = append(result, &AnnotationDot{
				Month:   a.Month,
				Text:    a.Text,
				Caption: truncate.Truncate(a.Text, captionLength, "…", truncate.PositionEnd),
				Color:   a.Color,
				X:       x.Map(p.Date),
				Y:       y.Map(p.Value(key)),
				R:       c.cfg.Chart.AnnotationRadius,
			})
			break
		}
	}

	return result
}

// LineClass removes the first space and the first apostrophe of the key.
func LineClass(key string) string {
	k := strings.Replace(key, " ", "", 1)
	k = strings.Replace(k, "'", "", 1)
	return "line-" + k
}

func linePath(points []orb.Point) string {
	var sb strings.Builder
	for i, p := range points {
		if i == 0 {
			sb.WriteString("M")
		} else {
			sb.WriteString("L")
		}
		sb.WriteString(geo.FormatCoord(p[0]))
		sb.WriteString(",")
		sb.WriteString(geo.FormatCoord(p[1]))
	}
	return sb.String()
}

func xTicks(x *scales.Time) []Tick {
	var result []Tick
	for _, t := range x.YearTicks() {
		result = append(result, Tick{Pos: x.Map(t), Label: strconv.Itoa(t.Year())})
	}
	return result
}

func yTicks(y *scales.Linear) []Tick {
	var result []Tick
	for _, v := range y.Ticks(10) {
		result = append(result, Tick{Pos: y.Map(v), Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}
	return result
}

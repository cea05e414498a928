package render

import (
	"strconv"

	"github.com/samber/lo"

	"github.com/pescuma/trendmap/lib/config"
	"github.com/pescuma/trendmap/lib/geo"
	"github.com/pescuma/trendmap/lib/model"
	"github.com/pescuma/trendmap/lib/scales"
)

type MapFrame struct {
	Month  string
	Width  float64
	Height float64

	Nation  string
	Stroke  string
	Tooltip string
	Regions []*RegionShape
	Markers []*Marker
	Legend  *InterestLegend
}

type RegionShape struct {
	Name string
	Path string
	Fill string

	Value    float64
	HasValue bool

	// Bucket is the threshold scale bucket, or -1 without data.
	Bucket int

	Label     Label
	Connector *Connector
}

type Label struct {
	Text    string
	X, Y    float64
	Color   string
	Visible bool
}

type Connector struct {
	X1, Y1 float64
	X2, Y2 float64
}

type Marker struct {
	Artist string
	Info   string
	Color  string
	Glyph  string
	X, Y   float64
	Size   float64
}

type MapRenderer struct {
	cfg        *config.Config
	projection geo.Projection
	threshold  *scales.Threshold
	categories *scales.Ordinal
	glyphs     map[string]string
}

func NewMapRenderer(cfg *config.Config, projection geo.Projection) *MapRenderer {
	return &MapRenderer{
		cfg:        cfg,
		projection: projection,
		threshold:  NewThreshold(cfg),
		categories: NewCategoryScale(cfg),
		glyphs: lo.SliceToMap(cfg.Categories, func(c config.Category) (string, string) {
			return c.Name, c.Glyph
		}),
	}
}

// NewThreshold uses the configured colours, or the Greys ramp when there are none.
func NewThreshold(cfg *config.Config) *scales.Threshold {
	if len(cfg.Map.Colors) == 0 {
		return scales.NewGreysThreshold(cfg.Map.Thresholds)
	}

	return &scales.Threshold{
		Domain: cfg.Map.Thresholds,
		Range:  cfg.Map.Colors,
	}
}

func NewCategoryScale(cfg *config.Config) *scales.Ordinal {
	result := scales.NewOrdinal(cfg.Chart.FallbackColor)
	for _, c := range cfg.Categories {
		result.Set(c.Name, c.Color)
	}
	return result
}

// Render builds the whole map for a month. Every region gets exactly one fill
// and one label; markers only come from the month's events.
func (m *MapRenderer) Render(ds *model.Dataset, month string) *MapFrame {
	result := &MapFrame{
		Month:   month,
		Width:   m.cfg.Layout.MapWidth() + m.cfg.Layout.MapMargin.Left + m.cfg.Layout.MapMargin.Right,
		Height:  m.cfg.Layout.MapHeight() + m.cfg.Layout.MapMargin.Top + m.cfg.Layout.MapMargin.Bottom,
		Nation:  geo.PathData(ds.Nation),
		Stroke:  m.cfg.Map.StrokeColor,
		Tooltip: m.cfg.Map.TooltipColor,
		Legend:  m.renderLegend(),
	}

	for _, r := range ds.Regions.List() {
		v, ok := ds.Interest.Lookup(month, r.Name)
		result.Regions = append(result.Regions, m.renderRegion(r, v, ok))
	}

	result.Markers = m.renderMarkers(ds.Concerts.InMonth(month))

	return result
}

func (m *MapRenderer) renderRegion(r *model.Region, v float64, hasValue bool) *RegionShape {
	result := &RegionShape{
		Name:     r.Name,
		Path:     r.Path,
		Value:    v,
		HasValue: hasValue,
		Bucket:   -1,
		Fill:     m.cfg.Map.NoDataColor,
	}

	if hasValue {
		result.Bucket = m.threshold.Bucket(v)
		result.Fill = m.threshold.Range[result.Bucket]
	}

	result.Label = Label{
		Text:    LabelText(v, hasValue),
		X:       r.Centroid[0],
		Y:       r.Centroid[1],
		Color:   m.labelColor(r.Name, v, hasValue),
		Visible: r.HasCentroid && !lo.Contains(m.cfg.Map.HiddenLabels, r.Name),
	}

	if offset, ok := m.cfg.OffsetLabel(r.Name); ok && r.HasCentroid {
		result.Label.X += offset.LabelDx
		result.Connector = &Connector{
			X1: r.Centroid[0],
			Y1: r.Centroid[1],
			X2: r.Centroid[0] + offset.LineDx,
			Y2: r.Centroid[1],
		}
	}

	return result
}

// LabelText is "0" both for zero and for a missing value, while the fill
// still tells them apart.
func LabelText(v float64, hasValue bool) string {
	if !hasValue || v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// labelColor is dark below the midpoint. Missing values never compare as
// below it, so they get the light colour. Offset regions are always dark
// because their label sits outside the region, on the background.
func (m *MapRenderer) labelColor(region string, v float64, hasValue bool) string {
	if _, ok := m.cfg.OffsetLabel(region); ok {
		return m.cfg.Map.DarkText
	}
	if hasValue && v < m.cfg.Map.LabelMidpoint {
		return m.cfg.Map.DarkText
	}
	return m.cfg.Map.LightText
}

func (m *MapRenderer) renderMarkers(events []*model.ConcertEvent) []*Marker {
	result := make([]*Marker, 0, len(events))

	for _, e := range events {
		x, y, ok := m.projection.Project(e.Longitude, e.Latitude)
		if !ok {
			continue
		}

		result = append(result, &Marker{
			Artist: e.Artist,
			Info:   e.Info,
			Color:  m.categories.Color(e.Artist),
			Glyph:  m.glyphs[e.Artist],
			X:      x,
			Y:      y,
			Size:   m.cfg.Map.MarkerSize,
		})
	}

	return result
}

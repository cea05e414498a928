package config

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

type Config struct {
	Inputs     Inputs     `json:"inputs"`
	Layout     Layout     `json:"layout"`
	Projection Projection `json:"projection"`
	Map        Map        `json:"map"`
	Chart      Chart      `json:"chart"`
	Slider     Slider     `json:"slider"`
	Categories []Category `json:"categories"`
}

// Inputs are paths or http(s) URLs. Relative paths are resolved against the
// data dir.
type Inputs struct {
	DataDir string `json:"dataDir"`

	States       string `json:"states"`
	StatesObject string `json:"statesObject"`
	NameProperty string `json:"nameProperty"`
	Nation       string `json:"nation"`
	NationObject string `json:"nationObject"`
	Interest     string `json:"interest"`
	Concerts     string `json:"concerts"`
	Series       string `json:"series"`
}

type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

type Layout struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	MapMargin   Margins `json:"mapMargin"`
	ChartMargin Margins `json:"chartMargin"`
}

type Projection struct {
	Scale float64 `json:"scale"`
}

type OffsetLabel struct {
	Region  string  `json:"region"`
	LabelDx float64 `json:"labelDx"`
	LineDx  float64 `json:"lineDx"`
}

type Map struct {
	Thresholds    []float64     `json:"thresholds"`
	Colors        []string      `json:"colors"`
	NoDataColor   string        `json:"noDataColor"`
	StrokeColor   string        `json:"strokeColor"`
	TooltipColor  string        `json:"tooltipColor"`
	LabelMidpoint float64       `json:"labelMidpoint"`
	DarkText      string        `json:"darkText"`
	LightText     string        `json:"lightText"`
	HiddenLabels  []string      `json:"hiddenLabels"`
	OffsetLabels  []OffsetLabel `json:"offsetLabels"`
	MarkerSize    float64       `json:"markerSize"`
	LegendTitle   string        `json:"legendTitle"`
	LegendWidth   float64       `json:"legendWidth"`
}

type Annotation struct {
	Month string `json:"month"`
	Text  string `json:"text"`
	Color string `json:"color"`
}

type Chart struct {
	AggregateKey         string       `json:"aggregateKey"`
	AggregateStrokeWidth float64      `json:"aggregateStrokeWidth"`
	StrokeWidth          float64      `json:"strokeWidth"`
	Annotations          []Annotation `json:"annotations"`
	AnnotationRadius     float64      `json:"annotationRadius"`
	HiddenOpacity        float64      `json:"hiddenOpacity"`
	FallbackColor        string       `json:"fallbackColor"`
}

type Slider struct {
	Title string `json:"title"`
}

type Category struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Glyph string `json:"glyph,omitempty"`
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading config %v", path)
		}

		err = yaml.Unmarshal(data, cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "error parsing config %v", path)
		}
	}

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if !sort.Float64sAreSorted(c.Map.Thresholds) {
		return errors.New("map.thresholds must be ascending")
	}
	if len(c.Map.Colors) != 0 && len(c.Map.Colors) != len(c.Map.Thresholds)+1 {
		return errors.Errorf("map.colors must have %v entries, got %v", len(c.Map.Thresholds)+1, len(c.Map.Colors))
	}
	if c.Projection.Scale <= 0 {
		return errors.New("projection.scale must be positive")
	}

	for name, v := range map[string]string{
		"states":   c.Inputs.States,
		"nation":   c.Inputs.Nation,
		"interest": c.Inputs.Interest,
		"concerts": c.Inputs.Concerts,
		"series":   c.Inputs.Series,
	} {
		if v == "" {
			return errors.Errorf("inputs.%v is required", name)
		}
	}

	return nil
}

// Resolve returns the location of an input, joined to the data dir when it is
// a relative file path.
func (i *Inputs) Resolve(location string) string {
	if i.DataDir == "" || IsURL(location) || filepath.IsAbs(location) {
		return location
	}
	return filepath.Join(i.DataDir, location)
}

func (c *Config) OffsetLabel(region string) (OffsetLabel, bool) {
	for _, o := range c.Map.OffsetLabels {
		if o.Region == region {
			return o, true
		}
	}
	return OffsetLabel{}, false
}

// MapWidth and the other sizes follow the page split: map on the left half,
// chart on the right half.
func (l *Layout) MapWidth() float64 {
	return l.Width/2 + l.MapMargin.Left - l.MapMargin.Right
}

func (l *Layout) MapHeight() float64 {
	return l.Height - l.MapMargin.Top - l.MapMargin.Bottom
}

func (l *Layout) ChartWidth() float64 {
	return l.Width/2 - l.ChartMargin.Left - l.ChartMargin.Right
}

func (l *Layout) ChartHeight() float64 {
	return l.Height - l.ChartMargin.Top - 5*l.ChartMargin.Bottom
}

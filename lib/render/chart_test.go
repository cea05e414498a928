package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/trendmap/lib/config"
	"github.com/pescuma/trendmap/lib/model"
)

func renderChart(t *testing.T, selection func(keys []string) model.Selection, month string) *ChartFrame {
	cfg := config.Default()
	ds := newTestDataset(t, cfg)
	return NewChartRenderer(cfg).Render(ds, selection(ds.Series.Keys()), month)
}

func all(keys []string) model.Selection {
	return model.NewSelection(keys)
}

func without(hidden ...string) func(keys []string) model.Selection {
	return func(keys []string) model.Selection {
		return model.NewSelectionWithout(keys, hidden)
	}
}

func findLine(f *ChartFrame, key string) *LinePath {
	l, _ := lo.Find(f.Lines, func(l *LinePath) bool { return l.Key == key })
	return l
}

func TestChartFiltersByMonth(t *testing.T) {
	t.Parallel()

	f := renderChart(t, all, "12-Jul")

	require.Len(t, f.Lines, 3)
	for _, l := range f.Lines {
		assert.Len(t, l.Points, 2, l.Key)
	}
	assert.Equal(t, [2]float64{0, 40}, f.YDomain)
}

func TestChartGrowsWithMonth(t *testing.T) {
	t.Parallel()

	last := 0
	for _, m := range []string{"12-Jan", "12-Jun", "12-Jul", "12-Aug", "15-Jan", "18-Sep", "24-Feb"} {
		f := renderChart(t, all, m)

		n := len(findLine(f, "kpop").Points)
		assert.GreaterOrEqual(t, n, last, m)
		last = n
	}
	assert.Equal(t, 4, last)
}

func TestChartKeepsFullXDomain(t *testing.T) {
	t.Parallel()

	early := renderChart(t, all, "12-Jun")
	late := renderChart(t, all, "18-Sep")

	assert.Equal(t, early.XDomain, late.XDomain)
	assert.Equal(t, month(t, "12-Jun"), early.XDomain[0])
	assert.Equal(t, month(t, "18-Sep"), early.XDomain[1])
}

func TestChartWithUnparseableMonthDrawsEverything(t *testing.T) {
	t.Parallel()

	f := renderChart(t, all, "someday")

	assert.Len(t, findLine(f, "kpop").Points, 4)
}

func TestChartYDomainOnlyCoversSelected(t *testing.T) {
	t.Parallel()

	f := renderChart(t, without("kpop"), "18-Sep")

	assert.Equal(t, [2]float64{0, 60}, f.YDomain)
	assert.Nil(t, findLine(f, "kpop"))
	require.Len(t, f.Lines, 2)
}

func TestChartStrokeWidths(t *testing.T) {
	t.Parallel()

	f := renderChart(t, all, "18-Sep")

	assert.Equal(t, 5.0, findLine(f, "kpop").Width)
	assert.Equal(t, 2.0, findLine(f, "BTS").Width)
	assert.Equal(t, "#cab2d6", findLine(f, "BTS").Color)
	assert.Equal(t, "line-kpop", findLine(f, "kpop").Class)
}

func TestChartAnnotations(t *testing.T) {
	t.Parallel()

	f := renderChart(t, all, "12-Jul")
	require.Len(t, f.Annotations, 1)
	assert.Equal(t, "12-Jul", f.Annotations[0].Month)
	assert.Equal(t, "red", f.Annotations[0].Color)
	assert.Equal(t, 5.0, f.Annotations[0].R)
	assert.Equal(t, findLine(f, "kpop").Points[1][0], f.Annotations[0].X)
	assert.Equal(t, findLine(f, "kpop").Points[1][1], f.Annotations[0].Y)
	assert.True(t, strings.HasSuffix(f.Annotations[0].Caption, "…"))
	assert.Less(t, len(f.Annotations[0].Caption), len(f.Annotations[0].Text))

	f = renderChart(t, all, "18-Sep")
	assert.Len(t, f.Annotations, 2)

	f = renderChart(t, all, "12-Jun")
	assert.Empty(t, f.Annotations)
}

func TestChartAnnotationsFollowAggregate(t *testing.T) {
	t.Parallel()

	f := renderChart(t, without("kpop"), "18-Sep")

	assert.Empty(t, f.Annotations)
}

func TestChartWithNothingSelected(t *testing.T) {
	t.Parallel()

	f := renderChart(t, without("kpop", "BTS", "PSY"), "18-Sep")

	assert.Empty(t, f.Lines)
	assert.Empty(t, f.Annotations)
	assert.Equal(t, [2]float64{0, 0}, f.YDomain)
	require.Len(t, f.Legend, 3)
	for _, e := range f.Legend {
		assert.False(t, e.Selected, e.Key)
	}

	var out bytes.Buffer
	err := WriteChartSVG(&out, f)
	require.Nil(t, err)
	assert.NotContains(t, out.String(), `class="line `)
	assert.Equal(t, 3, strings.Count(out.String(), `class="legend"`))
}

func TestChartLegend(t *testing.T) {
	t.Parallel()

	f := renderChart(t, without("BTS"), "18-Sep")

	require.Len(t, f.Legend, 3)
	assert.Equal(t, []string{"kpop", "BTS", "PSY"}, lo.Map(f.Legend, func(e *LegendEntry, _ int) string { return e.Key }))
	assert.Equal(t, 1.0, f.Legend[0].Opacity)
	assert.True(t, f.Legend[0].Selected)
	assert.Equal(t, 0.3, f.Legend[1].Opacity)
	assert.False(t, f.Legend[1].Selected)
	assert.Equal(t, 40.0, f.Legend[2].Y)
}

func TestChartToggleTwiceIsTheSame(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	ds := newTestDataset(t, cfg)
	r := NewChartRenderer(cfg)

	s := model.NewSelection(ds.Series.Keys())

	assert.Equal(t, r.Render(ds, s, "18-Sep"), r.Render(ds, s.Toggle("PSY").Toggle("PSY"), "18-Sep"))
}

func TestLineClass(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "line-kpop", LineClass("kpop"))
	assert.Equal(t, "line-StrayKids", LineClass("Stray Kids"))
	assert.Equal(t, "line-GirlsGeneration", LineClass("Girls' Generation"))
	assert.Equal(t, "line-TOMORROWX TOGETHER", LineClass("TOMORROW X TOGETHER"))
}

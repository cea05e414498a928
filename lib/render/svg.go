package render

import (
	"bufio"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/teris-io/shortid"

	"github.com/pescuma/trendmap/lib/geo"
)

func fmtNum(v float64) string {
	return geo.FormatCoord(v)
}

// px rounds to whole pixels. Paths keep their decimals.
func px(v float64) int {
	return int(math.Round(v))
}

func attr(name string, value any) string {
	return fmt.Sprintf(`%v="%v"`, name, value)
}

// newCanvas gives each document its own id prefix, so several documents can
// be inlined in the same page without clashing ids.
func newCanvas(w io.Writer, width, height float64) (*svg.SVG, *bufio.Writer, string) {
	buf := bufio.NewWriter(w)
	canvas := svg.New(buf)
	canvas.Start(px(width), px(height))
	return canvas, buf, shortid.MustGenerate()
}

func finish(canvas *svg.SVG, buf *bufio.Writer) error {
	canvas.End()
	return buf.Flush()
}

// WriteMapSVG writes regions, labels, connector lines, concert markers and
// the interest legend, in that order.
func WriteMapSVG(w io.Writer, f *MapFrame) error {
	canvas, buf, id := newCanvas(w, f.Width, f.Height)

	noteID := "note-" + id
	canvas.Def()
	canvas.Gid(noteID)
	canvas.Path("M9,2L21,0L21,16A4,4 0 1 1 19,12.5L19,4.5L11,6L11,19A4,4 0 1 1 9,15.5Z")
	canvas.Gend()
	canvas.DefEnd()

	if f.Nation != "" {
		canvas.Path(f.Nation, `class="nation"`, `fill="none"`, attr("stroke", f.Stroke))
	}

	canvas.Group(`class="states"`)
	for _, r := range f.Regions {
		canvas.Group(`class="state"`, attr("data-name", xmlEscape(r.Name)),
			attr("data-info", xmlEscape(r.Name)), attr("data-color", f.Tooltip))
		canvas.Title(r.Name)
		canvas.Path(r.Path, attr("fill", r.Fill), attr("stroke", f.Stroke))
		canvas.Gend()
	}
	canvas.Gend()

	canvas.Group(`class="state-labels"`, `text-anchor="middle"`, `alignment-baseline="middle"`, `font-size="15px"`)
	for _, r := range f.Regions {
		if !r.Label.Visible {
			continue
		}
		canvas.Text(px(r.Label.X), px(r.Label.Y), r.Label.Text, `class="state-label"`, attr("fill", r.Label.Color))
	}
	canvas.Gend()

	canvas.Group(`class="lines"`, `stroke="black"`, `stroke-width="1"`)
	for _, r := range f.Regions {
		if r.Connector == nil {
			continue
		}
		c := r.Connector
		canvas.Line(px(c.X1), px(c.Y1), px(c.X2), px(c.Y2), `class="line"`)
	}
	canvas.Gend()

	canvas.Group(`class="concerts"`)
	for _, m := range f.Markers {
		canvas.Group(`class="concert"`, attr("data-info", xmlEscape(m.Info)), attr("data-color", m.Color))
		canvas.Title(m.Info)
		if m.Glyph != "" {
			canvas.Image(px(m.X), px(m.Y), px(m.Size), px(m.Size), m.Glyph)
		} else {
			canvas.Gtransform(fmt.Sprintf("translate(%v,%v) scale(%v)", fmtNum(m.X), fmtNum(m.Y), fmtNum(m.Size/25)))
			canvas.Use(0, 0, "#"+noteID, attr("fill", m.Color), `stroke="black"`, `stroke-width="0.5"`)
			canvas.Gend()
		}
		canvas.Gend()
	}
	canvas.Gend()

	if f.Legend != nil {
		writeInterestLegend(canvas, f.Legend)
	}

	return finish(canvas, buf)
}

func writeInterestLegend(canvas *svg.SVG, l *InterestLegend) {
	canvas.Gtransform(fmt.Sprintf("translate(%v,%v)", fmtNum(l.X), fmtNum(l.Y)))
	canvas.Group(`id="legend"`)

	for _, b := range l.Boxes {
		canvas.Rect(px(b.X), 0, px(b.Width), px(l.Height), attr("fill", b.Color), `stroke="#525252"`, `stroke-width="0.5"`)
		canvas.Text(px(b.X+b.Width/2), px(l.Height+18), b.Label, `text-anchor="middle"`, `font-size="16px"`)
	}

	width := 0.0
	if n := len(l.Boxes); n > 0 {
		width = l.Boxes[n-1].X + l.Boxes[n-1].Width
	}
	canvas.Text(px(width/2), px(l.Height+40), l.Title, `text-anchor="middle"`, `font-size="18px"`, `fill="black"`)

	canvas.Gend()
	canvas.Gend()
}

// WriteChartSVG writes axes, lines, annotation dots and the category legend.
func WriteChartSVG(w io.Writer, f *ChartFrame) error {
	canvas, buf, _ := newCanvas(w, f.Width+f.Margin.Left+f.Margin.Right, f.Height+f.Margin.Top+f.Margin.Bottom*2)

	canvas.Gtransform(fmt.Sprintf("translate(%v,%v)", fmtNum(f.Margin.Left), fmtNum(f.Margin.Top)))

	canvas.Group(`class="x-axis"`, `font-size="10"`, `text-anchor="middle"`)
	h := px(f.Height)
	canvas.Line(0, h, px(f.Width), h, `stroke="currentColor"`)
	for _, t := range f.XTicks {
		canvas.Line(px(t.Pos), h, px(t.Pos), h+6, `stroke="currentColor"`)
		canvas.Text(px(t.Pos), h+18, t.Label)
	}
	canvas.Gend()

	canvas.Group(`class="y-axis"`, `font-size="10"`, `text-anchor="end"`)
	canvas.Line(0, 0, 0, h, `stroke="currentColor"`)
	for _, t := range f.YTicks {
		canvas.Line(-6, px(t.Pos), 0, px(t.Pos), `stroke="currentColor"`)
		canvas.Text(-9, px(t.Pos)+3, t.Label)
	}
	canvas.Gend()

	for _, l := range f.Lines {
		canvas.Path(l.Path, attr("class", "line "+xmlEscape(l.Class)), `fill="none"`,
			attr("stroke", l.Color), attr("stroke-width", fmtNum(l.Width)), attr("data-key", xmlEscape(l.Key)))
	}

	for _, a := range f.Annotations {
		canvas.Group(`class="dot"`, attr("data-info", xmlEscape(a.Text)), attr("data-color", a.Color))
		canvas.Title(a.Caption)
		canvas.Circle(px(a.X), px(a.Y), px(a.R), attr("fill", a.Color))
		canvas.Gend()
	}

	for _, e := range f.Legend {
		canvas.Gtransform(fmt.Sprintf("translate(0,%v)", fmtNum(e.Y)))
		canvas.Group(`class="legend"`, attr("data-key", xmlEscape(e.Key)), attr("opacity", fmtNum(e.Opacity)))
		canvas.Rect(px(f.Width)-18, 0, 18, 18, attr("fill", e.Color))
		canvas.Text(px(f.Width)-24, 9, e.Key, `dy=".35em"`, `text-anchor="end"`)
		canvas.Gend()
		canvas.Gend()
	}

	canvas.Gend()

	return finish(canvas, buf)
}

// WriteSliderSVG writes the slider track, its month ticks, the handle, the
// current month label and the persistent title.
func WriteSliderSVG(w io.Writer, f *SliderFrame) error {
	canvas, buf, _ := newCanvas(w, f.Width, f.Height)

	canvas.Gtransform(fmt.Sprintf("translate(%v,10)", fmtNum(f.Width/16)))

	canvas.Line(px(f.TrackStart), 0, px(f.TrackEnd), 0, `class="track"`, `stroke="#bbb"`, `stroke-width="8"`, `stroke-linecap="round"`)
	canvas.Group(`class="ticks"`, `stroke="#777"`)
	for _, t := range f.Ticks {
		canvas.Line(px(t), 6, px(t), 10)
	}
	canvas.Gend()

	canvas.Circle(px(f.Handle), 0, 8, `class="handle"`, `fill="white"`, `stroke="#777"`)
	canvas.Text(px(f.Handle), 40, f.Label, `class="month"`, `text-anchor="middle"`, `font-size="18px"`)
	canvas.Text(px(f.TitleX), 65, f.Title, `class="title"`, `font-size="18px"`, `fill="black"`)

	canvas.Gend()

	return finish(canvas, buf)
}

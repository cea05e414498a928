package scales

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// The 9-class sequential Greys scheme, light to dark.
var greysScheme = []string{
	"#ffffff", "#f0f0f0", "#d9d9d9", "#bdbdbd", "#969696",
	"#737373", "#525252", "#252525", "#000000",
}

// Ramp maps t in [0, 1] to a colour.
type Ramp func(t float64) colorful.Color

// Greys interpolates the Greys scheme with a uniform B-spline per RGB channel,
// so t = 0 is white and t = 1 is black.
func Greys() Ramp {
	return BasisRamp(mustParseColors(greysScheme))
}

// BasisRamp returns a ramp through the given colours using a uniform
// nonrational B-spline per channel.
func BasisRamp(colors []colorful.Color) Ramp {
	r := make([]float64, len(colors))
	g := make([]float64, len(colors))
	b := make([]float64, len(colors))
	for i, c := range colors {
		r[i], g[i], b[i] = c.R, c.G, c.B
	}

	return func(t float64) colorful.Color {
		return colorful.Color{
			R: basisSpline(r, t),
			G: basisSpline(g, t),
			B: basisSpline(b, t),
		}.Clamped()
	}
}

func basisSpline(values []float64, t float64) float64 {
	n := len(values) - 1

	var i int
	switch {
	case t <= 0:
		t = 0
		i = 0
	case t >= 1:
		t = 1
		i = n - 1
	default:
		i = int(math.Floor(t * float64(n)))
	}

	v1 := values[i]
	v2 := values[i+1]
	v0 := 2*v1 - v2
	if i > 0 {
		v0 = values[i-1]
	}
	v3 := 2*v2 - v1
	if i < n-1 {
		v3 = values[i+2]
	}

	return basis((t-float64(i)/float64(n))*float64(n), v0, v1, v2, v3)
}

func basis(t1, v0, v1, v2, v3 float64) float64 {
	t2 := t1 * t1
	t3 := t2 * t1
	return ((1-3*t1+3*t2-t3)*v0 +
		(4-6*t2+3*t3)*v1 +
		(1+3*t1+3*t2-3*t3)*v2 +
		t3*v3) / 6
}

// Quantize samples n evenly spaced colours from the ramp, as hex strings.
func Quantize(ramp Ramp, n int) []string {
	if n == 1 {
		return []string{Hex(ramp(0))}
	}

	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = Hex(ramp(float64(i) / float64(n-1)))
	}
	return result
}

// Hex rounds each channel to 8 bits.
func Hex(c colorful.Color) string {
	return c.Clamped().Hex()
}

func mustParseColors(hexes []string) []colorful.Color {
	result := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(err)
		}
		result[i] = c
	}
	return result
}

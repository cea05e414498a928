package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const radians = math.Pi / 180

// Projection maps (longitude, latitude) in degrees to screen coordinates.
// ok is false when the point falls outside the projection.
type Projection interface {
	Project(lon, lat float64) (x, y float64, ok bool)
}

// ConicEqualArea is an Albers equal-area conic projection. It follows the
// usual rotate / center / scale / translate setup: the center is given in
// rotated coordinates and ends up at the translate point.
type ConicEqualArea struct {
	n, c, r0 float64

	rotate float64
	k      float64
	tx, ty float64
	cx, cy float64
	clip   *orb.Bound
}

func NewConicEqualArea(parallel0, parallel1, rotate, centerLon, centerLat, scale, tx, ty float64) *ConicEqualArea {
	sy0 := math.Sin(parallel0 * radians)
	n := (sy0 + math.Sin(parallel1*radians)) / 2
	c := 1 + sy0*(2*n-sy0)

	p := &ConicEqualArea{
		n:      n,
		c:      c,
		r0:     math.Sqrt(c) / n,
		rotate: rotate * radians,
		k:      scale,
		tx:     tx,
		ty:     ty,
	}
	p.cx, p.cy = p.raw(centerLon*radians, centerLat*radians)
	return p
}

// WithClip restricts the projection to points landing inside b.
func (p *ConicEqualArea) WithClip(b orb.Bound) *ConicEqualArea {
	p.clip = &b
	return p
}

func (p *ConicEqualArea) raw(lambda, phi float64) (float64, float64) {
	r := math.Sqrt(p.c-2*p.n*math.Sin(phi)) / p.n
	return r * math.Sin(lambda*p.n), p.r0 - r*math.Cos(lambda*p.n)
}

func (p *ConicEqualArea) Project(lon, lat float64) (float64, float64, bool) {
	lambda := wrapLongitude(lon*radians + p.rotate)
	rx, ry := p.raw(lambda, lat*radians)

	x := p.tx + p.k*(rx-p.cx)
	y := p.ty - p.k*(ry-p.cy)

	if math.IsNaN(x) || math.IsNaN(y) {
		return 0, 0, false
	}
	if p.clip != nil && !p.clip.Contains(orb.Point{x, y}) {
		return x, y, false
	}
	return x, y, true
}

func wrapLongitude(lambda float64) float64 {
	if lambda > math.Pi {
		return lambda - 2*math.Pi
	}
	if lambda < -math.Pi {
		return lambda + 2*math.Pi
	}
	return lambda
}

// AlbersUSA is the composite projection of the lower 48 states, Alaska and
// Hawaii. Alaska is drawn at 0.35 of the scale, below the lower 48 on the left,
// and Hawaii next to it.
type AlbersUSA struct {
	lower48 *ConicEqualArea
	alaska  *ConicEqualArea
	hawaii  *ConicEqualArea
}

func NewAlbersUSA(scale, tx, ty float64) *AlbersUSA {
	k := scale

	lower48 := NewConicEqualArea(29.5, 45.5, 96, -0.6, 38.7, k, tx, ty).
		WithClip(orb.Bound{Min: orb.Point{tx - 0.455*k, ty - 0.238*k}, Max: orb.Point{tx + 0.455*k, ty + 0.238*k}})
	alaska := NewConicEqualArea(55, 65, 154, -2, 58.5, k*0.35, tx-0.307*k, ty+0.201*k).
		WithClip(orb.Bound{Min: orb.Point{tx - 0.425*k, ty + 0.120*k}, Max: orb.Point{tx - 0.214*k, ty + 0.234*k}})
	hawaii := NewConicEqualArea(8, 18, 157, -3, 19.9, k, tx-0.205*k, ty+0.212*k).
		WithClip(orb.Bound{Min: orb.Point{tx - 0.214*k, ty + 0.166*k}, Max: orb.Point{tx - 0.115*k, ty + 0.234*k}})

	return &AlbersUSA{
		lower48: lower48,
		alaska:  alaska,
		hawaii:  hawaii,
	}
}

// Project tries the lower 48, then Alaska, then Hawaii.
func (p *AlbersUSA) Project(lon, lat float64) (float64, float64, bool) {
	part := p.partFor(lon, lat)
	if part == nil {
		return 0, 0, false
	}
	return part.Project(lon, lat)
}

func (p *AlbersUSA) partFor(lon, lat float64) *ConicEqualArea {
	for _, part := range []*ConicEqualArea{p.lower48, p.alaska, p.hawaii} {
		if _, _, ok := part.Project(lon, lat); ok {
			return part
		}
	}
	return nil
}

// ProjectPolygon projects every ring of poly with a single sub-projection,
// chosen by the first vertex that any of them accepts. Vertices outside that
// sub-projection's clip are kept, so polygons are never torn apart.
func (p *AlbersUSA) ProjectPolygon(poly orb.Polygon) (orb.Polygon, bool) {
	var part *ConicEqualArea
	for _, ring := range poly {
		for _, pt := range ring {
			part = p.partFor(pt[0], pt[1])
			if part != nil {
				break
			}
		}
		if part != nil {
			break
		}
	}
	if part == nil {
		return nil, false
	}

	return projectPolygonWith(part, poly), true
}

func projectPolygonWith(p *ConicEqualArea, poly orb.Polygon) orb.Polygon {
	result := make(orb.Polygon, 0, len(poly))
	for _, ring := range poly {
		pr := make(orb.Ring, 0, len(ring))
		for _, pt := range ring {
			x, y, _ := p.Project(pt[0], pt[1])
			pr = append(pr, orb.Point{x, y})
		}
		result = append(result, pr)
	}
	return result
}

// PolygonProjection is implemented by projections that can keep polygons whole.
type PolygonProjection interface {
	Projection
	ProjectPolygon(poly orb.Polygon) (orb.Polygon, bool)
}

// ProjectMultiPolygon projects each polygon, dropping the ones outside the projection.
func ProjectMultiPolygon(p PolygonProjection, mp orb.MultiPolygon) orb.MultiPolygon {
	result := make(orb.MultiPolygon, 0, len(mp))
	for _, poly := range mp {
		if pp, ok := p.ProjectPolygon(poly); ok {
			result = append(result, pp)
		}
	}
	return result
}

package geo

import (
	"encoding/json"
	"sort"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

type topology struct {
	Type      string                   `json:"type"`
	Transform *topoTransform           `json:"transform"`
	Arcs      [][][]float64            `json:"arcs"`
	Objects   map[string]*topoGeometry `json:"objects"`
}

type topoTransform struct {
	Scale     [2]float64 `json:"scale"`
	Translate [2]float64 `json:"translate"`
}

type topoGeometry struct {
	Type       string          `json:"type"`
	ID         any             `json:"id"`
	Properties map[string]any  `json:"properties"`
	Arcs       json.RawMessage `json:"arcs"`
	Geometries []*topoGeometry `json:"geometries"`
}

// decodeTopology turns the polygons of a TopoJSON object into features. An
// empty object name takes every object, in name order.
func decodeTopology(data []byte, object string) ([]*Feature, error) {
	var topo topology
	err := json.Unmarshal(data, &topo)
	if err != nil {
		return nil, errors.Wrap(err, "invalid topojson")
	}

	arcs := topo.decodeArcs()

	var names []string
	if object != "" {
		if _, ok := topo.Objects[object]; !ok {
			return nil, errors.Errorf("topojson has no object named %q", object)
		}
		names = []string{object}
	} else {
		for name := range topo.Objects {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	var result []*Feature
	for _, name := range names {
		fs, err := topoFeatures(arcs, topo.Objects[name])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid topojson object %v", name)
		}
		result = append(result, fs...)
	}

	return result, nil
}

// decodeArcs applies the quantization transform, undoing the delta encoding.
func (t *topology) decodeArcs() [][]orb.Point {
	result := make([][]orb.Point, len(t.Arcs))

	for i, arc := range t.Arcs {
		points := make([]orb.Point, 0, len(arc))

		var x, y float64
		for _, p := range arc {
			if len(p) < 2 {
				continue
			}

			if t.Transform == nil {
				points = append(points, orb.Point{p[0], p[1]})
				continue
			}

			x += p[0]
			y += p[1]
			points = append(points, orb.Point{
				x*t.Transform.Scale[0] + t.Transform.Translate[0],
				y*t.Transform.Scale[1] + t.Transform.Translate[1],
			})
		}

		result[i] = points
	}

	return result
}

func topoFeatures(arcs [][]orb.Point, g *topoGeometry) ([]*Feature, error) {
	if g == nil {
		return nil, nil
	}

	switch g.Type {
	case "GeometryCollection":
		var result []*Feature
		for _, child := range g.Geometries {
			fs, err := topoFeatures(arcs, child)
			if err != nil {
				return nil, err
			}
			result = append(result, fs...)
		}
		return result, nil

	case "Polygon":
		var rings [][]int
		err := json.Unmarshal(g.Arcs, &rings)
		if err != nil {
			return nil, err
		}

		poly, err := stitchPolygon(arcs, rings)
		if err != nil {
			return nil, err
		}

		return []*Feature{{Properties: g.Properties, Shape: orb.MultiPolygon{poly}}}, nil

	case "MultiPolygon":
		var polys [][][]int
		err := json.Unmarshal(g.Arcs, &polys)
		if err != nil {
			return nil, err
		}

		mp := make(orb.MultiPolygon, 0, len(polys))
		for _, rings := range polys {
			poly, err := stitchPolygon(arcs, rings)
			if err != nil {
				return nil, err
			}
			mp = append(mp, poly)
		}

		return []*Feature{{Properties: g.Properties, Shape: mp}}, nil

	default:
		// Points and lines have no area to fill.
		return nil, nil
	}
}

func stitchPolygon(arcs [][]orb.Point, rings [][]int) (orb.Polygon, error) {
	poly := make(orb.Polygon, 0, len(rings))
	for _, ring := range rings {
		r, err := stitchRing(arcs, ring)
		if err != nil {
			return nil, err
		}
		poly = append(poly, r)
	}
	return poly, nil
}

// stitchRing joins arcs end to end. A negative index ~i means arc i reversed.
// Consecutive arcs share their joining point, so it is only kept once.
func stitchRing(arcs [][]orb.Point, indexes []int) (orb.Ring, error) {
	var result orb.Ring

	for _, idx := range indexes {
		reversed := idx < 0
		if reversed {
			idx = ^idx
		}
		if idx >= len(arcs) {
			return nil, errors.Errorf("arc index %v out of range", idx)
		}

		arc := arcs[idx]
		points := make([]orb.Point, len(arc))
		copy(points, arc)
		if reversed {
			for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
				points[i], points[j] = points[j], points[i]
			}
		}

		if len(result) > 0 && len(points) > 0 {
			points = points[1:]
		}
		result = append(result, points...)
	}

	return result, nil
}

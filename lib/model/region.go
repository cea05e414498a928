package model

import (
	"github.com/paulmach/orb"
)

// Region is a named area already projected into screen coordinates.
type Region struct {
	Name string

	// Shape is the projected boundary, in screen space.
	Shape orb.MultiPolygon

	// Path is Shape as SVG path data.
	Path string

	Centroid orb.Point

	// Centroid is meaningless when the region has no area on screen.
	HasCentroid bool
}

type Regions struct {
	list   []*Region
	byName map[string]*Region
}

func NewRegions() *Regions {
	return &Regions{
		byName: make(map[string]*Region),
	}
}

// Add returns false if a region with the same name already exists.
func (rs *Regions) Add(r *Region) bool {
	if _, ok := rs.byName[r.Name]; ok {
		return false
	}

	rs.list = append(rs.list, r)
	rs.byName[r.Name] = r
	return true
}

func (rs *Regions) Get(name string) (*Region, bool) {
	r, ok := rs.byName[name]
	return r, ok
}

// List returns the regions in geometry file order.
func (rs *Regions) List() []*Region {
	return rs.list
}

func (rs *Regions) Len() int {
	return len(rs.list)
}

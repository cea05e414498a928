package model

import (
	"github.com/paulmach/orb"
)

// Dataset holds everything loaded at startup. Nothing in it changes after load.
type Dataset struct {
	Regions  *Regions
	Nation   orb.MultiPolygon
	Interest *InterestIndex
	Concerts *Concerts
	Series   *TimeSeries
}

// Months returns the slider months, in interest file order.
func (d *Dataset) Months() []string {
	return d.Interest.Months()
}

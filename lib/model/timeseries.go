package model

import (
	"time"
)

type TimeSeriesPoint struct {
	Date   time.Time
	Values map[string]float64
}

// Value returns 0 for keys without a value in this point.
func (p *TimeSeriesPoint) Value(key string) float64 {
	return p.Values[key]
}

// TimeSeries is ordered as in the source file. The order is assumed to be
// chronological but it is not checked.
type TimeSeries struct {
	keys   []string
	points []*TimeSeriesPoint
}

func NewTimeSeries(keys []string, points []*TimeSeriesPoint) *TimeSeries {
	return &TimeSeries{
		keys:   keys,
		points: points,
	}
}

// Keys returns the category keys in column order.
func (ts *TimeSeries) Keys() []string {
	return ts.keys
}

func (ts *TimeSeries) Points() []*TimeSeriesPoint {
	return ts.points
}

// Until returns the points dated at or before date.
func (ts *TimeSeries) Until(date time.Time) []*TimeSeriesPoint {
	var result []*TimeSeriesPoint
	for _, p := range ts.points {
		if !p.Date.After(date) {
			result = append(result, p)
		}
	}
	return result
}

// Extent returns the smallest and largest dates.
func (ts *TimeSeries) Extent() (time.Time, time.Time, bool) {
	if len(ts.points) == 0 {
		return time.Time{}, time.Time{}, false
	}

	min, max := ts.points[0].Date, ts.points[0].Date
	for _, p := range ts.points[1:] {
		if p.Date.Before(min) {
			min = p.Date
		}
		if p.Date.After(max) {
			max = p.Date
		}
	}
	return min, max, true
}

// MaxValue returns the largest value across keys and points, or 0.
func MaxValue(points []*TimeSeriesPoint, keys []string) float64 {
	result := 0.0
	for _, p := range points {
		for _, k := range keys {
			if v := p.Value(k); v > result {
				result = v
			}
		}
	}
	return result
}

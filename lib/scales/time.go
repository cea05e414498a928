package scales

import (
	"time"
)

// Time maps dates linearly onto [From, To].
type Time struct {
	lin      *Linear
	min, max time.Time
}

func NewTime(min, max time.Time, from, to float64) *Time {
	return &Time{
		lin: NewLinear(float64(min.Unix()), float64(max.Unix()), from, to),
		min: min,
		max: max,
	}
}

func (s *Time) Map(t time.Time) float64 {
	return s.lin.Map(float64(t.Unix()))
}

func (s *Time) Domain() (time.Time, time.Time) {
	return s.min, s.max
}

// YearTicks returns the first day of every year inside the domain.
func (s *Time) YearTicks() []time.Time {
	var result []time.Time

	y := time.Date(s.min.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	if y.Before(s.min) {
		y = y.AddDate(1, 0, 0)
	}
	for ; !y.After(s.max); y = y.AddDate(1, 0, 0) {
		result = append(result, y)
	}

	return result
}

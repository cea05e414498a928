package view

import (
	"github.com/pkg/errors"

	"github.com/pescuma/trendmap/lib/model"
)

// State is everything the user can change: the slider month and the chart
// selection. Transitions return new values.
type State struct {
	// MonthIndex is 1 based, as the slider positions are.
	MonthIndex int
	Selection  model.Selection
}

// NewState starts at the first month with every category selected.
func NewState(ds *model.Dataset) State {
	return State{
		MonthIndex: 1,
		Selection:  model.NewSelection(ds.Series.Keys()),
	}
}

// Month returns the month key for the state, or "" when there are no months.
func (s State) Month(ds *model.Dataset) string {
	months := ds.Months()
	if s.MonthIndex < 1 || s.MonthIndex > len(months) {
		return ""
	}
	return months[s.MonthIndex-1]
}

// WithMonth returns a state at the given month key.
func (s State) WithMonth(ds *model.Dataset, month string) (State, error) {
	for i, m := range ds.Months() {
		if m == month {
			s.MonthIndex = i + 1
			return s, nil
		}
	}
	return s, errors.Wrapf(ErrUnknownMonth, "%q", month)
}

// Slide moves to the month nearest to pos.
func (s State) Slide(ds *model.Dataset, pos float64) State {
	s.MonthIndex = NewSlider(ds.Months(), 0).Resolve(pos)
	return s
}

// Toggle flips key in the chart selection. The month is kept.
func (s State) Toggle(key string) State {
	s.Selection = s.Selection.Toggle(key)
	return s
}

func (s State) Equal(o State) bool {
	return s.MonthIndex == o.MonthIndex && s.Selection.Equal(o.Selection)
}

var (
	ErrUnknownMonth = errors.New("unknown month")
	ErrInvalidMonth = errors.New("invalid month index")
)

package view

import (
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/pescuma/trendmap/lib/model"
)

// Params is a State as it travels in query strings. Month is the 1 based
// slider index, 0 meaning the first month.
type Params struct {
	Month  int      `form:"month" json:"month"`
	Hidden []string `form:"hidden" json:"hidden"`
}

func (p Params) Values() url.Values {
	result := url.Values{}
	result.Set("month", strconv.Itoa(p.Month))
	for _, h := range p.Hidden {
		result.Add("hidden", h)
	}
	return result
}

// Decode turns params into a State. Unknown hidden keys are ignored.
func Decode(ds *model.Dataset, p Params) (State, error) {
	result := NewState(ds)

	if p.Month < 0 {
		return result, errors.Wrapf(ErrInvalidMonth, "index %v", p.Month)
	}
	if p.Month > len(ds.Months()) {
		return result, errors.Wrapf(ErrUnknownMonth, "index %v", p.Month)
	}
	if p.Month > 0 {
		result.MonthIndex = p.Month
	}

	result.Selection = model.NewSelectionWithout(ds.Series.Keys(), p.Hidden)

	return result, nil
}

func Encode(s State) Params {
	return Params{
		Month:  s.MonthIndex,
		Hidden: s.Selection.NotSelected(),
	}
}

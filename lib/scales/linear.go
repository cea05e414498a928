package scales

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// Linear maps [Min, Max] onto [From, To]. From may be larger than To, as for
// vertical axes growing upwards.
type Linear struct {
	s        scale.Linear
	From, To float64
}

func NewLinear(min, max, from, to float64) *Linear {
	return &Linear{
		s:    scale.Linear{Min: min, Max: max},
		From: from,
		To:   to,
	}
}

func NewClampedLinear(min, max, from, to float64) *Linear {
	result := NewLinear(min, max, from, to)
	result.s.Clamp = true
	return result
}

func (l *Linear) Domain() (float64, float64) {
	return l.s.Min, l.s.Max
}

// Map sends degenerate domains to From.
func (l *Linear) Map(v float64) float64 {
	if l.s.Max == l.s.Min {
		return l.From
	}
	return l.From + l.s.Map(v)*(l.To-l.From)
}

// Invert maps a range value back into the domain.
func (l *Linear) Invert(y float64) float64 {
	if l.To == l.From {
		return l.s.Min
	}
	t := (y - l.From) / (l.To - l.From)
	if l.s.Clamp {
		t = math.Max(0, math.Min(1, t))
	}
	return l.s.Min + t*(l.s.Max-l.s.Min)
}

// Ticks returns at most max nicely rounded ticks inside the domain.
func (l *Linear) Ticks(max int) []float64 {
	if l.s.Max <= l.s.Min {
		return []float64{l.s.Min}
	}

	major, _ := l.s.Ticks(scale.TickOptions{Max: max})
	return major
}

package scales

import (
	"sort"
)

// Threshold maps a value to one of len(Domain)+1 colours. Values below
// Domain[0] get Range[0]; values in [Domain[i], Domain[i+1]) get Range[i+1].
type Threshold struct {
	Domain []float64
	Range  []string
}

// NewGreysThreshold uses len(domain)+1 colours quantized from the Greys ramp.
func NewGreysThreshold(domain []float64) *Threshold {
	return &Threshold{
		Domain: domain,
		Range:  Quantize(Greys(), len(domain)+1),
	}
}

// Bucket returns the index into Range for v.
func (s *Threshold) Bucket(v float64) int {
	return sort.Search(len(s.Domain), func(i int) bool { return s.Domain[i] > v })
}

func (s *Threshold) Color(v float64) string {
	return s.Range[s.Bucket(v)]
}

package scales

// Ordinal maps known names to fixed colours, with a fallback for the rest.
type Ordinal struct {
	colors   map[string]string
	fallback string
}

func NewOrdinal(fallback string) *Ordinal {
	return &Ordinal{
		colors:   make(map[string]string),
		fallback: fallback,
	}
}

func (s *Ordinal) Set(name, color string) {
	s.colors[name] = color
}

func (s *Ordinal) Color(name string) string {
	if c, ok := s.colors[name]; ok {
		return c
	}
	return s.fallback
}

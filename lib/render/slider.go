package render

type SliderFrame struct {
	Width  float64
	Height float64

	TrackStart float64
	TrackEnd   float64
	Ticks      []float64
	Handle     float64

	Title  string
	TitleX float64
	Label  string
}

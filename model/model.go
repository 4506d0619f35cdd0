package model

type Size struct {
	Width, Height int
}

// Slider is an integer position on a 0..Steps track mapped linearly onto
// [Min, Max].
type Slider struct {
	Position int
	Steps    int
	Min, Max float64
}

func (s Slider) Value() float64 {
	if s.Steps <= 0 {
		return s.Min
	}
	return s.Min + (s.Max-s.Min)*float64(s.Position)/float64(s.Steps)
}

// Ratio is the position of the knob on the track in [0, 1].
func (s Slider) Ratio() float64 {
	if s.Steps <= 0 {
		return 0
	}
	return float64(s.Position) / float64(s.Steps)
}

func (s *Slider) SetPosition(position int) {
	if position < 0 {
		position = 0
	}
	if position > s.Steps {
		position = s.Steps
	}
	s.Position = position
}

// SetValue moves the knob to the position closest to value.
func (s *Slider) SetValue(value float64) {
	if s.Steps <= 0 || !(s.Max > s.Min) {
		s.SetPosition(0)
		return
	}
	ratio := (value - s.Min) / (s.Max - s.Min)
	s.SetPosition(int(ratio*float64(s.Steps) + 0.5))
}

package widgets

import (
	"battgauge/model"
	"fmt"
	"math"
	"strings"
)

type slider struct {
	slider model.Slider
	width  int
}

// Slider is a one line track with a knob. Clicking a cell of the track
// emits model.SetSlider for the matching position.
func Slider(s model.Slider, width int) Widget {
	return slider{slider: s, width: width}
}

func (s slider) Constraint() Constraint {
	return Constraint{Size: Size{Width: s.width, Height: 1}, Flex: Flex{X: 1, Y: 0}}
}

func (s slider) Render(renderer Renderer, pos Position, size Size) {
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	knob := s.knob(size.Width)
	runes := make([]rune, size.Width)
	for i := range runes {
		switch {
		case i < knob:
			runes[i] = '━'
		case i == knob:
			runes[i] = '●'
		default:
			runes[i] = '─'
		}
		renderer.AddMouseTarget(model.SetSlider{Position: s.position(i, size.Width)}, Position{X: pos.X + i, Y: pos.Y}, Size{Width: 1, Height: 1})
	}
	renderer.Text(runes, pos)
}

func (s slider) knob(width int) int {
	if width <= 1 {
		return 0
	}
	return int(math.Round(s.slider.Ratio() * float64(width-1)))
}

func (s slider) position(cell, width int) int {
	if width <= 1 {
		return 0
	}
	return int(math.Round(float64(cell) * float64(s.slider.Steps) / float64(width-1)))
}

func (s slider) String() string { return toString(s) }

func (s slider) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sSlider(Position: %d, Steps: %d)\n", offset, s.slider.Position, s.slider.Steps)
}

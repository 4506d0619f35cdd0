package gauge

import "image/color"

// Surface is the painting capability a host toolkit provides.
type Surface interface {
	FillRect(rect Rect, color Color)
	StrokeRect(rect Rect, color Color, pen float64)
}

// Paint replays commands on surface in order.
func Paint(surface Surface, commands []Command) {
	for _, command := range commands {
		switch command.Kind {
		case Fill:
			surface.FillRect(command.Rect, command.Color)
		case Outline:
			surface.StrokeRect(command.Rect, command.Color, command.Pen)
		}
	}
}

// Palette maps colour roles to RGBA values for raster surfaces.
type Palette map[Color]color.RGBA

var DefaultPalette = Palette{
	ColorFrame:        {R: 0x20, G: 0x20, B: 0x20, A: 0xff},
	ColorFilled:       {R: 0x2e, G: 0xcc, B: 0x40, A: 0xff},
	ColorEmpty:        {R: 0xdc, G: 0xdc, B: 0xdc, A: 0xff},
	ColorSegmentFrame: {R: 0x50, G: 0x50, B: 0x50, A: 0xff},
}

// RGBA falls back to DefaultPalette for roles p does not define.
func (p Palette) RGBA(c Color) color.RGBA {
	if rgba, ok := p[c]; ok {
		return rgba
	}
	return DefaultPalette[c]
}

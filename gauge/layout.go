package gauge

import "fmt"

const (
	Padding = 4.0
	Spacing = 4.0

	tipLength  = 0.05
	tipBreadth = 0.6
)

type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%.2f, %.2f, %.2fx%.2f)", r.X, r.Y, r.Width, r.Height)
}

type Kind int

const (
	Outline Kind = iota
	Fill
)

func (k Kind) String() string {
	if k == Fill {
		return "fill"
	}
	return "outline"
}

// Color is a role, not a concrete colour; surfaces map roles to whatever
// their toolkit understands.
type Color int

const (
	ColorFrame Color = iota
	ColorFilled
	ColorEmpty
	ColorSegmentFrame
)

func (c Color) String() string {
	switch c {
	case ColorFrame:
		return "frame"
	case ColorFilled:
		return "filled"
	case ColorEmpty:
		return "empty"
	case ColorSegmentFrame:
		return "segment-frame"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

type Command struct {
	Rect  Rect
	Kind  Kind
	Color Color
	Pen   float64
}

func (c Command) String() string {
	return fmt.Sprintf("%-7s %-13s pen=%.0f %s", c.Kind, c.Color, c.Pen, c.Rect)
}

// Params holds everything Layout depends on.
type Params struct {
	Width, Height float64
	Pen           float64
	Segments      int
	Orientation   Orientation
	FillRatio     float64
}

// Layout returns the body outline, the tip outline and, for every segment,
// a fill followed by its outline. Segment 0 is the leftmost one in the
// horizontal orientation and the bottommost one in the vertical one.
func Layout(p Params) []Command {
	if p.Segments <= 0 {
		p.Segments = DefaultSegments
	}
	var body, tip Rect
	if p.Orientation == Vertical {
		body, tip = verticalFrame(p)
	} else {
		body, tip = horizontalFrame(p)
	}

	commands := make([]Command, 0, 2+2*p.Segments)
	commands = append(commands,
		Command{Rect: body, Kind: Outline, Color: ColorFrame, Pen: p.Pen},
		Command{Rect: tip, Kind: Outline, Color: ColorFrame, Pen: p.Pen},
	)

	filled := filledSegments(clamp(p.FillRatio, 0, 1), p.Segments)
	for i, segment := range segmentRects(body, p.Segments, p.Orientation) {
		color := ColorEmpty
		if i < filled {
			color = ColorFilled
		}
		commands = append(commands,
			Command{Rect: segment, Kind: Fill, Color: color},
			Command{Rect: segment, Kind: Outline, Color: ColorSegmentFrame, Pen: 1},
		)
	}
	return commands
}

func horizontalFrame(p Params) (body, tip Rect) {
	tipWidth := tipLength * p.Width
	body = Rect{
		X:      p.Pen / 2,
		Y:      p.Pen / 2,
		Width:  nonNegative(p.Width - tipWidth - p.Pen),
		Height: nonNegative(p.Height - p.Pen),
	}
	tipHeight := tipBreadth * body.Height
	tip = Rect{
		X:      body.Right(),
		Y:      (p.Height - tipHeight) / 2,
		Width:  tipWidth,
		Height: tipHeight,
	}
	return body, tip
}

func verticalFrame(p Params) (body, tip Rect) {
	tipHeight := tipLength * p.Height
	body = Rect{
		X:      p.Pen / 2,
		Y:      p.Pen/2 + tipHeight,
		Width:  nonNegative(p.Width - p.Pen),
		Height: nonNegative(p.Height - tipHeight - p.Pen),
	}
	tipWidth := tipBreadth * body.Width
	tip = Rect{
		X:      (p.Width - tipWidth) / 2,
		Y:      body.Y - tipHeight,
		Width:  tipWidth,
		Height: tipHeight,
	}
	return body, tip
}

func segmentRects(body Rect, segments int, orientation Orientation) []Rect {
	rects := make([]Rect, segments)
	gaps := float64(segments-1) * Spacing
	if orientation == Vertical {
		width := nonNegative(body.Width - 2*Padding)
		height := nonNegative((body.Height - 2*Padding - gaps) / float64(segments))
		bottom := body.Bottom() - Padding
		for i := range rects {
			rects[i] = Rect{
				X:      body.X + Padding,
				Y:      bottom - float64(i+1)*height - float64(i)*Spacing,
				Width:  width,
				Height: height,
			}
		}
		return rects
	}

	width := nonNegative((body.Width - 2*Padding - gaps) / float64(segments))
	height := nonNegative(body.Height - 2*Padding)
	for i := range rects {
		rects[i] = Rect{
			X:      body.X + Padding + float64(i)*(width+Spacing),
			Y:      body.Y + Padding,
			Width:  width,
			Height: height,
		}
	}
	return rects
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

package widgets

import (
	"battgauge/gauge"
	"battgauge/model"
)

var (
	styleAppTitle   = Style{FG: 226, BG: 0, Flags: Bold + Italic}
	styleBackground = Style{FG: 231, BG: 17}
	styleLabel      = Style{FG: 231, BG: 17, Flags: Bold}
	styleSlider     = Style{FG: 45, BG: 17}
	styleStatusLine = Style{FG: 226, BG: 0}
	styleError      = Style{FG: 231, BG: 124, Flags: Bold}
)

var (
	rowConstraint = Constraint{Size: Size{Width: 0, Height: 1}, Flex: Flex{X: 1, Y: 0}}
	colConstraint = Constraint{Size: Size{Width: 0, Height: 0}, Flex: Flex{X: 1, Y: 1}}
)

const keyHelp = " ←/→ PgUp/PgDn Home/End: voltage   o: orientation   +/-: segments   Esc: quit"

// Screen is everything the demo shows.
type Screen struct {
	Title   string
	Gauges  []*gauge.Gauge
	Slider  model.Slider
	Label   string
	Source  string
	Error   string
	Cell    CellSize
	Palette BatteryPalette
}

func (s *Screen) View() Widget {
	return Styled(styleBackground, Column(colConstraint,
		s.title(),
		Spacer{},
		s.gauges(),
		Spacer{},
		s.label(),
		s.slider(),
		s.statusLine(),
	))
}

func (s *Screen) title() Widget {
	return Styled(styleAppTitle, Row(rowConstraint,
		Text(" "+s.Title).Flex(1),
		Text(s.Source+" "),
	))
}

func (s *Screen) gauges() Widget {
	height := 0
	children := []Widget{Spacer{}}
	for _, g := range s.Gauges {
		battery := Battery(g, s.Cell, s.Palette, Flex{X: 0, Y: 0})
		if h := battery.Constraint().Height; h > height {
			height = h
		}
		children = append(children, Clickable(model.ToggleOrientation{}, battery), Spacer{})
	}
	return Row(Constraint{Size: Size{Width: 0, Height: height}, Flex: Flex{X: 1, Y: 0}}, children...)
}

func (s *Screen) label() Widget {
	return Styled(styleLabel, Row(rowConstraint,
		Text(" "),
		Text(s.Label).Flex(1),
	))
}

func (s *Screen) slider() Widget {
	return Styled(styleSlider, Row(rowConstraint,
		Text(" "),
		Slider(s.Slider, 10),
		Text(" "),
	))
}

func (s *Screen) statusLine() Widget {
	if s.Error != "" {
		return Styled(styleError, Row(rowConstraint, Text(" "+s.Error).Flex(1)))
	}
	return Styled(styleStatusLine, Row(rowConstraint, Text(keyHelp).Flex(1)))
}

package widgets

import (
	"battgauge/model"
	"fmt"
	"strings"
)

// Styled and Clickable wrap a widget without changing its constraint.

type styled struct {
	style Style
	Widget
}

func Styled(style Style, widget Widget) Widget {
	return styled{style: style, Widget: widget}
}

func (s styled) Render(renderer Renderer, pos Position, size Size) {
	previous := renderer.CurrentStyle()
	defer renderer.SetStyle(previous)
	renderer.SetStyle(s.style)
	s.Widget.Render(renderer, pos, size)
}

func (s styled) String() string { return toString(s) }

func (s styled) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sStyled(%s)\n", offset, s.style)
	s.Widget.ToString(buf, offset+"| ")
}

type clickable struct {
	event model.Event
	Widget
}

// Clickable emits event when the area widget was rendered into is clicked.
func Clickable(event model.Event, widget Widget) Widget {
	return clickable{event: event, Widget: widget}
}

func (c clickable) Render(renderer Renderer, pos Position, size Size) {
	if size.Width > 0 && size.Height > 0 {
		renderer.AddMouseTarget(c.event, pos, size)
	}
	c.Widget.Render(renderer, pos, size)
}

func (c clickable) String() string { return toString(c) }

func (c clickable) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sClickable(%T)\n", offset, c.event)
	c.Widget.ToString(buf, offset+"| ")
}

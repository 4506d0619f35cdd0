package widgets

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

type text struct {
	text  string
	width int
	flex  int
}

func Text(txt string) text {
	return text{text: txt, width: runewidth.StringWidth(txt)}
}

func (t text) Width(width int) text {
	t.width = width
	return t
}

func (t text) Flex(flex int) text {
	t.flex = flex
	return t
}

func (t text) Constraint() Constraint {
	return Constraint{Size: Size{Width: t.width, Height: 1}, Flex: Flex{X: t.flex, Y: 0}}
}

func (t text) Render(renderer Renderer, pos Position, size Size) {
	if size.Width < 1 || size.Height < 1 {
		return
	}
	line := runewidth.Truncate(t.text, size.Width, "…")
	line = runewidth.FillRight(line, size.Width)
	renderer.Text([]rune(line), pos)
}

func (t text) String() string { return toString(t) }

func (t text) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sText(%q, Width: %d, Flex: %d)\n", offset, t.text, t.width, t.flex)
}

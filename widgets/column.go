package widgets

import (
	"fmt"
	"strings"
)

type column struct {
	constraint Constraint
	widgets    []Widget
}

func Column(constraint Constraint, widgets ...Widget) Widget {
	return column{constraint: constraint, widgets: widgets}
}

func (c column) Constraint() Constraint {
	return c.constraint
}

func (c column) Render(renderer Renderer, pos Position, size Size) {
	sizes := make([]int, len(c.widgets))
	flexes := make([]int, len(c.widgets))
	for i, widget := range c.widgets {
		constraint := widget.Constraint()
		sizes[i] = constraint.Height
		flexes[i] = constraint.Y
	}
	heights := calcSizes(size.Height, sizes, flexes)
	y := pos.Y
	for i, widget := range c.widgets {
		widget.Render(renderer, Position{X: pos.X, Y: y}, Size{Width: size.Width, Height: heights[i]})
		y += heights[i]
	}
	if y < pos.Y+size.Height {
		fill(renderer, Position{X: pos.X, Y: y}, Size{Width: size.Width, Height: pos.Y + size.Height - y})
	}
}

func (c column) String() string { return toString(c) }

func (c column) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sColumn(%s)\n", offset, c.constraint)
	for _, widget := range c.widgets {
		widget.ToString(buf, offset+"| ")
	}
}

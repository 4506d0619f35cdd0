package widgets

import (
	"battgauge/gauge"
	"fmt"
	"math"
	"strings"
)

// CellSize is how many gauge pixels one terminal cell covers.
type CellSize struct {
	Width, Height float64
}

var DefaultCellSize = CellSize{Width: 4, Height: 8}

// BatteryPalette maps gauge colour roles to cell styles. Fills use the
// background, outlines the foreground.
type BatteryPalette map[gauge.Color]Style

var DefaultBatteryPalette = BatteryPalette{
	gauge.ColorFrame:        {FG: 252, BG: 17},
	gauge.ColorFilled:       {FG: 22, BG: 40},
	gauge.ColorEmpty:        {FG: 245, BG: 238},
	gauge.ColorSegmentFrame: {FG: 250, BG: 17},
}

type battery struct {
	gauge   *gauge.Gauge
	cell    CellSize
	palette BatteryPalette
	flex    Flex
}

// Battery sizes itself from the gauge's preferred size, swapped for the
// vertical orientation.
func Battery(g *gauge.Gauge, cell CellSize, palette BatteryPalette, flex Flex) Widget {
	if cell.Width <= 0 || cell.Height <= 0 {
		cell = DefaultCellSize
	}
	if palette == nil {
		palette = DefaultBatteryPalette
	}
	return battery{gauge: g, cell: cell, palette: palette, flex: flex}
}

func (b battery) Constraint() Constraint {
	width, height := b.gauge.PreferredSize()
	if b.gauge.Orientation() == gauge.Vertical {
		width, height = height, width
	}
	return Constraint{
		Size: Size{
			Width:  int(math.Ceil(width / b.cell.Width)),
			Height: int(math.Ceil(height / b.cell.Height)),
		},
		Flex: b.flex,
	}
}

func (b battery) Render(renderer Renderer, pos Position, size Size) {
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	surface := NewCellSurface(size, b.cell, b.palette, renderer.CurrentStyle())
	b.gauge.Draw(surface, float64(size.Width)*b.cell.Width, float64(size.Height)*b.cell.Height)
	surface.Flush(renderer, pos)
}

func (b battery) String() string { return toString(b) }

func (b battery) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sBattery(%s, Voltage: %.2f, Segments: %d/%d)\n", offset,
		b.gauge.Orientation(), b.gauge.Voltage(), b.gauge.FilledSegmentCount(), b.gauge.SegmentCount())
}

type cell struct {
	rune  rune
	style Style
}

// CellSurface rasterises gauge rectangles onto a grid of terminal cells.
// A cell belongs to a rectangle when its centre lies inside it.
type CellSurface struct {
	cells   [][]cell
	size    Size
	cell    CellSize
	palette BatteryPalette
}

func NewCellSurface(size Size, cellSize CellSize, palette BatteryPalette, background Style) *CellSurface {
	cells := make([][]cell, size.Height)
	for y := range cells {
		cells[y] = make([]cell, size.Width)
		for x := range cells[y] {
			cells[y][x] = cell{rune: ' ', style: background}
		}
	}
	return &CellSurface{cells: cells, size: size, cell: cellSize, palette: palette}
}

func (s *CellSurface) FillRect(rect gauge.Rect, color gauge.Color) {
	x0, x1, y0, y1, ok := s.span(rect)
	if !ok {
		return
	}
	bg := s.palette[color].BG
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c := &s.cells[y][x]
			c.rune = ' '
			c.style.BG = bg
		}
	}
}

var (
	lightBox = [6]rune{'┌', '┐', '└', '┘', '─', '│'}
	heavyBox = [6]rune{'┏', '┓', '┗', '┛', '━', '┃'}
)

func (s *CellSurface) StrokeRect(rect gauge.Rect, color gauge.Color, pen float64) {
	x0, x1, y0, y1, ok := s.span(rect)
	if !ok {
		return
	}
	box := lightBox
	if pen >= 2 {
		box = heavyBox
	}
	fg := s.palette[color].FG
	set := func(x, y int, r rune) {
		c := &s.cells[y][x]
		c.rune = r
		c.style.FG = fg
	}

	switch {
	case x0 == x1 && y0 == y1:
		set(x0, y0, '▪')
	case y0 == y1:
		for x := x0; x <= x1; x++ {
			set(x, y0, box[4])
		}
	case x0 == x1:
		for y := y0; y <= y1; y++ {
			set(x0, y, box[5])
		}
	default:
		for x := x0 + 1; x < x1; x++ {
			set(x, y0, box[4])
			set(x, y1, box[4])
		}
		for y := y0 + 1; y < y1; y++ {
			set(x0, y, box[5])
			set(x1, y, box[5])
		}
		set(x0, y0, box[0])
		set(x1, y0, box[1])
		set(x0, y1, box[2])
		set(x1, y1, box[3])
	}
}

// span returns the inclusive cell range covered by rect, clipped to the
// grid.
func (s *CellSurface) span(rect gauge.Rect) (x0, x1, y0, y1 int, ok bool) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return 0, 0, 0, 0, false
	}
	x0, x1 = cellRange(rect.X, rect.Right(), s.cell.Width, s.size.Width)
	y0, y1 = cellRange(rect.Y, rect.Bottom(), s.cell.Height, s.size.Height)
	return x0, x1, y0, y1, x0 <= x1 && y0 <= y1
}

// cellRange maps [from, to) in pixels onto the cells whose centres it
// contains. A span narrower than a cell still covers the cell holding its
// midpoint.
func cellRange(from, to, cellSize float64, cells int) (first, last int) {
	first = int(math.Ceil(from/cellSize - 0.5))
	last = int(math.Ceil(to/cellSize-0.5)) - 1
	if last < first {
		first = int(math.Floor((from + to) / 2 / cellSize))
		last = first
	}
	if first < 0 {
		first = 0
	}
	if last > cells-1 {
		last = cells - 1
	}
	return first, last
}

func (s *CellSurface) Cell(x, y int) (rune, Style) {
	c := s.cells[y][x]
	return c.rune, c.style
}

func (s *CellSurface) Flush(renderer Renderer, pos Position) {
	current := renderer.CurrentStyle()
	for y, line := range s.cells {
		for x, c := range line {
			renderer.SetStyle(c.style)
			renderer.Text([]rune{c.rune}, Position{X: pos.X + x, Y: pos.Y + y})
		}
	}
	renderer.SetStyle(current)
}

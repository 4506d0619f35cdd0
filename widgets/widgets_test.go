package widgets

import (
	"battgauge/gauge"
	"battgauge/model"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCell struct {
	rune  rune
	style Style
}

type TestRenderer struct {
	style   Style
	cells   map[Position]testCell
	targets []testTarget
	width   int
}

type testTarget struct {
	event model.Event
	pos   Position
	size  Size
}

func newTestRenderer() *TestRenderer {
	return &TestRenderer{cells: map[Position]testCell{}}
}

func (r *TestRenderer) AddMouseTarget(event model.Event, pos Position, size Size) {
	r.targets = append(r.targets, testTarget{event, pos, size})
}

func (r *TestRenderer) SetStyle(style Style) { r.style = style }
func (r *TestRenderer) CurrentStyle() Style  { return r.style }

func (r *TestRenderer) Text(runes []rune, pos Position) {
	r.width += len(runes)
	for i, ch := range runes {
		r.cells[Position{X: pos.X + i, Y: pos.Y}] = testCell{ch, r.style}
	}
}

func (r *TestRenderer) Reset() {}
func (r *TestRenderer) Show()  {}

func (r *TestRenderer) line(y, width int) string {
	buf := strings.Builder{}
	for x := 0; x < width; x++ {
		buf.WriteRune(r.cells[Position{X: x, Y: y}].rune)
	}
	return buf.String()
}

func TestCalcSizes(t *testing.T) {
	for w := 0; w <= 80; w++ {
		widths := calcSizes(w, []int{14, 15, 16, 8}, []int{0, 2, 3, 0})
		total := 0
		for _, width := range widths {
			assert.GreaterOrEqual(t, width, 0)
			total += width
		}
		assert.Equal(t, w, total, "target %d", w)
	}
}

func TestCalcSizesWithoutFlex(t *testing.T) {
	assert.Equal(t, []int{3, 4}, calcSizes(20, []int{3, 4}, []int{0, 0}))
	assert.Equal(t, []int{3, 3}, calcSizes(6, []int{3, 4}, []int{0, 0}))
	assert.Equal(t, []int{0, 0}, calcSizes(-1, []int{3, 4}, []int{0, 0}))
}

func TestRow(t *testing.T) {
	for w := 0; w <= 80; w++ {
		row := Row(rowConstraint,
			Text("foofoofoofoofoo"),
			Text("barbarbarbarbar").Flex(2),
			Text("bazbazbazbazbaz").Flex(3),
			Text("quuzquuz"),
		)
		r := newTestRenderer()
		row.Render(r, Position{X: 0, Y: 0}, Size{Width: w, Height: 1})
		assert.Equal(t, w, r.width, "width %d", w)
	}
}

func TestColumnFillsLeftover(t *testing.T) {
	r := newTestRenderer()
	col := Column(colConstraint, Text("a"), Text("b"))
	col.Render(r, Position{X: 0, Y: 0}, Size{Width: 3, Height: 4})
	assert.Equal(t, "a  ", r.line(0, 3))
	assert.Equal(t, "b  ", r.line(1, 3))
	assert.Equal(t, "   ", r.line(3, 3))
}

func TestTextTruncates(t *testing.T) {
	r := newTestRenderer()
	Text("Voltage: 2.50 V").Render(r, Position{X: 0, Y: 0}, Size{Width: 8, Height: 1})
	assert.Equal(t, "Voltage…", r.line(0, 8))

	r = newTestRenderer()
	Text("ok").Render(r, Position{X: 0, Y: 0}, Size{Width: 4, Height: 1})
	assert.Equal(t, "ok  ", r.line(0, 4))
}

func TestStyledRestoresStyle(t *testing.T) {
	r := newTestRenderer()
	r.SetStyle(styleBackground)
	Styled(styleError, Text("x")).Render(r, Position{X: 0, Y: 0}, Size{Width: 1, Height: 1})
	assert.Equal(t, styleError, r.cells[Position{X: 0, Y: 0}].style)
	assert.Equal(t, styleBackground, r.CurrentStyle())
}

func TestCellRange(t *testing.T) {
	first, last := cellRange(0, 16, 4, 10)
	assert.Equal(t, 0, first)
	assert.Equal(t, 3, last)

	first, last = cellRange(5, 6, 4, 10)
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, last)

	first, last = cellRange(30, 60, 4, 10)
	assert.Equal(t, 7, first)
	assert.Equal(t, 9, last)
}

func TestCellSurfaceStroke(t *testing.T) {
	s := NewCellSurface(Size{Width: 4, Height: 3}, CellSize{Width: 1, Height: 1}, DefaultBatteryPalette, Style{})
	s.StrokeRect(gauge.Rect{X: 0, Y: 0, Width: 4, Height: 3}, gauge.ColorSegmentFrame, 1)

	expected := []string{"┌──┐", "│  │", "└──┘"}
	for y, line := range expected {
		for x, ch := range []rune(line) {
			r, style := s.Cell(x, y)
			assert.Equal(t, ch, r, "cell %d,%d", x, y)
			if ch != ' ' {
				assert.Equal(t, DefaultBatteryPalette[gauge.ColorSegmentFrame].FG, style.FG)
			}
		}
	}

	s.StrokeRect(gauge.Rect{X: 0, Y: 0, Width: 4, Height: 3}, gauge.ColorFrame, 2)
	r, _ := s.Cell(0, 0)
	assert.Equal(t, '┏', r)
}

func TestCellSurfaceFillKeepsOutline(t *testing.T) {
	s := NewCellSurface(Size{Width: 3, Height: 1}, CellSize{Width: 1, Height: 1}, DefaultBatteryPalette, Style{})
	s.FillRect(gauge.Rect{X: 0, Y: 0, Width: 3, Height: 1}, gauge.ColorFilled)
	s.StrokeRect(gauge.Rect{X: 0, Y: 0, Width: 3, Height: 1}, gauge.ColorSegmentFrame, 1)

	for x := 0; x < 3; x++ {
		r, style := s.Cell(x, 0)
		assert.Equal(t, '─', r)
		assert.Equal(t, DefaultBatteryPalette[gauge.ColorFilled].BG, style.BG)
	}
}

func TestCellSurfaceClipsAndSkipsEmpty(t *testing.T) {
	s := NewCellSurface(Size{Width: 2, Height: 2}, CellSize{Width: 1, Height: 1}, DefaultBatteryPalette, Style{BG: 1})
	s.FillRect(gauge.Rect{X: -5, Y: -5, Width: 100, Height: 100}, gauge.ColorEmpty)
	s.FillRect(gauge.Rect{X: 0, Y: 0, Width: 0, Height: 2}, gauge.ColorFilled)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			_, style := s.Cell(x, y)
			assert.Equal(t, DefaultBatteryPalette[gauge.ColorEmpty].BG, style.BG)
		}
	}
}

func filledColumns(r *TestRenderer, y, width int) int {
	count := 0
	for x := 0; x < width; x++ {
		if r.cells[Position{X: x, Y: y}].style.BG == DefaultBatteryPalette[gauge.ColorFilled].BG {
			count++
		}
	}
	return count
}

func TestBatteryWidget(t *testing.T) {
	g := gauge.New(0, 5, 10, gauge.Horizontal)
	battery := Battery(g, CellSize{}, nil, Flex{})
	assert.Equal(t, Size{Width: 50, Height: 13}, battery.Constraint().Size)

	r := newTestRenderer()
	battery.Render(r, Position{X: 0, Y: 0}, Size{Width: 50, Height: 13})
	assert.Equal(t, 0, filledColumns(r, 6, 50))
	assert.Equal(t, '┏', r.cells[Position{X: 0, Y: 0}].rune)

	g.SetVoltage(5)
	r = newTestRenderer()
	battery.Render(r, Position{X: 0, Y: 0}, Size{Width: 50, Height: 13})
	full := filledColumns(r, 6, 50)
	assert.Greater(t, full, 0)

	g.SetVoltage(2.5)
	r = newTestRenderer()
	battery.Render(r, Position{X: 0, Y: 0}, Size{Width: 50, Height: 13})
	half := filledColumns(r, 6, 50)
	assert.Greater(t, half, 0)
	assert.Less(t, half, full)
	assert.True(t, strings.Contains(battery.String(), "horizontal"))
}

func TestBatteryWidgetVertical(t *testing.T) {
	g := gauge.New(0, 5, 4, gauge.Vertical)
	g.SetVoltage(2.5)
	battery := Battery(g, CellSize{Width: 4, Height: 8}, nil, Flex{})
	assert.Equal(t, Size{Width: 25, Height: 25}, battery.Constraint().Size)

	r := newTestRenderer()
	battery.Render(r, Position{X: 0, Y: 0}, Size{Width: 25, Height: 25})

	filledRows := []int{}
	for y := 0; y < 25; y++ {
		if filledColumns(r, y, 25) > 0 {
			filledRows = append(filledRows, y)
		}
	}
	require.NotEmpty(t, filledRows)
	assert.Greater(t, filledRows[0], 12, "filling starts at the bottom")
}

func TestSlider(t *testing.T) {
	s := model.Slider{Position: 50, Steps: 100, Min: 0, Max: 5}
	r := newTestRenderer()
	Slider(s, 10).Render(r, Position{X: 2, Y: 3}, Size{Width: 11, Height: 1})

	assert.Equal(t, '●', r.cells[Position{X: 7, Y: 3}].rune)
	assert.Equal(t, '━', r.cells[Position{X: 2, Y: 3}].rune)
	assert.Equal(t, '─', r.cells[Position{X: 12, Y: 3}].rune)

	require.Len(t, r.targets, 11)
	assert.Equal(t, model.SetSlider{Position: 0}, r.targets[0].event)
	assert.Equal(t, model.SetSlider{Position: 100}, r.targets[10].event)
	assert.Equal(t, Position{X: 12, Y: 3}, r.targets[10].pos)
}

func TestScreenView(t *testing.T) {
	horizontal := gauge.New(0, 5, 10, gauge.Horizontal)
	vertical := gauge.New(0, 5, 10, gauge.Vertical)
	screen := &Screen{
		Title:  "Battery Gauge",
		Gauges: []*gauge.Gauge{horizontal, vertical},
		Slider: model.Slider{Steps: 100, Max: 5},
		Label:  "Voltage: 0.00 V",
		Source: "manual",
	}
	r := newTestRenderer()
	screen.View().Render(r, Position{X: 0, Y: 0}, Size{Width: 100, Height: 40})

	assert.Contains(t, r.line(0, 100), "Battery Gauge")
	found := false
	for y := 0; y < 40; y++ {
		if strings.Contains(r.line(y, 100), "Voltage: 0.00 V") {
			found = true
		}
	}
	assert.True(t, found)
	assert.Contains(t, r.line(39, 100), "Esc: quit")

	toggles := 0
	for _, target := range r.targets {
		if target.event == (model.ToggleOrientation{}) {
			toggles++
		}
	}
	assert.Equal(t, 2, toggles, "each gauge toggles the orientation")
	assert.Contains(t, screen.View().String(), "Clickable(model.ToggleOrientation)")

	screen.Error = "battery unavailable"
	r = newTestRenderer()
	screen.View().Render(r, Position{X: 0, Y: 0}, Size{Width: 100, Height: 40})
	assert.Contains(t, r.line(39, 100), "battery unavailable")
}

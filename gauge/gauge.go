// Package gauge computes the geometry of a segmented battery-charge
// indicator. It has no knowledge of any drawing toolkit: Render returns a
// list of draw commands that a Surface adapter paints.
package gauge

import "math"

const (
	DefaultMinVoltage = 0.0
	DefaultMaxVoltage = 5.0
	DefaultSegments   = 10
	DefaultPen        = 2.0

	PreferredWidth  = 200.0
	PreferredHeight = 100.0
)

type Gauge struct {
	voltage     float64
	minVoltage  float64
	maxVoltage  float64
	segments    int
	orientation Orientation
	onChange    func()
}

// New starts from the defaults and applies the arguments through the
// setters, so a non-positive segment count or an unknown orientation keeps
// the default value. The initial voltage is the lower bound.
func New(minVoltage, maxVoltage float64, segments int, orientation Orientation) *Gauge {
	g := &Gauge{
		minVoltage:  minVoltage,
		maxVoltage:  maxVoltage,
		segments:    DefaultSegments,
		orientation: Horizontal,
	}
	g.SetSegmentCount(segments)
	g.SetOrientation(orientation)
	g.voltage = clamp(minVoltage, minVoltage, maxVoltage)
	return g
}

// OnChange registers the repaint trigger. It is called synchronously by
// every setter that changes the gauge.
func (g *Gauge) OnChange(fn func()) {
	g.onChange = fn
}

func (g *Gauge) changed() {
	if g.onChange != nil {
		g.onChange()
	}
}

func (g *Gauge) Voltage() float64         { return g.voltage }
func (g *Gauge) MinVoltage() float64      { return g.minVoltage }
func (g *Gauge) MaxVoltage() float64      { return g.maxVoltage }
func (g *Gauge) SegmentCount() int        { return g.segments }
func (g *Gauge) Orientation() Orientation { return g.orientation }

// SetVoltage stores v clamped to [min, max]. Out of range input is never
// rejected.
func (g *Gauge) SetVoltage(v float64) {
	g.voltage = clamp(v, g.minVoltage, g.maxVoltage)
	g.changed()
}

// SetMinVoltage stores v as is. The bounds are not checked against each
// other and the current voltage is left untouched; a degenerate range only
// makes FillRatio return zero.
func (g *Gauge) SetMinVoltage(v float64) {
	g.minVoltage = v
	g.changed()
}

func (g *Gauge) SetMaxVoltage(v float64) {
	g.maxVoltage = v
	g.changed()
}

// SetSegmentCount reports whether n was accepted.
func (g *Gauge) SetSegmentCount(n int) bool {
	if n <= 0 {
		return false
	}
	g.segments = n
	g.changed()
	return true
}

// SetOrientation reports whether o was accepted.
func (g *Gauge) SetOrientation(o Orientation) bool {
	if !o.Valid() {
		return false
	}
	g.orientation = o
	g.changed()
	return true
}

// FillRatio is the position of the voltage between the bounds, in [0, 1].
// It is zero when max <= min.
func (g *Gauge) FillRatio() float64 {
	if !(g.maxVoltage > g.minVoltage) {
		return 0
	}
	ratio := (g.voltage - g.minVoltage) / (g.maxVoltage - g.minVoltage)
	if math.IsNaN(ratio) {
		return 0
	}
	return clamp(ratio, 0, 1)
}

func (g *Gauge) FilledSegmentCount() int {
	return filledSegments(g.FillRatio(), g.segments)
}

func (g *Gauge) PreferredSize() (width, height float64) {
	return PreferredWidth, PreferredHeight
}

// Render lays the gauge out in a width x height viewport.
func (g *Gauge) Render(width, height float64) []Command {
	return Layout(g.Params(width, height))
}

func (g *Gauge) Params(width, height float64) Params {
	return Params{
		Width:       width,
		Height:      height,
		Pen:         DefaultPen,
		Segments:    g.segments,
		Orientation: g.orientation,
		FillRatio:   g.FillRatio(),
	}
}

func (g *Gauge) Draw(surface Surface, width, height float64) {
	Paint(surface, g.Render(width, height))
}

func filledSegments(ratio float64, segments int) int {
	if segments <= 0 {
		return 0
	}
	filled := int(math.Floor(ratio * float64(segments)))
	if filled < 0 {
		return 0
	}
	if filled > segments {
		return segments
	}
	return filled
}

// clamp keeps the lower bound when lo > hi. NaN maps to lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

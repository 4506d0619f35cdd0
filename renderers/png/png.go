// Package png paints gauges into raster images with fogleman/gg.
package png

import (
	"battgauge/gauge"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

type Surface struct {
	dc      *gg.Context
	palette gauge.Palette
}

// NewSurface returns a width x height canvas cleared to background.
func NewSurface(width, height int, palette gauge.Palette, background color.Color) *Surface {
	if palette == nil {
		palette = gauge.DefaultPalette
	}
	dc := gg.NewContext(width, height)
	dc.SetColor(background)
	dc.Clear()
	return &Surface{dc: dc, palette: palette}
}

func (s *Surface) FillRect(rect gauge.Rect, role gauge.Color) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	s.dc.SetColor(s.palette.RGBA(role))
	s.dc.DrawRectangle(rect.X, rect.Y, rect.Width, rect.Height)
	s.dc.Fill()
}

// StrokeRect centres the pen on the rectangle's edges.
func (s *Surface) StrokeRect(rect gauge.Rect, role gauge.Color, pen float64) {
	if rect.Width <= 0 || rect.Height <= 0 || pen <= 0 {
		return
	}
	s.dc.SetColor(s.palette.RGBA(role))
	s.dc.SetLineWidth(pen)
	s.dc.DrawRectangle(rect.X, rect.Y, rect.Width, rect.Height)
	s.dc.Stroke()
}

func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

func (s *Surface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// Snapshot renders g at width x height on a fresh surface.
func Snapshot(g *gauge.Gauge, width, height int, palette gauge.Palette) *Surface {
	surface := NewSurface(width, height, palette, color.White)
	g.Draw(surface, float64(width), float64(height))
	return surface
}

package png

import (
	"battgauge/gauge"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pixel(s *Surface, x, y int) color.RGBA {
	r, g, b, a := s.Image().At(x, y).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func TestSnapshotFull(t *testing.T) {
	g := gauge.New(0, 5, 10, gauge.Horizontal)
	g.SetVoltage(5)
	s := Snapshot(g, 250, 100, nil)

	assert.Equal(t, gauge.DefaultPalette[gauge.ColorFilled], pixel(s, 14, 50))
	assert.Equal(t, gauge.DefaultPalette[gauge.ColorFilled], pixel(s, 220, 50))
	assert.Equal(t, gauge.DefaultPalette[gauge.ColorFrame], pixel(s, 1, 50))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, pixel(s, 245, 5))
}

func TestSnapshotHalf(t *testing.T) {
	g := gauge.New(0, 5, 10, gauge.Horizontal)
	g.SetVoltage(2.5)
	s := Snapshot(g, 250, 100, nil)

	assert.Equal(t, gauge.DefaultPalette[gauge.ColorFilled], pixel(s, 14, 50))
	assert.Equal(t, gauge.DefaultPalette[gauge.ColorEmpty], pixel(s, 220, 50))
}

func TestSnapshotVerticalFillsFromBottom(t *testing.T) {
	g := gauge.New(0, 5, 4, gauge.Vertical)
	g.SetVoltage(1.25)
	s := Snapshot(g, 100, 250, nil)

	assert.Equal(t, gauge.DefaultPalette[gauge.ColorFilled], pixel(s, 50, 230))
	assert.Equal(t, gauge.DefaultPalette[gauge.ColorEmpty], pixel(s, 50, 40))
}

func TestCustomPalette(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	s := NewSurface(10, 10, gauge.Palette{gauge.ColorFilled: red}, color.Black)
	s.FillRect(gauge.Rect{X: 0, Y: 0, Width: 5, Height: 10}, gauge.ColorFilled)
	s.FillRect(gauge.Rect{X: 5, Y: 0, Width: 5, Height: 10}, gauge.ColorEmpty)
	s.FillRect(gauge.Rect{X: 0, Y: 0, Width: 0, Height: 10}, gauge.ColorFrame)

	assert.Equal(t, red, pixel(s, 2, 5))
	assert.Equal(t, gauge.DefaultPalette[gauge.ColorEmpty], pixel(s, 7, 5))
}

func TestSavePNG(t *testing.T) {
	g := gauge.New(0, 5, 10, gauge.Horizontal)
	path := filepath.Join(t.TempDir(), "gauge.png")
	require.NoError(t, Snapshot(g, 200, 100, nil).SavePNG(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	err = Snapshot(g, 200, 100, nil).SavePNG(filepath.Join(t.TempDir(), "missing", "gauge.png"))
	assert.Error(t, err)
}

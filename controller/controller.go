package controller

import (
	"battgauge/config"
	"battgauge/gauge"
	"battgauge/lifecycle"
	"battgauge/model"
	"battgauge/source"
	"battgauge/stream"
	"battgauge/widgets"
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/message"
)

const title = "Battery Gauge"

type controller struct {
	gauges     []*gauge.Gauge
	slider     model.Slider
	printer    *message.Printer
	sourceName string
	cell       widgets.CellSize

	screenSize model.ScreenSize
	err        string
	errTime    time.Time
	frames     int

	dirty bool
	quit  bool
}

// Run drives the demo until a Quit event arrives. The gauges are only
// touched on this goroutine; terminal input, the ticker and the voltage
// source push events onto events.
func Run(renderer widgets.Renderer, events *stream.Stream[model.Event], cfg *config.Config, src source.Source) {
	c := newController(cfg)
	if src != nil {
		c.sourceName = src.Name()
	}

	lc := lifecycle.New()
	defer lc.Stop()

	lc.Go(func(ctx context.Context) {
		ticker(ctx, time.Second, events)
	})
	if src != nil {
		lc.Go(func(ctx context.Context) {
			source.Poll(ctx, src, cfg.Interval, events)
		})
	}

	for !c.quit {
		if c.dirty {
			c.render(renderer)
		}
		for _, event := range events.Pull() {
			c.handleEvent(event)
		}
	}
	log.Info().Int("frames", c.frames).Msg("demo stopped")
}

// newController shows the configured orientation next to the other one.
func newController(cfg *config.Config) *controller {
	c := &controller{
		slider:     model.Slider{Steps: cfg.Steps, Min: cfg.MinVoltage, Max: cfg.MaxVoltage},
		printer:    newPrinter(cfg.Locale),
		sourceName: source.Manual,
		cell:       widgets.CellSize{Width: cfg.CellWidth, Height: cfg.CellHeight},
		dirty:      true,
	}

	first := cfg.NewGauge()
	second := cfg.NewGauge()
	second.SetOrientation(first.Orientation().Toggled())
	c.gauges = []*gauge.Gauge{first, second}
	for _, g := range c.gauges {
		g.OnChange(c.invalidate)
	}
	return c
}

func (c *controller) invalidate() {
	c.dirty = true
}

func (c *controller) render(renderer widgets.Renderer) {
	renderer.Reset()
	c.screen().View().Render(renderer, widgets.Position{X: 0, Y: 0},
		widgets.Size{Width: c.screenSize.Width, Height: c.screenSize.Height})
	renderer.Show()
	c.frames++
	c.dirty = false
}

func (c *controller) screen() *widgets.Screen {
	return &widgets.Screen{
		Title:  title,
		Gauges: c.gauges,
		Slider: c.slider,
		Label:  c.label(),
		Source: c.sourceName,
		Error:  c.err,
		Cell:   c.cell,
	}
}

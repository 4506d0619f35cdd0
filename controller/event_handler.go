package controller

import (
	"battgauge/model"
	"time"

	"github.com/rs/zerolog/log"
)

const errorTimeout = 5 * time.Second

func (c *controller) handleEvent(event model.Event) {
	if event == nil {
		return
	}

	switch event := event.(type) {
	case model.ScreenSize:
		c.screenSize = event
		c.dirty = true

	case model.MoveSlider:
		c.setSlider(c.slider.Position + event.Steps)

	case model.SliderFirst:
		c.setSlider(0)

	case model.SliderLast:
		c.setSlider(c.slider.Steps)

	case model.SetSlider:
		c.setSlider(event.Position)

	case model.ToggleOrientation:
		for _, g := range c.gauges {
			g.SetOrientation(g.Orientation().Toggled())
		}

	case model.ChangeSegments:
		for _, g := range c.gauges {
			g.SetSegmentCount(g.SegmentCount() + event.Delta)
		}

	case model.Reading:
		c.reading(event)

	case model.Error:
		c.err = event.Error.Error()
		c.errTime = time.Now()
		c.dirty = true

	case model.Tick:
		c.tick(time.Time(event))

	case model.Quit:
		c.quit = true

	default:
		log.Warn().Msgf("unhandled event: %#v", event)
	}
}

func (c *controller) setSlider(position int) {
	previous := c.slider.Position
	c.slider.SetPosition(position)
	if c.slider.Position == previous {
		return
	}
	c.dirty = true
	voltage := c.slider.Value()
	for _, g := range c.gauges {
		g.SetVoltage(voltage)
	}
}

// reading adopts the source's range when it reports one and moves the
// slider to the nearest position.
func (c *controller) reading(reading model.Reading) {
	if reading.MaxVoltage > reading.MinVoltage {
		c.slider.Min, c.slider.Max = reading.MinVoltage, reading.MaxVoltage
		for _, g := range c.gauges {
			g.SetMinVoltage(reading.MinVoltage)
			g.SetMaxVoltage(reading.MaxVoltage)
		}
	}
	for _, g := range c.gauges {
		g.SetVoltage(reading.Voltage)
	}
	c.slider.SetValue(reading.Voltage)
	c.err = ""
	c.dirty = true
}

func (c *controller) tick(now time.Time) {
	if c.err != "" && now.Sub(c.errTime) >= errorTimeout {
		c.err = ""
		c.dirty = true
	}
}

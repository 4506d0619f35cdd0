package controller

import (
	"battgauge/config"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func newPrinter(locale string) *message.Printer {
	if locale == "" {
		locale = config.DefaultLocale
	}
	return message.NewPrinter(language.Make(locale))
}

// label shows the voltage the gauges hold, which is the clamped value.
func (c *controller) label() string {
	return c.printer.Sprintf("Voltage: %.2f V", c.gauges[0].Voltage())
}

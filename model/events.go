package model

import (
	"fmt"
	"time"
)

type Event interface {
	event()
}

type ScreenSize struct {
	Width, Height int
}

func (ScreenSize) event() {}

type Quit struct{}

func (Quit) event() {}

// MoveSlider moves the slider by Steps positions.
type MoveSlider struct {
	Steps int
}

func (MoveSlider) event() {}

type SliderFirst struct{}

func (SliderFirst) event() {}

type SliderLast struct{}

func (SliderLast) event() {}

// SetSlider is produced by clicking the slider track.
type SetSlider struct {
	Position int
}

func (SetSlider) event() {}

type ToggleOrientation struct{}

func (ToggleOrientation) event() {}

type ChangeSegments struct {
	Delta int
}

func (ChangeSegments) event() {}

// Reading is a voltage sample from a source.
type Reading struct {
	Voltage    float64
	MinVoltage float64
	MaxVoltage float64
	Time       time.Time
}

func (Reading) event() {}

func (r Reading) String() string {
	return fmt.Sprintf("Reading{Voltage: %.3f, Range: [%.3f, %.3f]}", r.Voltage, r.MinVoltage, r.MaxVoltage)
}

type Error struct {
	Error error
}

func (Error) event() {}

type Tick time.Time

func (Tick) event() {}

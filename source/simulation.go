package source

import (
	"battgauge/model"
	"math"
	"time"
)

// simulation sweeps the voltage between min and max and back once per
// period, for hosts without a battery.
type simulation struct {
	min, max float64
	period   time.Duration
	start    time.Time
	now      func() time.Time
}

func NewSimulation(minVoltage, maxVoltage float64, period time.Duration) Source {
	now := time.Now
	return &simulation{min: minVoltage, max: maxVoltage, period: period, start: now(), now: now}
}

func (s *simulation) Name() string { return Simulated }

func (s *simulation) Read() (model.Reading, error) {
	now := s.now()
	phase := 0.0
	if s.period > 0 {
		phase = math.Mod(float64(now.Sub(s.start))/float64(s.period), 1)
	}
	ratio := 1 - math.Abs(1-2*phase)
	return model.Reading{Voltage: s.min + (s.max-s.min)*ratio, Time: now}, nil
}

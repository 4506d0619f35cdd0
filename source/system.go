package source

import (
	"battgauge/model"
	"time"

	"github.com/distatus/battery"
	"github.com/pkg/errors"
)

// Lithium cell voltages relative to the 3.7 V nominal design voltage.
const (
	cellEmptyRatio = 3.0 / 3.7
	cellFullRatio  = 4.2 / 3.7
)

var ErrNoVoltage = errors.New("battery does not report its voltage")

// host reads one of the machine's batteries.
type host struct {
	index int
	get   func(idx int) (*battery.Battery, error)
	now   func() time.Time
}

func NewSystem(index int) Source {
	return &host{index: index, get: battery.Get, now: time.Now}
}

func (h *host) Name() string { return System }

// Read tolerates partial errors as long as the voltage itself was read.
func (h *host) Read() (model.Reading, error) {
	bat, err := h.get(h.index)
	if bat == nil {
		if err == nil {
			err = ErrNoVoltage
		}
		return model.Reading{}, errors.Wrapf(err, "failed to read battery %d", h.index)
	}
	if bat.Voltage <= 0 {
		if err == nil {
			err = ErrNoVoltage
		}
		return model.Reading{}, errors.Wrapf(err, "failed to read battery %d voltage", h.index)
	}

	reading := model.Reading{Voltage: bat.Voltage, Time: h.now()}
	if bat.DesignVoltage > 0 {
		reading.MinVoltage = bat.DesignVoltage * cellEmptyRatio
		reading.MaxVoltage = bat.DesignVoltage * cellFullRatio
	}
	return reading, nil
}

// Package source produces voltage readings that drive the demo gauges.
package source

import (
	"battgauge/model"
	"battgauge/stream"
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	Manual    = "manual"
	System    = "system"
	Simulated = "simulated"
)

var ErrUnknownSource = errors.New("unknown source")

// Source is polled for readings. A reading with an empty range leaves the
// configured gauge range unchanged.
type Source interface {
	Name() string
	Read() (model.Reading, error)
}

// New returns nil for the manual source, where the slider is the only input.
func New(name string, minVoltage, maxVoltage float64) (Source, error) {
	switch name {
	case Manual, "":
		return nil, nil
	case System:
		return NewSystem(0), nil
	case Simulated:
		return NewSimulation(minVoltage, maxVoltage, time.Minute), nil
	}
	return nil, errors.Wrapf(ErrUnknownSource, "%q", name)
}

// Poll reads src immediately and then every interval until ctx is done.
// Failures are pushed as model.Error and do not stop polling.
func Poll(ctx context.Context, src Source, interval time.Duration, events *stream.Stream[model.Event]) {
	read := func() {
		reading, err := src.Read()
		if err != nil {
			log.Warn().Err(err).Str("source", src.Name()).Msg("read failed")
			events.Push(model.Error{Error: err})
			return
		}
		log.Debug().Str("source", src.Name()).Stringer("reading", reading).Msg("read")
		events.Push(reading)
	}

	read()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			read()
		}
	}
}

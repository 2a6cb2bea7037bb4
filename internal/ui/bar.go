package ui

import (
	"time"

	"codeberg.org/mutker/statusbar/internal/cpu"
	"codeberg.org/mutker/statusbar/internal/display"
	"codeberg.org/mutker/statusbar/internal/logger"
	"codeberg.org/mutker/statusbar/internal/power"
)

// CPUSampler yields usage since its previous call.
type CPUSampler interface {
	Sample() (cpu.Usage, error)
}

// BatteryReader reads every battery attribute in one pass.
type BatteryReader interface {
	Read() (power.Reading, error)
}

// Segments is one rendered status line.
type Segments struct {
	Clock   string
	CPU     string
	Battery string
}

// Bar produces Segments from its sources. A nil Battery hides the battery
// segment.
type Bar struct {
	cpu     CPUSampler
	battery BatteryReader
	icons   display.Icons
	now     func() time.Time
	logger  logger.Logger
}

// NewBar creates a Bar. battery may be nil.
func NewBar(sampler CPUSampler, battery BatteryReader, icons display.Icons, log logger.Logger) *Bar {
	return &Bar{
		cpu:     sampler,
		battery: battery,
		icons:   icons,
		now:     time.Now,
		logger:  log,
	}
}

// Refresh samples every source and renders the segments. Failed reads render
// as display.Placeholder.
func (b *Bar) Refresh() Segments {
	usage, err := b.cpu.Sample()
	if err != nil {
		b.logger.Warn().Err(err).Msg("Failed to sample CPU")
	}

	s := Segments{
		Clock: display.Clock(b.now()),
		CPU:   display.CPU(usage, err),
	}

	if b.battery != nil {
		reading, err := b.battery.Read()
		if err != nil {
			b.logger.Warn().Err(err).Msg("Failed to read battery")
		}
		s.Battery = display.Battery(reading, err, b.icons)
	}

	return s
}

package cpu

import (
	"codeberg.org/mutker/statusbar/internal/errors"
	"codeberg.org/mutker/statusbar/internal/logger"
)

// Sampler turns cumulative tick counters into utilization between two
// consecutive calls to Sample. It is not safe for concurrent use.
type Sampler struct {
	source   TickSource
	previous Ticks
	logger   logger.Logger
}

// NewSampler seeds the baseline from source so the first Sample already
// covers a real interval. A failed seed leaves the zero baseline in place.
func NewSampler(source TickSource, log logger.Logger) *Sampler {
	s := &Sampler{
		source: source,
		logger: log,
	}

	seed, err := source.Ticks()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to seed CPU baseline, first sample covers time since boot")
		return s
	}
	s.previous = seed

	return s
}

// Sample reads fresh counters and returns the utilization since the
// previous call. On failure the baseline is kept and
// ErrTelemetryUnavailable is returned.
func (s *Sampler) Sample() (Usage, error) {
	fresh, err := s.source.Ticks()
	if err != nil {
		return Usage{}, errors.New().Wrap(ErrTelemetryUnavailable, err)
	}

	usage := Percentages(s.previous, fresh)
	s.previous = fresh

	s.logger.Debug().
		Float64("system", usage.System).
		Float64("user", usage.User).
		Float64("idle", usage.Idle).
		Float64("nice", usage.Nice).
		Msg("CPU sampled")

	return usage, nil
}

// Percentages computes per-category shares of the ticks elapsed between
// previous and fresh. Counters that went backwards count as zero. When no
// tick elapsed every share is zero.
func Percentages(previous, fresh Ticks) Usage {
	system := delta(previous.System, fresh.System)
	user := delta(previous.User, fresh.User)
	idle := delta(previous.Idle, fresh.Idle)
	nice := delta(previous.Nice, fresh.Nice)

	// summed as floats so four large deltas cannot overflow
	total := system + user + idle + nice
	if total == 0 {
		return Usage{}
	}

	return Usage{
		System: system / total * 100,
		User:   user / total * 100,
		Idle:   idle / total * 100,
		Nice:   nice / total * 100,
	}
}

func delta(previous, fresh uint64) float64 {
	if fresh < previous {
		return 0
	}

	return float64(fresh - previous)
}

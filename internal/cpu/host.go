package cpu

import (
	stderrors "errors"
	"math"

	pscpu "github.com/shirou/gopsutil/v3/cpu"
)

// USER_HZ; gopsutil reports seconds
const ticksPerSecond = 100

var errNoTimes = stderrors.New("no aggregate CPU times reported")

// HostTicks reads the host-wide counters through gopsutil.
type HostTicks struct{}

// Ticks folds the extra Linux categories into the four reported ones:
// iowait counts as idle, irq, softirq and steal as system.
func (HostTicks) Ticks() (Ticks, error) {
	times, err := pscpu.Times(false)
	if err != nil {
		return Ticks{}, err
	}
	if len(times) == 0 {
		return Ticks{}, errNoTimes
	}

	return fromTimesStat(times[0]), nil
}

func fromTimesStat(t pscpu.TimesStat) Ticks {
	return Ticks{
		System: toTicks(t.System + t.Irq + t.Softirq + t.Steal),
		User:   toTicks(t.User),
		Idle:   toTicks(t.Idle + t.Iowait),
		Nice:   toTicks(t.Nice),
	}
}

func toTicks(seconds float64) uint64 {
	if seconds <= 0 || math.IsNaN(seconds) {
		return 0
	}

	return uint64(math.Round(seconds * ticksPerSecond))
}

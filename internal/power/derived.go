package power

import (
	"fmt"
	"math"
)

// UnknownTime is the rendering of an unknown remaining time.
const UnknownTime = "-:--"

// Registries report "no estimate" with large sentinels (65535 on macOS).
const maxTimeRemaining = 0xFFFF

// Percent returns round(current/maxCapacity*100), clamped to [0, 100].
// A non-positive maxCapacity yields 0.
func Percent(current, maxCapacity int) int {
	if maxCapacity <= 0 {
		return 0
	}

	pct := math.Round(float64(current) / float64(maxCapacity) * 100)

	return int(math.Max(0, math.Min(100, pct)))
}

// Classify derives the charge state. External power wins over the charge
// flags, then a full battery, then charging.
func Classify(externallyPowered, fullyCharged, charging bool) ChargeState {
	switch {
	case externallyPowered:
		return StateOnAC
	case fullyCharged:
		return StateCharged
	case charging:
		return StateCharging
	default:
		return StateOnBattery
	}
}

// FormatTimeRemaining renders minutes as H:MM, or UnknownTime for negative
// and sentinel values.
func FormatTimeRemaining(minutes int) string {
	if minutes < 0 || minutes >= maxTimeRemaining {
		return UnknownTime
	}

	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// Package display turns power and CPU readings into status bar strings.
package display

import (
	"fmt"
	"strings"
	"time"

	"codeberg.org/mutker/statusbar/internal/cpu"
	"codeberg.org/mutker/statusbar/internal/power"
)

// Placeholder is shown in place of a segment whose reading failed.
const Placeholder = "--"

// Icons maps each charge state to a glyph.
type Icons struct {
	OnAC      string
	Charged   string
	Charging  string
	OnBattery string
}

var (
	EmojiIcons = Icons{OnAC: "🔌", Charged: "🔋", Charging: "⚡️", OnBattery: "B"}
	ASCIIIcons = Icons{OnAC: "AC", Charged: "FULL", Charging: "CHG", OnBattery: "BAT"}
)

// IconsFor returns the icon set called name, falling back to emoji.
func IconsFor(name string) Icons {
	if strings.EqualFold(name, "ascii") {
		return ASCIIIcons
	}
	return EmojiIcons
}

// For returns the glyph of state.
func (i Icons) For(state power.ChargeState) string {
	switch state {
	case power.StateOnAC:
		return i.OnAC
	case power.StateCharged:
		return i.Charged
	case power.StateCharging:
		return i.Charging
	default:
		return i.OnBattery
	}
}

// BatteryIcon returns the glyph of state in the icon set called set.
func BatteryIcon(state power.ChargeState, set string) string {
	return IconsFor(set).For(state)
}

// CPU renders "C NN%" from system plus user time.
func CPU(usage cpu.Usage, err error) string {
	if err != nil {
		return Placeholder
	}

	return fmt.Sprintf("C %.0f%%", usage.Busy())
}

// Battery renders "<icon> NN%", followed by the remaining time while the
// battery is in use and an estimate exists.
func Battery(r power.Reading, err error, icons Icons) string {
	if err != nil {
		return Placeholder
	}

	state := r.State()
	s := fmt.Sprintf("%s %d%%", icons.For(state), r.Percent())

	if state == power.StateOnBattery || state == power.StateCharging {
		if remaining := r.FormattedTimeRemaining(); remaining != power.UnknownTime {
			s += " " + remaining
		}
	}

	return s
}

// Clock renders the ordinal day of month and a 12-hour time, e.g. "19th 3:04".
func Clock(t time.Time) string {
	return Ordinal(t.Day()) + " " + t.Format("3:04")
}

// Ordinal returns n with its English ordinal suffix.
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}

	return fmt.Sprintf("%d%s", n, suffix)
}

package display_test

import (
	stderrors "errors"
	"testing"
	"time"

	"codeberg.org/mutker/statusbar/internal/cpu"
	"codeberg.org/mutker/statusbar/internal/display"
	"codeberg.org/mutker/statusbar/internal/power"
	"github.com/stretchr/testify/assert"
)

var errRead = stderrors.New("read failed")

func TestIcons(t *testing.T) {
	icons := display.EmojiIcons

	assert.Equal(t, "🔌", icons.For(power.StateOnAC))
	assert.Equal(t, "🔋", icons.For(power.StateCharged))
	assert.Equal(t, "⚡️", icons.For(power.StateCharging))
	assert.Equal(t, "B", icons.For(power.StateOnBattery))

	assert.Equal(t, display.ASCIIIcons, display.IconsFor("ascii"))
	assert.Equal(t, display.ASCIIIcons, display.IconsFor("ASCII"))
	assert.Equal(t, display.EmojiIcons, display.IconsFor("emoji"))
	assert.Equal(t, display.EmojiIcons, display.IconsFor(""))

	assert.Equal(t, "CHG", display.BatteryIcon(power.StateCharging, "ascii"))
	assert.Equal(t, "🔌", display.BatteryIcon(power.StateOnAC, "emoji"))
}

func TestCPU(t *testing.T) {
	assert.Equal(t, "C 50%", display.CPU(cpu.Usage{System: 25, User: 25, Idle: 25, Nice: 25}, nil))
	assert.Equal(t, "C 0%", display.CPU(cpu.Usage{}, nil))
	assert.Equal(t, "C 13%", display.CPU(cpu.Usage{System: 6.2, User: 6.7}, nil))
	assert.Equal(t, display.Placeholder, display.CPU(cpu.Usage{System: 10}, errRead))
}

func TestBattery(t *testing.T) {
	tests := []struct {
		name    string
		reading power.Reading
		want    string
	}{
		{
			name:    "plugged in hides time",
			reading: power.Reading{ExternallyPowered: true, CurrentCapacity: 42, MaxCapacity: 60, TimeRemaining: 30},
			want:    "AC 70%",
		},
		{
			name:    "charged",
			reading: power.Reading{FullyCharged: true, CurrentCapacity: 60, MaxCapacity: 60},
			want:    "FULL 100%",
		},
		{
			name:    "charging shows time to full",
			reading: power.Reading{Charging: true, CurrentCapacity: 30, MaxCapacity: 60, TimeRemaining: 45},
			want:    "CHG 50% 0:45",
		},
		{
			name:    "on battery",
			reading: power.Reading{CurrentCapacity: 42, MaxCapacity: 60, TimeRemaining: 210},
			want:    "BAT 70% 3:30",
		},
		{
			name:    "on battery without estimate",
			reading: power.Reading{CurrentCapacity: 42, MaxCapacity: 60, TimeRemaining: power.UnknownTimeRemaining},
			want:    "BAT 70%",
		},
		{
			name:    "zero max capacity",
			reading: power.Reading{CurrentCapacity: 42, TimeRemaining: 65535},
			want:    "BAT 0%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, display.Battery(tt.reading, nil, display.ASCIIIcons))
		})
	}

	assert.Equal(t, display.Placeholder, display.Battery(power.Reading{}, errRead, display.EmojiIcons))
}

func TestOrdinal(t *testing.T) {
	want := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 10: "10th",
		11: "11th", 12: "12th", 13: "13th", 21: "21st", 22: "22nd",
		23: "23rd", 31: "31st", 111: "111th", 101: "101st",
	}

	for n, s := range want {
		assert.Equal(t, s, display.Ordinal(n))
	}
}

func TestClock(t *testing.T) {
	assert.Equal(t, "19th 3:04", display.Clock(time.Date(2026, 10, 19, 15, 4, 0, 0, time.UTC)))
	assert.Equal(t, "1st 12:30", display.Clock(time.Date(2026, 11, 1, 0, 30, 0, 0, time.UTC)))
}

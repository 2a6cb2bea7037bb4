package power_test

import (
	stderrors "errors"
	"testing"

	"codeberg.org/mutker/statusbar/internal/errors"
	"codeberg.org/mutker/statusbar/internal/logger"
	"codeberg.org/mutker/statusbar/internal/power"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ioregListing = `+-o AppleSmartBattery  <class AppleSmartBattery, id 0x100000254, registered, matched, active, busy 0 (0 ms), retain 7>
    {
      "TimeRemaining" = 65535
      "AvgTimeToEmpty" = 65535
      "ExternalConnected" = Yes
      "IsCharging" = No
      "FullyCharged" = Yes
      "CurrentCapacity" = 42
      "MaxCapacity" = 60
      "BatteryData" = {"CycleCount"=181,"MaxCapacity"=99}
    }
`

func TestIORegRegistry(t *testing.T) {
	var names []string
	listing := ioregListing
	reg := power.NewIORegRegistry(func(name string) ([]byte, error) {
		names = append(names, name)
		return []byte(listing), nil
	})

	src := power.NewSource(reg, "AppleSmartBattery", logger.Nop())
	require.NoError(t, src.Open())

	r, err := src.Read()
	require.NoError(t, err)
	assert.Equal(t, power.Reading{
		ExternallyPowered: true,
		CurrentCapacity:   42,
		MaxCapacity:       60,
		FullyCharged:      true,
		Charging:          false,
		TimeRemaining:     power.UnknownTimeRemaining,
	}, r)
	assert.Equal(t, 70, r.Percent())
	assert.Equal(t, power.StateOnAC, r.State())
	assert.Equal(t, []string{"AppleSmartBattery"}, names, "one listing serves open and read")

	require.NoError(t, src.Close())
	require.NoError(t, src.Open())
	assert.Len(t, names, 2, "reopen fetches a fresh listing")
}

func TestIORegNoService(t *testing.T) {
	reg := power.NewIORegRegistry(func(string) ([]byte, error) {
		return nil, nil
	})

	err := power.NewSource(reg, "AppleSmartBattery", logger.Nop()).Open()
	assert.True(t, errors.HasCode(err, power.ErrServiceNotFound))
}

func TestIORegRunFailure(t *testing.T) {
	cause := stderrors.New("exec: ioreg not found")
	reg := power.NewIORegRegistry(func(string) ([]byte, error) {
		return nil, cause
	})

	err := power.NewSource(reg, "AppleSmartBattery", logger.Nop()).Open()
	assert.True(t, errors.HasCode(err, power.ErrLookupFailed))
	assert.ErrorIs(t, err, cause)
}

func TestIORegBadValue(t *testing.T) {
	reg := power.NewIORegRegistry(func(string) ([]byte, error) {
		return []byte(`  "IsCharging" = Maybe
  "CurrentCapacity" = lots
`), nil
	})
	src := power.NewSource(reg, "AppleSmartBattery", logger.Nop())
	require.NoError(t, src.Open())

	_, err := src.IsCharging()
	assert.True(t, errors.HasCode(err, power.ErrReadFailed))
	_, err = src.CurrentCapacity()
	assert.True(t, errors.HasCode(err, power.ErrReadFailed))
	_, err = src.MaxCapacity()
	assert.True(t, errors.HasCode(err, power.ErrReadFailed), "missing key")
}

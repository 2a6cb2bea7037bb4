//go:build windows

package power

// Win32_Battery.EstimatedRunTime while on AC or still estimating
const win32UnknownRunTime = 71582788

// Win32_Battery.BatteryStatus values
const (
	win32StatusDischarging      = 1
	win32StatusOnAC             = 2
	win32StatusFullyCharged     = 3
	win32StatusCharging         = 6
	win32StatusChargingHigh     = 7
	win32StatusChargingLow      = 8
	win32StatusChargingCritical = 9
	win32StatusPartiallyCharged = 11
)

func win32ExternallyPowered(status uint16) bool {
	switch status {
	case win32StatusOnAC, win32StatusFullyCharged, win32StatusCharging, win32StatusChargingHigh,
		win32StatusChargingLow, win32StatusChargingCritical, win32StatusPartiallyCharged:
		return true
	default:
		return false
	}
}

func win32Charging(status uint16) bool {
	return status >= win32StatusCharging && status <= win32StatusChargingCritical
}

func win32TimeRemaining(runTime *uint32) int {
	if runTime == nil || *runTime == win32UnknownRunTime {
		return UnknownTimeRemaining
	}

	return int(*runTime)
}

//go:build linux

package power

// DefaultServiceName matches the first battery supply.
const DefaultServiceName = "BAT*"

// NewSystemRegistry returns the sysfs power supply registry.
func NewSystemRegistry() Registry {
	return NewSysfsRegistry(SysfsRoot)
}

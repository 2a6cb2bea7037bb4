//go:build darwin

package power

import "os/exec"

// DefaultServiceName is the IOKit battery service.
const DefaultServiceName = "AppleSmartBattery"

// NewSystemRegistry returns the IOKit registry as listed by ioreg.
func NewSystemRegistry() Registry {
	return NewIORegRegistry(func(name string) ([]byte, error) {
		return exec.Command("ioreg", "-r", "-n", name, "-d", "1").Output()
	})
}

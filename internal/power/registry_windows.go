//go:build windows

package power

import (
	"fmt"
	"strings"

	"github.com/yusufpapurcu/wmi"
)

// DefaultServiceName matches any battery.
const DefaultServiceName = ""

const win32BatteryQuery = "SELECT DeviceID, EstimatedChargeRemaining, BatteryStatus, EstimatedRunTime FROM Win32_Battery"

type win32Battery struct {
	DeviceID                 string
	EstimatedChargeRemaining uint16
	BatteryStatus            uint16
	EstimatedRunTime         *uint32
}

type wmiRegistry struct {
	snapshots *snapshots
}

// NewSystemRegistry returns the WMI Win32_Battery registry.
func NewSystemRegistry() Registry {
	return &wmiRegistry{snapshots: newSnapshots(snapshotTTL)}
}

func (r *wmiRegistry) Lookup(name string) (Service, error) {
	r.snapshots.forget(name)

	if _, err := r.battery(name); err != nil {
		return nil, err
	}

	return &wmiService{name: name, registry: r}, nil
}

func (r *wmiRegistry) battery(name string) (win32Battery, error) {
	v, err := r.snapshots.get(name, func() (any, error) {
		return queryBattery(name)
	})
	if err != nil {
		return win32Battery{}, err
	}

	return v.(win32Battery), nil
}

// queryBattery returns the first battery whose DeviceID equals name, or the
// first battery when name is empty.
func queryBattery(name string) (win32Battery, error) {
	var dst []win32Battery
	if err := wmi.Query(win32BatteryQuery, &dst); err != nil {
		return win32Battery{}, fmt.Errorf("wmi Win32_Battery query failed: %w", err)
	}

	for _, b := range dst {
		if name == "" || strings.EqualFold(strings.TrimSpace(b.DeviceID), name) {
			return b, nil
		}
	}

	return win32Battery{}, ErrNoService
}

type wmiService struct {
	name     string
	registry *wmiRegistry
}

func (s *wmiService) Bool(attr Attribute) (bool, error) {
	b, err := s.registry.battery(s.name)
	if err != nil {
		return false, err
	}

	switch attr {
	case ExternallyPowered:
		return win32ExternallyPowered(b.BatteryStatus), nil
	case FullyCharged:
		return b.BatteryStatus == win32StatusFullyCharged, nil
	case Charging:
		return win32Charging(b.BatteryStatus), nil
	default:
		return false, fmt.Errorf("%s is not a boolean attribute", attr)
	}
}

func (s *wmiService) Int(attr Attribute) (int, error) {
	b, err := s.registry.battery(s.name)
	if err != nil {
		return 0, err
	}

	switch attr {
	case CurrentCapacity:
		return int(b.EstimatedChargeRemaining), nil
	case MaxCapacity:
		return 100, nil
	case TimeRemaining:
		return win32TimeRemaining(b.EstimatedRunTime), nil
	default:
		return 0, fmt.Errorf("%s is not an integer attribute", attr)
	}
}

// Release drops the cached query result; WMI holds no connection between
// reads.
func (s *wmiService) Release() error {
	s.registry.snapshots.forget(s.name)
	return nil
}

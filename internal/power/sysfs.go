package power

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const (
	// SysfsRoot is where Linux exposes power supplies.
	SysfsRoot = "/sys/class/power_supply"

	supplyTypeBattery = "Battery"

	statusCharging    = "Charging"
	statusFull        = "Full"
	statusNotCharging = "Not charging"
)

// capacity sources in order of preference: now file, full file
var capacityFiles = [][2]string{
	{"energy_now", "energy_full"},
	{"charge_now", "charge_full"},
	{"capacity", ""},
}

type sysfsRegistry struct {
	root string
}

// NewSysfsRegistry returns a Registry over the power supplies under root.
// Service names are glob patterns matched against supply directory names;
// only supplies of type Battery match.
func NewSysfsRegistry(root string) Registry {
	return &sysfsRegistry{root: root}
}

func (r *sysfsRegistry) Lookup(name string) (Service, error) {
	if name == "" {
		name = "*"
	}

	matches, err := filepath.Glob(filepath.Join(r.root, name))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	for _, path := range matches {
		kind, err := readString(filepath.Join(path, "type"))
		if err != nil || kind != supplyTypeBattery {
			continue
		}

		dir, err := os.Open(path)
		if err != nil {
			return nil, err
		}

		return &sysfsService{root: r.root, path: path, dir: dir}, nil
	}

	return nil, ErrNoService
}

type sysfsService struct {
	root string
	path string
	dir  *os.File
}

func (s *sysfsService) Bool(attr Attribute) (bool, error) {
	switch attr {
	case ExternallyPowered:
		return s.externallyPowered()
	case FullyCharged:
		status, err := s.status()
		return status == statusFull, err
	case Charging:
		status, err := s.status()
		return status == statusCharging, err
	default:
		return false, fmt.Errorf("%s is not a boolean attribute", attr)
	}
}

func (s *sysfsService) Int(attr Attribute) (int, error) {
	switch attr {
	case CurrentCapacity:
		now, _, err := s.capacitySource()
		if err != nil {
			return 0, err
		}
		return readInt(s.file(now))
	case MaxCapacity:
		_, full, err := s.capacitySource()
		if err != nil {
			return 0, err
		}
		if full == "" {
			return 100, nil
		}
		return readInt(s.file(full))
	case TimeRemaining:
		return s.timeRemaining()
	default:
		return 0, fmt.Errorf("%s is not an integer attribute", attr)
	}
}

func (s *sysfsService) Release() error {
	return s.dir.Close()
}

func (s *sysfsService) file(name string) string {
	return filepath.Join(s.path, name)
}

func (s *sysfsService) status() (string, error) {
	return readString(s.file("status"))
}

// capacitySource picks the first now/full pair the battery exposes so that
// current and maximum are always read in the same unit.
func (s *sysfsService) capacitySource() (now, full string, err error) {
	for _, pair := range capacityFiles {
		if _, err := os.Stat(s.file(pair[0])); err == nil {
			return pair[0], pair[1], nil
		}
	}

	return "", "", fmt.Errorf("%s exposes no capacity", s.path)
}

// externallyPowered checks the adapters next to the battery. Without any
// adapter entries it falls back on the battery status.
func (s *sysfsService) externallyPowered() (bool, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return false, err
	}

	adapters := 0
	for _, entry := range entries {
		supply := filepath.Join(s.root, entry.Name())
		kind, err := readString(filepath.Join(supply, "type"))
		if err != nil || kind == supplyTypeBattery {
			continue
		}

		online, err := readInt(filepath.Join(supply, "online"))
		if err != nil {
			continue
		}
		adapters++
		if online == 1 {
			return true, nil
		}
	}

	if adapters > 0 {
		return false, nil
	}

	status, err := s.status()
	if err != nil {
		return false, err
	}

	return status == statusCharging || status == statusFull || status == statusNotCharging, nil
}

// timeRemaining returns minutes to empty, or to full while charging.
func (s *sysfsService) timeRemaining() (int, error) {
	status, err := s.status()
	if err != nil {
		return 0, err
	}

	charging := status == statusCharging
	if status != statusCharging && status != "Discharging" {
		return UnknownTimeRemaining, nil
	}

	name := "time_to_empty_now"
	if charging {
		name = "time_to_full_now"
	}
	if seconds, err := readInt(s.file(name)); err == nil {
		return seconds / 60, nil
	} else if !stderrors.Is(err, fs.ErrNotExist) {
		return 0, err
	}

	return s.estimateTimeRemaining(charging), nil
}

// estimateTimeRemaining derives minutes from the charge level and the
// present rate. Energy pairs with power, charge with current.
func (s *sysfsService) estimateTimeRemaining(charging bool) int {
	for _, pair := range [][3]string{
		{"energy_now", "energy_full", "power_now"},
		{"charge_now", "charge_full", "current_now"},
	} {
		now, err := readInt(s.file(pair[0]))
		if err != nil {
			continue
		}
		full, err := readInt(s.file(pair[1]))
		if err != nil {
			continue
		}
		rate, err := readInt(s.file(pair[2]))
		if err != nil {
			continue
		}
		if rate < 0 {
			rate = -rate
		}
		if rate == 0 {
			return UnknownTimeRemaining
		}

		remaining := now
		if charging {
			remaining = full - now
		}

		return max(0, remaining) * 60 / rate
	}

	return UnknownTimeRemaining
}

func readString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(data)), nil
}

func readInt(path string) (int, error) {
	s, err := readString(path)
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(s)
}

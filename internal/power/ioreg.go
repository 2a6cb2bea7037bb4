package power

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strconv"
)

// ioreg reports 65535 minutes while the estimate is still being computed
const ioregUnknownTime = 65535

var ioregProperty = regexp.MustCompile(`^[\s|]*"([^"]+)"\s*=\s*(.+?)\s*$`)

// IORegRunner returns the ioreg listing of the service called name.
type IORegRunner func(name string) ([]byte, error)

type ioregRegistry struct {
	run       IORegRunner
	snapshots *snapshots
}

// NewIORegRegistry returns a Registry over ioreg listings produced by run.
// One listing serves every read made within snapshotTTL.
func NewIORegRegistry(run IORegRunner) Registry {
	return &ioregRegistry{run: run, snapshots: newSnapshots(snapshotTTL)}
}

func (r *ioregRegistry) Lookup(name string) (Service, error) {
	r.snapshots.forget(name)

	props, err := r.properties(name)
	if err != nil {
		return nil, err
	}

	if len(props) == 0 {
		return nil, ErrNoService
	}

	return &ioregService{name: name, registry: r}, nil
}

func (r *ioregRegistry) properties(name string) (map[string]string, error) {
	v, err := r.snapshots.get(name, func() (any, error) {
		out, err := r.run(name)
		if err != nil {
			return nil, err
		}
		return parseIORegProperties(out), nil
	})
	if err != nil {
		return nil, err
	}

	return v.(map[string]string), nil
}

type ioregService struct {
	name     string
	registry *ioregRegistry
}

func (s *ioregService) property(attr Attribute) (string, error) {
	props, err := s.registry.properties(s.name)
	if err != nil {
		return "", err
	}

	v, ok := props[attr.String()]
	if !ok {
		return "", fmt.Errorf("%s missing from %s", attr, s.name)
	}

	return v, nil
}

func (s *ioregService) Bool(attr Attribute) (bool, error) {
	v, err := s.property(attr)
	if err != nil {
		return false, err
	}

	switch v {
	case "Yes":
		return true, nil
	case "No":
		return false, nil
	default:
		return false, fmt.Errorf("%s: unexpected value %q", attr, v)
	}
}

func (s *ioregService) Int(attr Attribute) (int, error) {
	v, err := s.property(attr)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", attr, err)
	}

	if attr == TimeRemaining && n == ioregUnknownTime {
		return UnknownTimeRemaining, nil
	}

	return n, nil
}

// Release drops the cached listing; ioreg holds nothing open.
func (s *ioregService) Release() error {
	s.registry.snapshots.forget(s.name)
	return nil
}

// parseIORegProperties extracts the top-level "Key" = value lines.
func parseIORegProperties(out []byte) map[string]string {
	props := make(map[string]string)

	scanner := bufio.NewScanner(bytes.NewReader(out))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		m := ioregProperty.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		if _, seen := props[m[1]]; !seen {
			props[m[1]] = m[2]
		}
	}

	return props
}

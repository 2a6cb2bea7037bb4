package power

import stderrors "errors"

// ErrNoService is returned by a Registry when no battery service matches.
var ErrNoService = stderrors.New("no matching power service")

// Registry resolves battery services by name on the host.
type Registry interface {
	// Lookup returns ErrNoService when nothing matches name.
	Lookup(name string) (Service, error)
}

// Service is an opened battery service. Reads query the host, or a snapshot
// of it no older than snapshotTTL.
type Service interface {
	Bool(attr Attribute) (bool, error)
	Int(attr Attribute) (int, error)
	Release() error
}

// Attribute is one of the six battery properties a Service exposes.
type Attribute int

const (
	ExternallyPowered Attribute = iota
	CurrentCapacity
	MaxCapacity
	FullyCharged
	Charging
	TimeRemaining
)

// Kind is the value type of an Attribute.
type Kind int

const (
	KindBool Kind = iota
	KindInt
)

var attributeNames = [...]string{
	ExternallyPowered: "ExternalConnected",
	CurrentCapacity:   "CurrentCapacity",
	MaxCapacity:       "MaxCapacity",
	FullyCharged:      "FullyCharged",
	Charging:          "IsCharging",
	TimeRemaining:     "TimeRemaining",
}

// String returns the registry key of the attribute.
func (a Attribute) String() string {
	if a < 0 || int(a) >= len(attributeNames) {
		return "Unknown"
	}
	return attributeNames[a]
}

// Kind returns the value type of the attribute.
func (a Attribute) Kind() Kind {
	switch a {
	case CurrentCapacity, MaxCapacity, TimeRemaining:
		return KindInt
	default:
		return KindBool
	}
}

// ChargeState classifies the battery for icon selection.
type ChargeState int

const (
	StateOnBattery ChargeState = iota
	StateCharging
	StateCharged
	StateOnAC
)

func (s ChargeState) String() string {
	switch s {
	case StateOnAC:
		return "on AC"
	case StateCharged:
		return "charged"
	case StateCharging:
		return "charging"
	default:
		return "on battery"
	}
}

// UnknownTimeRemaining is returned by registries that cannot estimate the
// remaining time.
const UnknownTimeRemaining = -1

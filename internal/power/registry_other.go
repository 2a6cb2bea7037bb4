//go:build !linux && !darwin && !windows

package power

const DefaultServiceName = ""

type noRegistry struct{}

// NewSystemRegistry returns a registry without any battery service.
func NewSystemRegistry() Registry {
	return noRegistry{}
}

func (noRegistry) Lookup(string) (Service, error) {
	return nil, ErrNoService
}

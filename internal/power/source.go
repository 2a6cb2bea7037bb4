package power

import (
	"fmt"

	"codeberg.org/mutker/statusbar/internal/errors"
	"codeberg.org/mutker/statusbar/internal/logger"
)

// Source is a handle to one battery service. The zero state is unopened;
// Open binds it to a service and Close releases it again.
//
// A Source holds no lock. Callers sharing one across goroutines must
// serialize access.
type Source struct {
	registry Registry
	name     string
	service  Service
	logger   logger.Logger
}

// Reading is one pass over all six attributes.
type Reading struct {
	ExternallyPowered bool
	CurrentCapacity   int
	MaxCapacity       int
	FullyCharged      bool
	Charging          bool
	TimeRemaining     int
}

// NewSource creates an unopened Source for the service called name.
func NewSource(registry Registry, name string, log logger.Logger) *Source {
	return &Source{
		registry: registry,
		name:     name,
		logger:   log,
	}
}

// Open resolves the battery service. It fails with ErrAlreadyOpen when a
// service is already held and with ErrServiceNotFound when the host has
// no matching battery.
func (s *Source) Open() error {
	errFactory := errors.New()

	if s.service != nil {
		return errFactory.WithData(ErrAlreadyOpen, s.name)
	}

	svc, err := s.registry.Lookup(s.name)
	if errors.Is(err, ErrNoService) || (err == nil && svc == nil) {
		s.logger.Debug().Str("service", s.name).Msg("No battery service found")
		return errFactory.Wrap(ErrServiceNotFound, ErrNoService)
	}
	if err != nil {
		return errFactory.Wrap(ErrLookupFailed, err)
	}

	s.service = svc
	s.logger.Debug().Str("service", s.name).Msg("Power source opened")

	return nil
}

// Close releases the service. The Source is unopened afterwards even when
// the release reports ErrReleaseFailed.
func (s *Source) Close() error {
	errFactory := errors.New()

	if s.service == nil {
		return errFactory.New(ErrNotOpen)
	}

	svc := s.service
	s.service = nil

	if err := svc.Release(); err != nil {
		s.logger.Debug().Err(err).Str("service", s.name).Msg("Battery service release reported an error")
		return errFactory.Wrap(ErrReleaseFailed, err)
	}

	s.logger.Debug().Str("service", s.name).Msg("Power source closed")

	return nil
}

// IsOpen reports whether the Source currently holds a service.
func (s *Source) IsOpen() bool {
	return s.service != nil
}

// ReadBool queries a boolean attribute.
func (s *Source) ReadBool(attr Attribute) (bool, error) {
	if err := s.checkRead(attr, KindBool); err != nil {
		return false, err
	}

	v, err := s.service.Bool(attr)
	if err != nil {
		return false, errors.New().Wrap(ErrReadFailed, fmt.Errorf("%s: %w", attr, err))
	}

	return v, nil
}

// ReadInt queries an integer attribute.
func (s *Source) ReadInt(attr Attribute) (int, error) {
	if err := s.checkRead(attr, KindInt); err != nil {
		return 0, err
	}

	v, err := s.service.Int(attr)
	if err != nil {
		return 0, errors.New().Wrap(ErrReadFailed, fmt.Errorf("%s: %w", attr, err))
	}

	return v, nil
}

func (s *Source) checkRead(attr Attribute, kind Kind) error {
	errFactory := errors.New()

	if s.service == nil {
		return errFactory.WithData(ErrNotOpen, attr.String())
	}

	if attr.Kind() != kind {
		return errFactory.WithData(ErrAttributeType, attr.String())
	}

	return nil
}

func (s *Source) ExternallyPowered() (bool, error) {
	return s.ReadBool(ExternallyPowered)
}

func (s *Source) CurrentCapacity() (int, error) {
	return s.ReadInt(CurrentCapacity)
}

func (s *Source) MaxCapacity() (int, error) {
	return s.ReadInt(MaxCapacity)
}

func (s *Source) IsFullyCharged() (bool, error) {
	return s.ReadBool(FullyCharged)
}

func (s *Source) IsCharging() (bool, error) {
	return s.ReadBool(Charging)
}

// TimeRemaining returns minutes until empty (or full while charging), or a
// value FormatTimeRemaining renders as unknown.
func (s *Source) TimeRemaining() (int, error) {
	return s.ReadInt(TimeRemaining)
}

// ChargePercent reads both capacities and returns the rounded ratio.
// The two reads are not atomic.
func (s *Source) ChargePercent() (int, error) {
	current, err := s.CurrentCapacity()
	if err != nil {
		return 0, err
	}

	maxCapacity, err := s.MaxCapacity()
	if err != nil {
		return 0, err
	}

	return Percent(current, maxCapacity), nil
}

// ChargeState classifies the battery, reading only as many flags as needed.
func (s *Source) ChargeState() (ChargeState, error) {
	external, err := s.ExternallyPowered()
	if err != nil {
		return StateOnBattery, err
	}
	if external {
		return StateOnAC, nil
	}

	full, err := s.IsFullyCharged()
	if err != nil {
		return StateOnBattery, err
	}
	if full {
		return StateCharged, nil
	}

	charging, err := s.IsCharging()
	if err != nil {
		return StateOnBattery, err
	}

	return Classify(false, false, charging), nil
}

// FormattedTimeRemaining renders TimeRemaining as H:MM.
func (s *Source) FormattedTimeRemaining() (string, error) {
	minutes, err := s.TimeRemaining()
	if err != nil {
		return UnknownTime, err
	}

	return FormatTimeRemaining(minutes), nil
}

// Read queries all six attributes in one pass.
func (s *Source) Read() (Reading, error) {
	var (
		r   Reading
		err error
	)

	if r.ExternallyPowered, err = s.ExternallyPowered(); err != nil {
		return Reading{}, err
	}
	if r.CurrentCapacity, err = s.CurrentCapacity(); err != nil {
		return Reading{}, err
	}
	if r.MaxCapacity, err = s.MaxCapacity(); err != nil {
		return Reading{}, err
	}
	if r.FullyCharged, err = s.IsFullyCharged(); err != nil {
		return Reading{}, err
	}
	if r.Charging, err = s.IsCharging(); err != nil {
		return Reading{}, err
	}
	if r.TimeRemaining, err = s.TimeRemaining(); err != nil {
		return Reading{}, err
	}

	s.logger.Debug().
		Bool("external", r.ExternallyPowered).
		Int("current_capacity", r.CurrentCapacity).
		Int("max_capacity", r.MaxCapacity).
		Bool("fully_charged", r.FullyCharged).
		Bool("charging", r.Charging).
		Int("time_remaining", r.TimeRemaining).
		Msg("Battery read")

	return r, nil
}

// Percent returns the derived charge percentage of the reading.
func (r Reading) Percent() int {
	return Percent(r.CurrentCapacity, r.MaxCapacity)
}

// State returns the derived charge state of the reading.
func (r Reading) State() ChargeState {
	return Classify(r.ExternallyPowered, r.FullyCharged, r.Charging)
}

// FormattedTimeRemaining returns the H:MM rendering of the reading.
func (r Reading) FormattedTimeRemaining() string {
	return FormatTimeRemaining(r.TimeRemaining)
}

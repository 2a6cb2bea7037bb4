package config

import "time"

// Provider defines the interface for accessing configuration values
// All configuration values are immutable after loading
type Provider interface {
	// GetInterval returns the refresh interval of the status bar
	GetInterval() time.Duration

	// GetLogLevel returns the configured logging level
	GetLogLevel() LogLevel

	// IsMonitorMode returns whether headless monitor mode is enabled
	IsMonitorMode() bool

	// GetBattery returns the power service name, empty for the platform default
	GetBattery() string

	// GetIconSet returns the icon set used for the battery segment
	GetIconSet() IconSet

	// GetPIDFile returns the path of the single-instance PID file
	GetPIDFile() string
}

// LogLevel represents valid logging levels
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
)

// IsValid returns whether the log level is valid
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
		return true
	default:
		return false
	}
}

// String implements the Stringer interface
func (l LogLevel) String() string {
	return string(l)
}

// IconSet selects the glyphs used for the charge state
type IconSet string

const (
	IconSetEmoji IconSet = "emoji"
	IconSetASCII IconSet = "ascii"
)

// IsValid returns whether the icon set is known
func (s IconSet) IsValid() bool {
	return s == IconSetEmoji || s == IconSetASCII
}

// String implements the Stringer interface
func (s IconSet) String() string {
	return string(s)
}

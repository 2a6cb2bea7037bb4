package cpu

import "codeberg.org/mutker/statusbar/internal/errors"

const (
	ErrTelemetryUnavailable = errors.ErrorCode("cpu_telemetry_unavailable")
)

func init() {
	errors.RegisterMessages(map[errors.ErrorCode]string{
		ErrTelemetryUnavailable: "CPU tick counters unavailable",
	})
}

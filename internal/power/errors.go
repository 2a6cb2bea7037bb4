package power

import "codeberg.org/mutker/statusbar/internal/errors"

const (
	// Lifecycle Errors
	ErrAlreadyOpen     = errors.ErrorCode("power_already_open")
	ErrServiceNotFound = errors.ErrorCode("power_service_not_found")
	ErrLookupFailed    = errors.ErrorCode("power_lookup_failed")
	ErrNotOpen         = errors.ErrorCode("power_not_open")
	ErrReleaseFailed   = errors.ErrorCode("power_release_failed")

	// Attribute Errors
	ErrReadFailed    = errors.ErrorCode("power_read_failed")
	ErrAttributeType = errors.ErrorCode("power_attribute_type_mismatch")
)

func init() {
	errors.RegisterMessages(map[errors.ErrorCode]string{
		ErrAlreadyOpen:     "Power source is already open",
		ErrServiceNotFound: "No battery service found",
		ErrLookupFailed:    "Failed to look up battery service",
		ErrNotOpen:         "Power source is not open",
		ErrReleaseFailed:   "Failed to release battery service",
		ErrReadFailed:      "Failed to read battery attribute",
		ErrAttributeType:   "Battery attribute read with the wrong type",
	})
}

package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrSlotConflict      = errors.New("slot no longer available")
	ErrBookingNotActive  = errors.New("booking is not active")
	ErrBookingInPast     = errors.New("booking start time is in the past")
	ErrOutsideWindow     = errors.New("date outside advance booking window")
	ErrInvalidDuration   = errors.New("duration outside allowed bounds")
	ErrNothingChanged    = errors.New("no changes to apply")

	// Auth errors
	ErrOTPInvalid       = errors.New("invalid or expired code")
	ErrOTPCooldown      = errors.New("code requested too soon")
	ErrTooManyAttempts  = errors.New("too many verification attempts")
	ErrDeviceNotTrusted = errors.New("device not trusted")
	ErrNotAuthorized    = errors.New("not authorized")

	// Validation errors
	ErrValidation = errors.New("validation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

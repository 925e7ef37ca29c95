package commands

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep the command layer off the read-side query types.

// TrustedDevice is a device fingerprint previously verified via OTP for a
// phone number. The fingerprint is stored bcrypt-hashed; matching walks the
// phone's devices.
type TrustedDevice struct {
	ID              uuid.UUID
	Phone           string
	FingerprintHash string
	DeviceName      string
	TrustedAt       time.Time
}

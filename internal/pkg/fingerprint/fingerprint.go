package fingerprint

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("fingerprint hashing failed")
	ErrComparisonFailed = errors.New("fingerprint comparison failed")
	ErrInvalidValue     = errors.New("invalid fingerprint")
)

const DefaultCost = bcrypt.DefaultCost

// Hash hashes a raw device fingerprint for storage. Fingerprints are treated
// like credentials: a database leak must not yield replayable values.
func Hash(raw string) (string, error) {
	if raw == "" {
		return "", ErrInvalidValue
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(raw), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func Compare(hashed, raw string) error {
	if hashed == "" || raw == "" {
		return ErrInvalidValue
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(raw))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}

package commands

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"studiobooking/internal/domain/booking"
	reqdto "studiobooking/internal/handler/dto/request"
	"studiobooking/internal/pkg/clock"
	"studiobooking/internal/pkg/config"
	"studiobooking/internal/pkg/errs"
	"studiobooking/internal/pkg/fingerprint"
	"studiobooking/internal/pkg/jwt"

	"github.com/google/uuid"
)

type OTPStore interface {
	// SaveCode atomically arms the resend cooldown and stores the code.
	// It reports false, without storing anything, when the cooldown was
	// already armed by a concurrent send.
	SaveCode(ctx context.Context, phone, code string, ttl, cooldown time.Duration) (bool, error)
	CooldownRemaining(ctx context.Context, phone string) (time.Duration, error)
	GetCode(ctx context.Context, phone string) (string, error)
	RecordFailedAttempt(ctx context.Context, phone string, ttl time.Duration) (int64, error)
	ClearCode(ctx context.Context, phone string) error
}

type OTPSender interface {
	SendCode(ctx context.Context, phone, code string) error
}

type TrustedDeviceRepository interface {
	Save(ctx context.Context, d TrustedDevice) error
	FindByPhone(ctx context.Context, phone string) ([]TrustedDevice, error)
	DeleteExpired(ctx context.Context, phone string, cutoff time.Time) (int64, error)
}

type DeviceHashCache interface {
	Get(ctx context.Context, phone string) ([]string, bool, error)
	Set(ctx context.Context, phone string, hashes []string) error
	Invalidate(ctx context.Context, phone string) error
}

type SessionTokenIssuer interface {
	GenerateSessionToken(phone string, verifiedBy jwt.VerifiedBy) (string, error)
}

// AuthResult is a minted booking session.
type AuthResult struct {
	Token      string
	VerifiedBy jwt.VerifiedBy
}

// SendOTPResult carries the authoritative resend cooldown for Retry-After.
type SendOTPResult struct {
	RetryAfter time.Duration
}

type AuthCommands interface {
	// SendOTP issues a fresh code unless the per-phone cooldown is still
	// running; a cooldown hit carries the remaining wait.
	SendOTP(ctx context.Context, req reqdto.SendOTPRequest) (*SendOTPResult, error)
	// VerifyOTP checks the code, trusts the presenting device and mints a
	// session. Wrong-code and expired-code failures are indistinguishable
	// to the caller.
	VerifyOTP(ctx context.Context, req reqdto.VerifyOTPRequest) (*AuthResult, error)
	// VerifyDevice mints a session without a code when the presented
	// fingerprint matches a trusted device for the phone.
	VerifyDevice(ctx context.Context, req reqdto.VerifyDeviceRequest) (*AuthResult, error)
}

type authCommandsImpl struct {
	otp     OTPStore
	sender  OTPSender
	devices TrustedDeviceRepository
	cache   DeviceHashCache
	tokens  SessionTokenIssuer
	cfg     config.OTPConfig
	clock   clock.Clock
}

func NewAuthCommands(
	otp OTPStore,
	sender OTPSender,
	devices TrustedDeviceRepository,
	cache DeviceHashCache,
	tokens SessionTokenIssuer,
	cfg config.OTPConfig,
	clock clock.Clock,
) AuthCommands {
	return &authCommandsImpl{
		otp:     otp,
		sender:  sender,
		devices: devices,
		cache:   cache,
		tokens:  tokens,
		cfg:     cfg,
		clock:   clock,
	}
}

func (a *authCommandsImpl) SendOTP(ctx context.Context, req reqdto.SendOTPRequest) (*SendOTPResult, error) {
	phone, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	code, err := generateCode()
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate otp code")
	}
	armed, err := a.otp.SaveCode(ctx, phone.String(), code, a.cfg.TTL, a.cfg.Cooldown)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !armed {
		remaining, err := a.otp.CooldownRemaining(ctx, phone.String())
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return &SendOTPResult{RetryAfter: remaining}, errs.Mark(errs.New("resend cooldown active"), errs.ErrOTPCooldown)
	}
	if err := a.sender.SendCode(ctx, phone.String(), code); err != nil {
		return nil, errs.Wrap(err, "failed to send otp code")
	}

	return &SendOTPResult{RetryAfter: a.cfg.Cooldown}, nil
}

func (a *authCommandsImpl) VerifyOTP(ctx context.Context, req reqdto.VerifyOTPRequest) (*AuthResult, error) {
	phone, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	stored, err := a.otp.GetCode(ctx, phone.String())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	// An expired code and a wrong code fail the same way.
	if stored == "" {
		return nil, errs.Mark(errs.New("no pending code"), errs.ErrOTPInvalid)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(req.Code)) != 1 {
		attempts, recErr := a.otp.RecordFailedAttempt(ctx, phone.String(), a.cfg.TTL)
		if recErr != nil {
			return nil, errs.Mark(recErr, errs.ErrDatabaseOperationFailed)
		}
		if attempts >= int64(a.cfg.MaxAttempts) {
			if clearErr := a.otp.ClearCode(ctx, phone.String()); clearErr != nil {
				slog.Warn("failed to clear otp after max attempts", "error", clearErr.Error())
			}
			return nil, errs.Mark(errs.New("attempt limit reached"), errs.ErrTooManyAttempts)
		}
		return nil, errs.Mark(errs.New("code mismatch"), errs.ErrOTPInvalid)
	}

	if err := a.otp.ClearCode(ctx, phone.String()); err != nil {
		slog.Warn("failed to clear verified otp", "error", err.Error())
	}

	if err := a.trustDevice(ctx, phone, req.DeviceFingerprint, req.DeviceName); err != nil {
		// The customer still verified; device trust is best effort.
		slog.Warn("failed to register trusted device", "error", err.Error())
	}

	token, err := a.tokens.GenerateSessionToken(phone.String(), jwt.VerifiedByOTP)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate session token")
	}
	return &AuthResult{Token: token, VerifiedBy: jwt.VerifiedByOTP}, nil
}

func (a *authCommandsImpl) VerifyDevice(ctx context.Context, req reqdto.VerifyDeviceRequest) (*AuthResult, error) {
	phone, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	hashes, err := a.trustedHashes(ctx, phone.String())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	for _, h := range hashes {
		if fingerprint.Compare(h, req.DeviceFingerprint) == nil {
			token, err := a.tokens.GenerateSessionToken(phone.String(), jwt.VerifiedByDevice)
			if err != nil {
				return nil, errs.Wrap(err, "failed to generate session token")
			}
			return &AuthResult{Token: token, VerifiedBy: jwt.VerifiedByDevice}, nil
		}
	}
	return nil, errs.Mark(errs.New("no matching trusted device"), errs.ErrDeviceNotTrusted)
}

func (a *authCommandsImpl) trustDevice(ctx context.Context, phone booking.Phone, rawFingerprint, deviceName string) error {
	if rawFingerprint == "" {
		return nil
	}
	hash, err := fingerprint.Hash(rawFingerprint)
	if err != nil {
		return err
	}
	err = a.devices.Save(ctx, TrustedDevice{
		ID:              uuid.New(),
		Phone:           phone.String(),
		FingerprintHash: hash,
		DeviceName:      deviceName,
		TrustedAt:       a.clock.Now(),
	})
	if err != nil {
		return err
	}
	return a.cache.Invalidate(ctx, phone.String())
}

// trustedHashes reads through the cache to the database, dropping devices
// older than the trust TTL. A zero TTL means trust never expires.
func (a *authCommandsImpl) trustedHashes(ctx context.Context, phone string) ([]string, error) {
	if hashes, hit, err := a.cache.Get(ctx, phone); err == nil && hit {
		return hashes, nil
	} else if err != nil {
		slog.Warn("device hash cache read failed", "error", err.Error())
	}

	devices, err := a.devices.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	cutoff := time.Time{}
	if a.cfg.DeviceTrustTTL > 0 {
		cutoff = a.clock.Now().Add(-a.cfg.DeviceTrustTTL)
	}
	hashes := make([]string, 0, len(devices))
	expired := 0
	for _, d := range devices {
		if !cutoff.IsZero() && d.TrustedAt.Before(cutoff) {
			expired++
			continue
		}
		hashes = append(hashes, d.FingerprintHash)
	}
	if expired > 0 {
		if _, err := a.devices.DeleteExpired(ctx, phone, cutoff); err != nil {
			slog.Warn("failed to purge expired trusted devices", "error", err.Error())
		}
	}

	if err := a.cache.Set(ctx, phone, hashes); err != nil {
		slog.Warn("device hash cache write failed", "error", err.Error())
	}
	return hashes, nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

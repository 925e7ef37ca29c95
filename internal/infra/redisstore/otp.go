package redisstore

import (
	"context"
	"time"

	"studiobooking/internal/infra"

	"github.com/redis/go-redis/v9"
)

const (
	otpCodeKeyPrefix     = "otp:code:"
	otpCooldownKeyPrefix = "otp:cooldown:"
	otpAttemptsKeyPrefix = "otp:attempts:"
)

// OTPStore keeps one-time codes, resend cooldowns and verification attempt
// counters in redis. All keys expire on their own; nothing here survives the
// code's TTL.
type OTPStore struct {
	client *redis.Client
}

func NewOTPStore(client *redis.Client) *OTPStore {
	return &OTPStore{client: client}
}

// SaveCode arms the resend cooldown and stores a fresh code, resetting the
// attempt counter from any previous code. Arming is atomic: when the cooldown
// key is already held, no code is written and (false, nil) is returned, so two
// concurrent sends for the same phone issue exactly one code.
func (s *OTPStore) SaveCode(ctx context.Context, phone, code string, ttl, cooldown time.Duration) (bool, error) {
	armed, err := s.client.SetNX(ctx, otpCooldownKeyPrefix+phone, "1", cooldown).Result()
	if err != nil {
		return false, infra.WrapRepoErr("failed to arm otp cooldown", err)
	}
	if !armed {
		return false, nil
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, otpCodeKeyPrefix+phone, code, ttl)
	pipe.Del(ctx, otpAttemptsKeyPrefix+phone)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, infra.WrapRepoErr("failed to save otp code", err)
	}
	return true, nil
}

// CooldownRemaining returns how long until another code may be sent, zero if
// the cooldown has lapsed.
func (s *OTPStore) CooldownRemaining(ctx context.Context, phone string) (time.Duration, error) {
	ttl, err := s.client.TTL(ctx, otpCooldownKeyPrefix+phone).Result()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to read otp cooldown", err)
	}
	if ttl < 0 {
		return 0, nil
	}
	return ttl, nil
}

// GetCode returns the stored code, or ("", nil) when none is pending.
func (s *OTPStore) GetCode(ctx context.Context, phone string) (string, error) {
	code, err := s.client.Get(ctx, otpCodeKeyPrefix+phone).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", infra.WrapRepoErr("failed to read otp code", err)
	}
	return code, nil
}

// RecordFailedAttempt bumps the attempt counter and returns its new value.
// The counter expires with the code's TTL so stale counters cannot lock a
// phone out of a future code.
func (s *OTPStore) RecordFailedAttempt(ctx context.Context, phone string, ttl time.Duration) (int64, error) {
	key := otpAttemptsKeyPrefix + phone
	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, infra.WrapRepoErr("failed to record otp attempt", err)
	}
	return incr.Val(), nil
}

// ClearCode drops the code and attempt counter after a successful
// verification. The cooldown key is left to expire on its own.
func (s *OTPStore) ClearCode(ctx context.Context, phone string) error {
	if err := s.client.Del(ctx, otpCodeKeyPrefix+phone, otpAttemptsKeyPrefix+phone).Err(); err != nil {
		return infra.WrapRepoErr("failed to clear otp code", err)
	}
	return nil
}

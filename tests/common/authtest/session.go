//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"studiobooking/internal/pkg/config"
	"studiobooking/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type SessionHelper struct {
	cfg config.SessionConfig
}

func NewSessionHelper(cfg config.SessionConfig) *SessionHelper {
	return &SessionHelper{cfg: cfg}
}

func (h *SessionHelper) GenerateToken(t *testing.T, phone string, verifiedBy jwt.VerifiedBy) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration)
	token, err := service.GenerateSessionToken(phone, verifiedBy)
	require.NoError(t, err)
	return token
}

func (h *SessionHelper) CreateExpiredToken(t *testing.T, phone string, verifiedBy jwt.VerifiedBy) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateSessionToken(phone, verifiedBy)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

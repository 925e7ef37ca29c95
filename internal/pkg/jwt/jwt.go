package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// VerifiedBy records which gate minted the session.
type VerifiedBy string

const (
	VerifiedByOTP    VerifiedBy = "otp"
	VerifiedByDevice VerifiedBy = "device"
	VerifiedByStaff  VerifiedBy = "staff"
)

// Claims is the booking session token payload. A session token proves the
// holder passed the OTP or device-trust gate for the embedded phone number.
type Claims struct {
	Phone      string     `json:"phone"`
	VerifiedBy VerifiedBy `json:"verified_by"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey       []byte
	sessionDuration time.Duration
}

func NewService(secretKey string, sessionDuration time.Duration) *Service {
	return &Service{
		secretKey:       []byte(secretKey),
		sessionDuration: sessionDuration,
	}
}

func (s *Service) GenerateSessionToken(phone string, verifiedBy VerifiedBy) (string, error) {
	now := time.Now()
	claims := Claims{
		Phone:      phone,
		VerifiedBy: verifiedBy,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateSessionToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

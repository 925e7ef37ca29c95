package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"studiobooking/internal/pkg/jwt"
	"studiobooking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware guards booking mutations behind a valid session token,
// minted by the OTP or device-trust gate.
type SessionMiddleware struct {
	tokens *jwt.Service
}

const ctxSessionKey = "booking_session"

func NewSessionMiddleware(tokens *jwt.Service) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens}
}

func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session token required"})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateSessionToken(token)
		if err != nil {
			slog.Warn("session token rejected", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session token"})
			c.Abort()
			return
		}

		c.Set(ctxSessionKey, &commands.Session{Phone: claims.Phone, VerifiedBy: claims.VerifiedBy})
		c.Next()
	}
}

// OptionalSession attaches the session when a valid token is present but
// never aborts; wizard steps before the auth gate run through this.
func (m *SessionMiddleware) OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}
		claims, err := m.tokens.ValidateSessionToken(token)
		if err != nil {
			c.Next()
			return
		}
		c.Set(ctxSessionKey, &commands.Session{Phone: claims.Phone, VerifiedBy: claims.VerifiedBy})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

// GetSession returns the verified session attached by the middleware, nil
// when the request carried no valid token.
func GetSession(c *gin.Context) *commands.Session {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil
	}
	session, ok := v.(*commands.Session)
	if !ok {
		return nil
	}
	return session
}

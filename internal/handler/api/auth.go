package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "studiobooking/internal/handler/dto/request"
	"studiobooking/internal/handler/httperr"
	resdto "studiobooking/internal/handler/dto/response"
	"studiobooking/internal/pkg/errs"
	"studiobooking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth commands.AuthCommands
}

func NewAuthHandler(auth commands.AuthCommands) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// @Summary Send verification code
// @Description Send a one-time code to the given phone number
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SendOTPRequest true "Phone number"
// @Success 200 {object} resdto.SendOTPResponse
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/send-otp [post]
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req reqdto.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.auth.SendOTP(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrOTPCooldown):
			retryAfter := 0
			if result != nil {
				retryAfter = int(result.RetryAfter.Seconds())
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			httperr.AbortWithError(c, http.StatusTooManyRequests, err, "Code requested too soon", nil)
		case errors.Is(err, errs.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid phone number", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSendOTPResult(result))
}

// @Summary Verify code
// @Description Verify a one-time code and mint a booking session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyOTPRequest true "Phone, code and device fingerprint"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req reqdto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.auth.VerifyOTP(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrOTPInvalid):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired code", nil)
		case errors.Is(err, errs.ErrTooManyAttempts):
			httperr.AbortWithError(c, http.StatusTooManyRequests, err, "Too many attempts, request a new code", nil)
		case errors.Is(err, errs.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid phone number", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthResult(result))
}

// @Summary Verify trusted device
// @Description Mint a booking session from a previously trusted device fingerprint
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyDeviceRequest true "Phone and device fingerprint"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/verify-device [post]
func (h *AuthHandler) VerifyDevice(c *gin.Context) {
	var req reqdto.VerifyDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.auth.VerifyDevice(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDeviceNotTrusted):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Device not trusted", nil)
		case errors.Is(err, errs.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid phone number", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthResult(result))
}
